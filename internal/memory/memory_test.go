package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexagony/internal/hexcoord"
)

func TestNewPointer(t *testing.T) {
	mp := NewPointer()
	assert.Equal(t, Pointer{P: 0, Q: 0, Axis: hexcoord.Z, Orientation: Out}, mp)
}

func TestReverse_SelfInverse(t *testing.T) {
	mp := NewPointer()
	orig := mp
	mp.Reverse()
	assert.Equal(t, In, mp.Orientation)
	assert.Equal(t, orig.P, mp.P)
	assert.Equal(t, orig.Q, mp.Q)
	assert.Equal(t, orig.Axis, mp.Axis)
	mp.Reverse()
	assert.Equal(t, orig, mp)
}

func TestMove_OutCrossesIntoNeighborCell(t *testing.T) {
	// Outward on the origin's Z edge: left lands on (0,-1)'s Y edge
	// inward, right on (-1,0)'s X edge inward.
	mp := NewPointer()
	mp.Move(Left)
	assert.Equal(t, Pointer{P: 0, Q: -1, Axis: hexcoord.Y, Orientation: In}, mp)

	mp = NewPointer()
	mp.Move(Right)
	assert.Equal(t, Pointer{P: -1, Q: 0, Axis: hexcoord.X, Orientation: In}, mp)
}

func TestMove_InPivotsInPlace(t *testing.T) {
	mp := Pointer{P: 2, Q: -1, Axis: hexcoord.X, Orientation: In}
	mp.Move(Left)
	assert.Equal(t, Pointer{P: 2, Q: -1, Axis: hexcoord.Z, Orientation: Out}, mp)

	mp = Pointer{P: 2, Q: -1, Axis: hexcoord.X, Orientation: In}
	mp.Move(Right)
	assert.Equal(t, Pointer{P: 2, Q: -1, Axis: hexcoord.Y, Orientation: Out}, mp)
}

// allStates enumerates pointer states around a few cells for law checks.
func allStates() []Pointer {
	var states []Pointer
	for p := -1; p <= 1; p++ {
		for q := -1; q <= 1; q++ {
			for _, a := range []hexcoord.Axis{hexcoord.X, hexcoord.Y, hexcoord.Z} {
				for _, o := range []Orientation{In, Out} {
					states = append(states, Pointer{P: p, Q: q, Axis: a, Orientation: o})
				}
			}
		}
	}
	return states
}

func TestMoveBack_InvertsMove(t *testing.T) {
	// MoveBackLeft undoes Move(Left), MoveBackRight undoes Move(Right),
	// from any state.
	for _, start := range allStates() {
		mp := start
		mp.Move(Left)
		mp.MoveBackLeft()
		assert.Equal(t, start, mp, "left from %+v", start)

		mp = start
		mp.Move(Right)
		mp.MoveBackRight()
		assert.Equal(t, start, mp, "right from %+v", start)
	}
}

func TestMove_FlipsOrientation(t *testing.T) {
	for _, start := range allStates() {
		mp := start
		mp.Move(Left)
		assert.NotEqual(t, start.Orientation, mp.Orientation, "from %+v", start)
	}
}

func TestNeighborTarget_MatchesMove(t *testing.T) {
	// Neighbor must reference exactly the edge that Move would land on.
	for _, start := range allStates() {
		for _, side := range []Side{Left, Right} {
			p, q, axis := neighborTarget(start, side)
			mp := start
			mp.Move(side)
			assert.Equal(t, mp.P, p, "%+v side %d", start, side)
			assert.Equal(t, mp.Q, q, "%+v side %d", start, side)
			assert.Equal(t, mp.Axis, axis, "%+v side %d", start, side)
		}
	}
}

func TestGrid_ValueRoundTrip(t *testing.T) {
	g := NewGrid()
	mp := NewPointer()
	assert.Equal(t, 0, g.Value(mp))
	g.SetValue(mp, 42)
	assert.Equal(t, 42, g.Value(mp))

	// Other edges of the same cell are untouched.
	other := mp
	other.Axis = hexcoord.X
	assert.Equal(t, 0, g.Value(other))
}

func TestGrid_GrowsByRings(t *testing.T) {
	g := NewGrid()
	require.Equal(t, 1, g.Rings())

	mp := Pointer{P: 3, Q: 0, Axis: hexcoord.Y, Orientation: In}
	g.SetValue(mp, 7)
	// (3, 0) sits on ring 3, so rings 2..4 get allocated.
	assert.Equal(t, 4, g.Rings())
	assert.Equal(t, 7, g.Value(mp))
}

func TestGrid_GrowZeroFills(t *testing.T) {
	g := NewGrid()
	g.SetValue(Pointer{P: 2, Q: -2, Axis: hexcoord.X}, 1)
	for p := -2; p <= 2; p++ {
		for q := -2; q <= 2; q++ {
			cell := g.Peek(p, q)
			for axis, v := range cell {
				if p == 2 && q == -2 && hexcoord.Axis(axis) == hexcoord.X {
					assert.Equal(t, 1, v)
				} else {
					assert.Zero(t, v, "(%d,%d) axis %d", p, q, axis)
				}
			}
		}
	}
}

func TestGrid_NeighborReadsWithoutMoving(t *testing.T) {
	g := NewGrid()
	mp := NewPointer()

	// Write through a moved copy, then read the same edge as a neighbor.
	left := mp
	left.Move(Left)
	g.SetValue(left, 11)
	right := mp
	right.Move(Right)
	g.SetValue(right, 22)

	assert.Equal(t, 11, g.Neighbor(mp, Left))
	assert.Equal(t, 22, g.Neighbor(mp, Right))
	assert.Equal(t, mp, NewPointer(), "Neighbor must not move the pointer")
}

func TestGrid_NeighborAfterReverseReadsOwnCell(t *testing.T) {
	g := NewGrid()
	mp := NewPointer()
	left := mp
	left.Move(Left)
	g.SetValue(left, 5)

	rev := mp
	rev.Reverse()
	// What was reachable leftward outward is now a different edge; the
	// inward neighbors live on the pointer's own cell.
	assert.Equal(t, 0, g.Neighbor(rev, Left))
	inLeft := rev
	inLeft.Move(Left)
	g.SetValue(inLeft, 9)
	assert.Equal(t, 9, g.Neighbor(rev, Left))
}

func TestPeek_DoesNotGrow(t *testing.T) {
	g := NewGrid()
	require.Equal(t, 1, g.Rings())
	assert.Equal(t, Cell{}, g.Peek(4, 4))
	assert.Equal(t, 1, g.Rings())
}
