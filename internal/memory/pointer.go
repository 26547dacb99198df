// Package memory implements the Hexagony memory model: a lazily ring-grown
// hexagonal grid where every cell stores three signed edge values (one per
// cubic axis), addressed through a directed-edge pointer.
package memory

import "hexagony/internal/hexcoord"

// Side selects the left or right neighbor relative to the pointer's
// direction of travel. The numeric values feed the axis rotation directly.
type Side int

const (
	Left  Side = -1
	Right Side = 1
)

// Orientation records which endpoint of the pointer's undirected edge is
// current: In points toward the pointer's cell, Out away from it.
type Orientation int

const (
	In Orientation = iota
	Out
)

func (o Orientation) String() string {
	if o == In {
		return "INWARDS"
	}
	return "OUTWARDS"
}

// Pointer identifies one directed edge of one memory cell: the cell's axial
// position, the cubic axis selecting the edge, and the orientation.
type Pointer struct {
	P, Q        int
	Axis        hexcoord.Axis
	Orientation Orientation
}

// NewPointer returns the initial memory pointer: the Z edge of the origin
// cell, pointing outwards.
func NewPointer() Pointer {
	return Pointer{Axis: hexcoord.Z, Orientation: Out}
}

// neighborTarget returns the cell and axis that store the edge on the given
// side of mp, without moving mp. With orientation In the neighbor edge sits
// in the same cell on the rotated axis; with Out it sits in the cell shifted
// +1 along mp's axis and -1 along the rotated one.
func neighborTarget(mp Pointer, side Side) (p, q int, axis hexcoord.Axis) {
	axis = hexcoord.Axis(hexcoord.Modulo(int(mp.Axis)+int(side), 3))
	p, q = mp.P, mp.Q
	if mp.Orientation == Out {
		xyz := [3]int{mp.P, mp.Q, -mp.P - mp.Q}
		xyz[mp.Axis]++
		xyz[axis]--
		p, q = xyz[0], xyz[1]
	}
	return p, q, axis
}

// Move shifts the pointer to its left or right neighbor edge, flipping the
// orientation: an outward pointer crosses into the neighboring cell and
// arrives inward, an inward pointer pivots in place and leaves outward.
func (mp *Pointer) Move(side Side) {
	p, q, axis := neighborTarget(*mp, side)
	if mp.Orientation == Out {
		mp.Orientation = In
	} else {
		mp.Orientation = Out
	}
	mp.P, mp.Q = p, q
	mp.Axis = axis
}

// Reverse flips the orientation. The current edge is unchanged; the left
// and right neighbors are then taken from the other end of the edge (the
// pointer's own cell when In, the adjacent cell when Out).
func (mp *Pointer) Reverse() {
	if mp.Orientation == In {
		mp.Orientation = Out
	} else {
		mp.Orientation = In
	}
}

// MoveBackLeft moves the pointer backwards and to the left, equivalent to
// Reverse, Move(Right), Reverse.
func (mp *Pointer) MoveBackLeft() {
	mp.Reverse()
	mp.Move(Right)
	mp.Reverse()
}

// MoveBackRight moves the pointer backwards and to the right, equivalent to
// Reverse, Move(Left), Reverse.
func (mp *Pointer) MoveBackRight() {
	mp.Reverse()
	mp.Move(Left)
	mp.Reverse()
}
