// Package interp executes a loaded Hexagony program: it owns the six
// instruction pointers, the memory grid and pointer, the instruction
// dispatch, and the byte-level STDIN/STDOUT streams.
package interp

import "hexagony/internal/hexcoord"

// IP is one of the six instruction pointers: an axial position, a travel
// direction, and the one-shot skip flag set by '$'.
type IP struct {
	P, Q     int
	Dir      hexcoord.Direction
	SkipNext bool
}

// NewIPs returns the six instruction pointers of a hexagon with the given
// ring count, one per corner, each aimed along the clockwise-next edge.
func NewIPs(rings int) [6]IP {
	r := rings - 1
	return [6]IP{
		{P: 0, Q: -r, Dir: hexcoord.E},   // top
		{P: -r, Q: 0, Dir: hexcoord.SE},  // top-right
		{P: -r, Q: r, Dir: hexcoord.SW},  // bottom-right
		{P: 0, Q: r, Dir: hexcoord.W},    // bottom
		{P: r, Q: 0, Dir: hexcoord.NW},   // bottom-left
		{P: r, Q: -r, Dir: hexcoord.NE},  // top-left
	}
}

// Advance moves the IP one step in its direction. A step that would leave
// the hexagon instead reflects the pre-step position to the opposite side,
// direction preserved. The reflection axis depends on where the rim was
// crossed and, on the corners, on the sign of the current memory edge.
func (ip *IP) Advance(rings, edge int) {
	dp, dq := ip.Dir.Delta()
	np, nq := ip.P+dp, ip.Q+dq
	nr := -np - nq
	if abs(np)+abs(nq)+abs(nr) >= 2*rings {
		var reflection hexcoord.Axis
		// Order matters: the zero cases catch the corners before the
		// sextant products can.
		switch {
		case np == 0:
			reflection = pickAxis(edge > 0, hexcoord.Y, hexcoord.Z)
		case nq == 0:
			reflection = pickAxis(edge > 0, hexcoord.Z, hexcoord.X)
		case nr == 0:
			reflection = pickAxis(edge > 0, hexcoord.X, hexcoord.Y)
		case nq*nr > 0:
			reflection = hexcoord.X
		case nr*np > 0:
			reflection = hexcoord.Y
		case np*nq > 0:
			reflection = hexcoord.Z
		}
		switch reflection {
		case hexcoord.X:
			np, nq = -ip.P, ip.P+ip.Q
		case hexcoord.Y:
			np, nq = ip.P+ip.Q, -ip.Q
		case hexcoord.Z:
			np, nq = -ip.Q, -ip.P
		}
	}
	ip.P, ip.Q = np, nq
}

func pickAxis(positive bool, pos, nonpos hexcoord.Axis) hexcoord.Axis {
	if positive {
		return pos
	}
	return nonpos
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
