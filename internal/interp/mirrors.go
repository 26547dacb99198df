package interp

import "hexagony/internal/hexcoord"

// Outgoing direction per incoming direction, indexed NW NE E SE SW W:
//
//	cmd │ NW NE  E SE SW  W
//	────┼────────────────────
//	 /  │  E NE NW  W SW SE
//	 \  │ NW  W SW SE  E NE
//	 _  │ SW SE  E NE NW  W
//	 |  │ NE NW  W SW SE  E
var mirrorTables = map[byte][6]hexcoord.Direction{
	'/': {hexcoord.E, hexcoord.NE, hexcoord.NW, hexcoord.W, hexcoord.SW, hexcoord.SE},
	'\\': {hexcoord.NW, hexcoord.W, hexcoord.SW, hexcoord.SE, hexcoord.E, hexcoord.NE},
	'_': {hexcoord.SW, hexcoord.SE, hexcoord.E, hexcoord.NE, hexcoord.NW, hexcoord.W},
	'|': {hexcoord.NE, hexcoord.NW, hexcoord.W, hexcoord.SW, hexcoord.SE, hexcoord.E},
}

// '<' and '>' mirror every direction except one, where they branch on the
// current edge (handled in execSymbol):
//
//	cmd │ NW NE  E SE SW  W
//	────┼────────────────────
//	 <  │  W SW ?? NW  W  E
//	 >  │ SE  E  W  E NE ??
var mirrorLeft = [6]hexcoord.Direction{
	hexcoord.W, hexcoord.SW, hexcoord.E /* branch */, hexcoord.NW, hexcoord.W, hexcoord.E,
}

var mirrorRight = [6]hexcoord.Direction{
	hexcoord.SE, hexcoord.E, hexcoord.W, hexcoord.E, hexcoord.NE, hexcoord.W, /* branch */
}
