// Package program holds the source hexagon: an immutable grid of
// instruction cells padded to a centered hexagonal number, plus the loader
// that builds it from a raw source stream.
package program

import (
	"bufio"
	"fmt"
	"io"
	"unicode"

	"hexagony/internal/hexcoord"
)

// NoOp is the padding instruction.
const NoOp = '.'

// Cell is one source position: the instruction character and whether a
// backtick in the source marked it as a breakpoint.
type Cell struct {
	Value byte
	Debug bool
}

// Grid is a fully padded regular hexagon of source cells. It is immutable
// after Load.
type Grid struct {
	cells []Cell
	rings int
}

// Load reads Hexagony source from r, strips whitespace, attaches backtick
// debug marks to the following instruction, and pads the result to the
// smallest hexagon that fits every loaded cell.
func Load(r io.Reader) (*Grid, error) {
	br := bufio.NewReader(r)
	var cells []Cell
	debugNext := false
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
		switch {
		case b == '`':
			debugNext = true
		case unicode.IsSpace(rune(b)):
			// stripped
		default:
			cells = append(cells, Cell{Value: b, Debug: debugNext})
			debugNext = false
		}
	}

	rings := 1
	for hexcoord.Area(rings) < len(cells) {
		rings++
	}
	for len(cells) < hexcoord.Area(rings) {
		cells = append(cells, Cell{Value: NoOp})
	}
	return &Grid{cells: cells, rings: rings}, nil
}

// Rings returns the side length of the hexagon.
func (g *Grid) Rings() int {
	return g.rings
}

// Size returns the total cell count.
func (g *Grid) Size() int {
	return len(g.cells)
}

// At returns the cell at axial (p, q). ok is false outside the hexagon.
func (g *Grid) At(p, q int) (c Cell, ok bool) {
	i, ok := hexcoord.ProgramIndex(p, q, g.rings)
	if !ok {
		return Cell{}, false
	}
	return g.cells[i], true
}

// Cell returns the cell at row-major index i.
func (g *Grid) Cell(i int) Cell {
	return g.cells[i]
}
