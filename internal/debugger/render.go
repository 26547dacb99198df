package debugger

import (
	"fmt"
	"strings"

	"hexagony/internal/hexcoord"
	"hexagony/internal/interp"
)

// renderProgram prints the source hexagon row by row along the z axis,
// two runes per cell (the debug mark or a space, then the instruction),
// tinting the cell under each IP with that IP's color.
func (d *Debugger) renderProgram(s *interp.Snapshot) {
	rings := s.Program.Rings()
	var ipIndex [6]int
	for i, ip := range s.IPs {
		idx, ok := hexcoord.ProgramIndex(ip.P, ip.Q, rings)
		if !ok {
			idx = -1
		}
		ipIndex[i] = idx
	}

	i := 0
	for z := -(rings - 1); z <= rings-1; z++ {
		fmt.Fprint(d.out, strings.Repeat(" ", abs(z)))
		for x := 0; x < 2*rings-1-abs(z); x++ {
			cell := s.Program.Cell(i)
			mark := byte(' ')
			if cell.Debug {
				mark = '`'
			}
			text := string([]byte{mark, cell.Value})
			for ip, idx := range ipIndex {
				if idx == i {
					text = d.ipStyles[ip].Render(text)
					break
				}
			}
			fmt.Fprint(d.out, text)
			i++
		}
		fmt.Fprintln(d.out)
	}
}

// renderMemory prints the memory cells within viewRings of the MP, two
// text rows per hex row: the Z edge above, the X and Y edges below as
// ". X ' Y". Cells beyond the allocated rings read as zeroes; the edge
// under the MP is tinted.
func (d *Debugger) renderMemory(s *interp.Snapshot) {
	view := d.viewRings
	fmt.Fprintf(d.out, "[%d rings allocated]\n", s.Memory.Rings())

	for z := view; z >= -view; z-- {
		x, y := view, -view
		if z > 0 {
			x -= z
		}
		if z < 0 {
			y -= z
		}

		fmt.Fprint(d.out, strings.Repeat("     ", abs(z)))
		for p, q := x, y; abs(p)+abs(q)+abs(z) <= 2*view; p, q = p-1, q+1 {
			cell := s.Memory.Peek(s.MP.P+p, s.MP.Q+q)
			fmt.Fprintf(d.out, "    %s    ",
				d.edgeText(s, p, q, hexcoord.Z, cell[hexcoord.Z]))
		}
		fmt.Fprintln(d.out)

		fmt.Fprint(d.out, strings.Repeat("     ", abs(z)))
		for p, q := x, y; abs(p)+abs(q)+abs(z) <= 2*view; p, q = p-1, q+1 {
			cell := s.Memory.Peek(s.MP.P+p, s.MP.Q+q)
			fmt.Fprintf(d.out, ". %s ' %s ",
				d.edgeText(s, p, q, hexcoord.X, cell[hexcoord.X]),
				d.edgeText(s, p, q, hexcoord.Y, cell[hexcoord.Y]))
		}
		fmt.Fprintln(d.out, ".")
	}
}

// edgeText formats one edge value, highlighted when (p, q) is the MP's
// cell (relative coordinates) and axis is the MP's axis.
func (d *Debugger) edgeText(s *interp.Snapshot, p, q int, axis hexcoord.Axis, v int) string {
	text := fmt.Sprintf("%2d", v)
	if p == 0 && q == 0 && s.MP.Axis == axis {
		return d.mpStyle.Render(text)
	}
	return text
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
