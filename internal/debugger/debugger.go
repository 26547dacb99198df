// Package debugger implements the interactive pause prompt: it renders the
// program hexagon, the instruction pointers, and the memory neighborhood
// around the memory pointer, then reads a single-character command.
package debugger

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"hexagony/internal/interp"
)

// DefaultViewRings is how many memory rings around the MP are rendered.
const DefaultViewRings = 4

// Debugger renders engine snapshots and prompts for step/continue/quit.
// It must share the interpreted program's STDIN reader so buffered bytes
// are not lost between ',' reads and prompt reads.
type Debugger struct {
	in        io.ByteReader
	out       io.Writer
	viewRings int

	ipStyles [6]lipgloss.Style
	mpStyle  lipgloss.Style
}

// Option configures a Debugger.
type Option func(*Debugger)

// WithViewRings sets the memory neighborhood radius.
func WithViewRings(rings int) Option {
	return func(d *Debugger) {
		if rings > 0 {
			d.viewRings = rings
		}
	}
}

// WithColor enables ANSI-colored IP and MP highlighting.
func WithColor() Option {
	return func(d *Debugger) {
		// One ANSI color per IP, matching the IP index everywhere it is
		// shown; the MP highlight reuses the first.
		for i := range d.ipStyles {
			d.ipStyles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprint(i + 1)))
		}
		d.mpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	}
}

// New builds a debugger over the given prompt input and render output.
func New(in io.ByteReader, out io.Writer, opts ...Option) *Debugger {
	d := &Debugger{in: in, out: out, viewRings: DefaultViewRings}
	for i := range d.ipStyles {
		d.ipStyles[i] = lipgloss.NewStyle()
	}
	d.mpStyle = lipgloss.NewStyle()
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Pause renders the snapshot and prompts until the user answers 's', 'c'
// or 'q'. Input failure counts as quit.
func (d *Debugger) Pause(s *interp.Snapshot) (interp.Action, error) {
	if s.Cell.Debug {
		fmt.Fprintln(d.out, "break")
	}
	fmt.Fprintf(d.out, "\nPaused on '%c'\n", s.Cell.Value)
	d.renderProgram(s)
	fmt.Fprintf(d.out, "Active IP: %d\n", s.Active)
	for i, ip := range s.IPs {
		fmt.Fprintf(d.out, "IP %s (%+d, %+d) %s\n",
			d.ipStyles[i].Render(fmt.Sprint(i)), ip.P, ip.Q, ip.Dir)
	}
	d.renderMemory(s)
	fmt.Fprintf(d.out, "MP: (%+d, %+d) %s %s = %d\n",
		s.MP.P, s.MP.Q, s.MP.Axis, s.MP.Orientation, s.Memory.Value(s.MP))

	for {
		fmt.Fprint(d.out, ": ")
		b, err := d.in.ReadByte()
		if err != nil {
			fmt.Fprintln(d.out)
			return interp.Quit, nil
		}
		switch b {
		case 's':
			return interp.Step, nil
		case 'c':
			return interp.Continue, nil
		case 'q':
			return interp.Quit, nil
		}
	}
}
