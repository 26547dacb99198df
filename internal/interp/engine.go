package interp

import (
	"bufio"
	"io"
	"strconv"

	"go.uber.org/zap"

	"hexagony/internal/hexcoord"
	"hexagony/internal/memory"
	"hexagony/internal/program"
)

// Engine is the Hexagony virtual machine: one program grid, one memory
// grid, six instruction pointers of which exactly one is active per tick.
type Engine struct {
	prog   *program.Grid
	mem    *memory.Grid
	mp     memory.Pointer
	ips    [6]IP
	active int

	in  *bufio.Reader
	out *bufio.Writer

	dbg        Debugger
	forceDebug bool
	halted     bool

	log   *zap.Logger
	ticks uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithStdin sets the byte stream consumed by ',' and '?'. A *bufio.Reader
// is used as-is, never re-wrapped, so a caller can hand the same reader to
// the debugger and both drain one buffer; any other reader gets wrapped.
func WithStdin(r io.Reader) Option {
	return func(e *Engine) {
		if br, ok := r.(*bufio.Reader); ok {
			e.in = br
			return
		}
		e.in = bufio.NewReader(r)
	}
}

// WithStdout sets the byte stream produced by ';' and '!'.
func WithStdout(w io.Writer) Option {
	return func(e *Engine) { e.out = bufio.NewWriter(w) }
}

// WithDebugger installs the pause hook for debug-marked cells.
func WithDebugger(d Debugger) Option {
	return func(e *Engine) { e.dbg = d }
}

// WithLogger installs a logger for tick tracing at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithStepMode starts the engine paused on its first instruction, as if a
// debugger 's' had already been issued.
func WithStepMode() Option {
	return func(e *Engine) { e.forceDebug = true }
}

// New builds an engine for prog. IP 0 is active; the memory pointer sits
// on the Z edge of the origin cell, pointing outwards.
func New(prog *program.Grid, opts ...Option) *Engine {
	e := &Engine{
		prog: prog,
		mem:  memory.NewGrid(),
		mp:   memory.NewPointer(),
		ips:  NewIPs(prog.Rings()),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.in == nil {
		e.in = bufio.NewReader(emptyReader{})
	}
	if e.out == nil {
		e.out = bufio.NewWriter(io.Discard)
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	return e
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) { return 0, io.EOF }

// Run executes the program until '@' or a debugger quit. The returned
// error is an output or debugger I/O failure; interpretation itself never
// fails.
func (e *Engine) Run() error {
	for !e.halted {
		if err := e.tick(); err != nil {
			return err
		}
	}
	e.log.Debug("halted", zap.Uint64("ticks", e.ticks))
	return e.out.Flush()
}

// tick runs one machine step: skip gate, fetch, debug gate, dispatch,
// advance. The advance applies to whichever IP is active after dispatch,
// so '[', ']' and '#' move the newly selected IP.
func (e *Engine) tick() error {
	e.ticks++
	ip := &e.ips[e.active]
	if ip.SkipNext {
		ip.SkipNext = false
		e.advance()
		return nil
	}

	cell, ok := e.prog.At(ip.P, ip.Q)
	if !ok {
		// Reflection keeps every IP inside the hexagon; treat an
		// impossible position as a no-op rather than crash.
		e.advance()
		return nil
	}

	if cell.Debug || e.forceDebug {
		if err := e.pause(cell); err != nil {
			return err
		}
		if e.halted {
			return nil
		}
	}

	e.log.Debug("tick",
		zap.Uint64("n", e.ticks),
		zap.Int("ip", e.active),
		zap.Int("p", ip.P),
		zap.Int("q", ip.Q),
		zap.String("instr", string(cell.Value)))

	if halt := e.exec(cell.Value); halt {
		e.halted = true
		return nil
	}
	e.advance()
	return nil
}

func (e *Engine) pause(cell program.Cell) error {
	if e.dbg == nil {
		return nil
	}
	// Program output so far must be visible before the debug dump.
	if err := e.out.Flush(); err != nil {
		return err
	}
	snap := &Snapshot{
		Program: e.prog,
		Memory:  e.mem,
		MP:      e.mp,
		IPs:     e.ips,
		Active:  e.active,
		Cell:    cell,
	}
	action, err := e.dbg.Pause(snap)
	if err != nil {
		return err
	}
	switch action {
	case Step:
		e.forceDebug = true
	case Continue:
		e.forceDebug = false
	case Quit:
		e.halted = true
	}
	return nil
}

// advance moves the active IP one step, reflecting at the rim using the
// current memory edge.
func (e *Engine) advance() {
	e.ips[e.active].Advance(e.prog.Rings(), e.mem.Value(e.mp))
}

// exec applies one instruction to the machine state and reports whether it
// halts the program. Unrecognized characters are no-ops.
func (e *Engine) exec(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		// Append a decimal digit to the current edge, preserving sign.
		v := e.mem.Value(e.mp)
		d := int(c - '0')
		if v < 0 {
			d = -d
		}
		e.mem.SetValue(e.mp, v*10+d)

	case c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z':
		e.mem.SetValue(e.mp, int(c))

	default:
		return e.execSymbol(c)
	}
	return false
}

func (e *Engine) execSymbol(c byte) bool {
	switch c {
	case '.':
		// no-op

	case '@':
		return true

	case ')':
		e.mem.SetValue(e.mp, e.mem.Value(e.mp)+1)
	case '(':
		e.mem.SetValue(e.mp, e.mem.Value(e.mp)-1)

	case '+':
		e.mem.SetValue(e.mp, e.mem.Neighbor(e.mp, memory.Left)+e.mem.Neighbor(e.mp, memory.Right))
	case '-':
		e.mem.SetValue(e.mp, e.mem.Neighbor(e.mp, memory.Left)-e.mem.Neighbor(e.mp, memory.Right))
	case '*':
		e.mem.SetValue(e.mp, e.mem.Neighbor(e.mp, memory.Left)*e.mem.Neighbor(e.mp, memory.Right))
	case ':':
		// Division by zero is left to the runtime.
		e.mem.SetValue(e.mp, e.mem.Neighbor(e.mp, memory.Left)/e.mem.Neighbor(e.mp, memory.Right))
	case '%':
		e.mem.SetValue(e.mp, e.mem.Neighbor(e.mp, memory.Left)%e.mem.Neighbor(e.mp, memory.Right))

	case '~':
		e.mem.SetValue(e.mp, -e.mem.Value(e.mp))

	case ',':
		e.out.Flush()
		b, err := e.in.ReadByte()
		if err != nil {
			e.mem.SetValue(e.mp, -1)
		} else {
			e.mem.SetValue(e.mp, int(b))
		}

	case '?':
		e.out.Flush()
		e.mem.SetValue(e.mp, e.readSignedDecimal())

	case ';':
		e.out.WriteByte(byte(hexcoord.Modulo(e.mem.Value(e.mp), 256)))

	case '!':
		e.out.WriteString(strconv.Itoa(e.mem.Value(e.mp)))

	case '$':
		e.ips[e.active].SkipNext = true

	case '/', '\\', '_', '|':
		ip := &e.ips[e.active]
		ip.Dir = mirrorTables[c][ip.Dir]

	case '<':
		ip := &e.ips[e.active]
		if ip.Dir == hexcoord.E {
			ip.Dir = e.branch(hexcoord.SE, hexcoord.NE)
		} else {
			ip.Dir = mirrorLeft[ip.Dir]
		}
	case '>':
		ip := &e.ips[e.active]
		if ip.Dir == hexcoord.W {
			ip.Dir = e.branch(hexcoord.NW, hexcoord.SW)
		} else {
			ip.Dir = mirrorRight[ip.Dir]
		}

	case '[':
		e.active = hexcoord.Modulo(e.active-1, 6)
	case ']':
		e.active = hexcoord.Modulo(e.active+1, 6)
	case '#':
		e.active = hexcoord.Modulo(e.mem.Value(e.mp), 6)

	case '{':
		e.mp.Move(memory.Left)
	case '}':
		e.mp.Move(memory.Right)
	case '"':
		e.mp.MoveBackLeft()
	case '\'':
		e.mp.MoveBackRight()
	case '=':
		e.mp.Reverse()

	case '^':
		if e.mem.Value(e.mp) <= 0 {
			e.mp.Move(memory.Left)
		} else {
			e.mp.Move(memory.Right)
		}

	case '&':
		side := memory.Left
		if e.mem.Value(e.mp) > 0 {
			side = memory.Right
		}
		e.mem.SetValue(e.mp, e.mem.Neighbor(e.mp, side))
	}
	return false
}

// branch picks the 60-degree right turn when the current edge is positive
// and the left turn otherwise.
func (e *Engine) branch(positive, nonpositive hexcoord.Direction) hexcoord.Direction {
	if e.mem.Value(e.mp) > 0 {
		return positive
	}
	return nonpositive
}

// readSignedDecimal implements '?': discard input until a digit or sign,
// then greedily parse a signed decimal integer. EOF before any such byte,
// or a lone sign, yields 0.
func (e *Engine) readSignedDecimal() int {
	var b byte
	var err error
	for {
		b, err = e.in.ReadByte()
		if err != nil {
			return 0
		}
		if b == '+' || b == '-' || b >= '0' && b <= '9' {
			break
		}
	}
	neg := false
	v := 0
	switch b {
	case '+':
	case '-':
		neg = true
	default:
		v = int(b - '0')
	}
	for {
		b, err = e.in.ReadByte()
		if err != nil {
			break
		}
		if b < '0' || b > '9' {
			e.in.UnreadByte()
			break
		}
		v = v*10 + int(b-'0')
	}
	if neg {
		return -v
	}
	return v
}
