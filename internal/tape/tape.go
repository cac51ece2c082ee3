// Package tape provides a conceptually unbounded, integer-addressed tape of
// symbols with a single read/write head, the storage primitive for
// Turing-machine style algorithms.
//
// Storage is sparse: only cells that have been written are materialized and
// every other position reads as symbol.Blank. Reading never materializes a
// cell, so the set of stored positions is exactly the set of positions that
// have been written.
//
// A Tape is not safe for concurrent use. Algorithms that need two cursors
// should use two tapes (Copy gives an independent one) rather than sharing a
// head between unrelated scans.
package tape

import (
	"fmt"
	"strings"

	"github.com/thruflo/turing/internal/symbol"
)

// EmptyPlaceholder is the rendering of a tape with no written cells.
const EmptyPlaceholder = "<empty tape>"

// Direction is the way the head moves on Step.
type Direction int

const (
	// Forward moves the head to the next position. It is the zero value.
	Forward Direction = iota
	// Reverse moves the head to the previous position.
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Tape is a sparse mapping from position to symbol plus a head position.
// The zero value is an empty tape with the head at the origin.
type Tape struct {
	cells map[int]symbol.Symbol
	head  int
}

// New returns a tape whose positions 0..n-1 hold the characters of initial
// in order. The head starts at position 0.
func New(initial string) *Tape {
	t := &Tape{cells: make(map[int]symbol.Symbol, len(initial))}
	pos := 0
	for _, r := range initial {
		t.cells[pos] = symbol.Must(r)
		pos++
	}
	return t
}

// FromSymbols returns a tape whose positions 0..n-1 hold syms in order.
func FromSymbols(syms ...symbol.Symbol) *Tape {
	t := &Tape{cells: make(map[int]symbol.Symbol, len(syms))}
	for i, s := range syms {
		t.cells[i] = s
	}
	return t
}

// Read returns the symbol under the head.
func (t *Tape) Read() symbol.Symbol {
	return t.at(t.head)
}

// at looks up pos without materializing it.
func (t *Tape) at(pos int) symbol.Symbol {
	return t.cells[pos]
}

// Write stores s under the head, replacing whatever was there.
func (t *Tape) Write(s symbol.Symbol) {
	if t.cells == nil {
		t.cells = make(map[int]symbol.Symbol)
	}
	t.cells[t.head] = s
}

// Step moves the head one position in direction d.
func (t *Tape) Step(d Direction) {
	if d == Reverse {
		t.head--
		return
	}
	t.head++
}

// Reads returns the symbol under the head, then steps in direction d.
func (t *Tape) Reads(d Direction) symbol.Symbol {
	s := t.Read()
	t.Step(d)
	return s
}

// Writes stores s under the head, then steps in direction d.
func (t *Tape) Writes(s symbol.Symbol, d Direction) {
	t.Write(s)
	t.Step(d)
}

// Reset moves the head back to position 0. Contents are untouched.
func (t *Tape) Reset() {
	t.head = 0
}

// Head returns the current head position.
func (t *Tape) Head() int {
	return t.head
}

// Len returns the number of written cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Copy returns an independent tape with the same contents and head position.
func (t *Tape) Copy() *Tape {
	cp := &Tape{
		cells: make(map[int]symbol.Symbol, len(t.cells)),
		head:  t.head,
	}
	for pos, s := range t.cells {
		cp.cells[pos] = s
	}
	return cp
}

// span returns the lowest and highest written positions.
func (t *Tape) span() (lo, hi int, ok bool) {
	for pos := range t.cells {
		if !ok {
			lo, hi, ok = pos, pos, true
			continue
		}
		lo = min(lo, pos)
		hi = max(hi, pos)
	}
	return lo, hi, ok
}

// window returns the rendered range: the written span widened to include
// the head. An empty tape's window is the head cell alone.
func (t *Tape) window() (lo, hi int) {
	lo, hi, ok := t.span()
	if !ok {
		return t.head, t.head
	}
	return min(lo, t.head), max(hi, t.head)
}

func (t *Tape) render(lo, hi int) string {
	var sb strings.Builder
	for pos := lo; pos <= hi; pos++ {
		sb.WriteString(t.at(pos).String())
	}
	return sb.String()
}

// String renders every position from the lowest to the highest of the
// written positions and the head. Unwritten positions render as a space.
// A tape with nothing written renders as EmptyPlaceholder.
func (t *Tape) String() string {
	if len(t.cells) == 0 {
		return EmptyPlaceholder
	}
	return t.render(t.window())
}

// GoString returns the diagnostic form, e.g. Tape("abc", 1).
func (t *Tape) GoString() string {
	return fmt.Sprintf("Tape(%q, %d)", t.String(), t.head)
}

// Lines returns the two-line head display: the rendered window and a caret
// line marking the head.
func (t *Tape) Lines() (content, caret string) {
	lo, hi := t.window()
	return t.render(lo, hi), strings.Repeat(" ", t.head-lo) + "^"
}

// Equal reports whether t and other hold the same symbol at every position.
// Head positions are ignored, and a cell explicitly written with Blank is
// equal to one never written.
func (t *Tape) Equal(other *Tape) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	for pos, s := range t.cells {
		if other.at(pos) != s {
			return false
		}
	}
	for pos, s := range other.cells {
		if t.at(pos) != s {
			return false
		}
	}
	return true
}
