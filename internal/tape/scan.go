package tape

import (
	"iter"

	"github.com/thruflo/turing/internal/symbol"
)

// Scanner is a never-ending cursor over a tape. Each value it produces is
// the symbol under the head, after which the head moves one position in the
// scanner's direction.
//
// The step after a value is deferred until the next value is requested, so
// between calls the head still rests on the symbol just returned. A caller
// that stops on a symbol can therefore Read or Write that very cell.
//
// A Scanner never runs out. Callers must decide when to stop, typically on
// the first symbol.Blank. Restart by creating a new Scanner, after Reset if
// the scan should begin at the origin.
type Scanner struct {
	tape    *Tape
	dir     Direction
	pending bool
}

// Scan returns a Scanner bound to t and direction d, starting at the head.
func (t *Tape) Scan(d Direction) *Scanner {
	return &Scanner{tape: t, dir: d}
}

// Next returns the next symbol. It never fails and never ends.
func (s *Scanner) Next() symbol.Symbol {
	if s.pending {
		s.tape.Step(s.dir)
	}
	s.pending = true
	return s.tape.Read()
}

// Take returns the next n symbols.
func (s *Scanner) Take(n int) []symbol.Symbol {
	out := make([]symbol.Symbol, 0, max(n, 0))
	for range n {
		out = append(out, s.Next())
	}
	return out
}

// All returns the remaining symbols as an unbounded sequence. A range loop
// over it only ends when the loop body breaks or returns.
func (s *Scanner) All() iter.Seq[symbol.Symbol] {
	return func(yield func(symbol.Symbol) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}
