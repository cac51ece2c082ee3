// Package nodupes decides whether a tape holds any repeated symbol, using
// nothing but tape operations: the input tape is scanned once and every
// symbol is looked up on a second tape of symbols already seen.
package nodupes

import (
	"github.com/thruflo/turing/internal/symbol"
	"github.com/thruflo/turing/internal/tape"
)

// Result is the outcome of Check.
type Result struct {
	// Unique is true when every symbol before the first blank is distinct.
	Unique bool
	// Duplicate is the first symbol found a second time. It is Blank when
	// Unique is true.
	Duplicate symbol.Symbol
	// Position is the head position of the repeated occurrence on the
	// input tape, or of the terminating blank when Unique is true.
	Position int
}

// Check scans in from its head until the first blank. It accepts when no
// symbol repeats and rejects on the first repeat, leaving the head of in on
// the repeated symbol.
func Check(in *tape.Tape) Result {
	seen := tape.New("")

	for sym := range in.Scan(tape.Forward).All() {
		if sym.IsBlank() {
			return Result{Unique: true, Position: in.Head()}
		}
		seen.Reset()

		for prior := range seen.Scan(tape.Forward).All() {
			if prior.IsBlank() {
				seen.Write(sym)
				break
			}
			if prior.Equal(sym) {
				return Result{Duplicate: sym, Position: in.Head()}
			}
		}
	}
	panic("unreachable")
}
