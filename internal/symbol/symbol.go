// Package symbol defines the values stored on a tape: a single character,
// or the distinguished Blank that every unwritten cell holds.
//
// Symbol is a small comparable value whose zero value is Blank. There is
// exactly one blank value, so == between any two blanks always holds and a
// map lookup miss already yields Blank without further work.
//
// Blank renders as a single space, the same text as Must(' '), but the two
// are never equal. Code that needs to know whether a cell was written must
// use IsBlank or Equal rather than comparing rendered text.
package symbol

import (
	"fmt"
	"unicode/utf8"
)

// Symbol is either one character or Blank.
type Symbol struct {
	r   rune
	set bool
}

// Blank is the symbol held by every cell that has not been written.
var Blank = Symbol{}

// New returns the symbol for a single character.
func New(r rune) (Symbol, error) {
	if !utf8.ValidRune(r) {
		return Blank, &InvalidSymbolError{Value: r}
	}
	return Symbol{r: r, set: true}, nil
}

// Must is like New but panics if r is not a valid character.
func Must(r rune) Symbol {
	s, err := New(r)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse returns the symbol for a string holding exactly one character.
func Parse(s string) (Symbol, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError && size == 1 {
		return Blank, &InvalidSymbolError{Value: s}
	}
	return New(r)
}

// Create normalizes raw into a Symbol.
//
// A Symbol is returned unchanged and nil yields Blank. A rune, byte, or
// one-character string yields that character. Anything else fails with an
// error matching ErrInvalidSymbol.
func Create(raw any) (Symbol, error) {
	switch v := raw.(type) {
	case nil:
		return Blank, nil
	case Symbol:
		return v, nil
	case rune:
		return New(v)
	case byte:
		return New(rune(v))
	case string:
		return Parse(v)
	default:
		return Blank, &InvalidSymbolError{Value: raw}
	}
}

// IsBlank reports whether s is Blank.
func (s Symbol) IsBlank() bool {
	return !s.set
}

// Rune returns the character held by s. The boolean is false for Blank.
func (s Symbol) Rune() (rune, bool) {
	return s.r, s.set
}

// Equal reports whether s and other are the same symbol.
func (s Symbol) Equal(other Symbol) bool {
	return s == other
}

// EqualRune reports whether s holds the character r. Blank never equals
// any character, including the space.
func (s Symbol) EqualRune(r rune) bool {
	return s.set && s.r == r
}

// String returns the character, or a single space for Blank.
func (s Symbol) String() string {
	if !s.set {
		return " "
	}
	return string(s.r)
}

// GoString returns the diagnostic form, e.g. Symbol('a') or Symbol(<blank>).
func (s Symbol) GoString() string {
	if !s.set {
		return "Symbol(<blank>)"
	}
	return fmt.Sprintf("Symbol('%c')", s.r)
}
