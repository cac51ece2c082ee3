package symbol

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol is matched by every error returned when a value cannot
// be turned into a Symbol.
var ErrInvalidSymbol = errors.New("symbol must be a single character")

// InvalidSymbolError records the value that was rejected.
type InvalidSymbolError struct {
	Value any
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %#v: %s", e.Value, ErrInvalidSymbol.Error())
}

// Unwrap returns ErrInvalidSymbol.
func (e *InvalidSymbolError) Unwrap() error {
	return ErrInvalidSymbol
}
