package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/turing/internal/symbol"
	"github.com/thruflo/turing/internal/tape"
)

// AssertReads asserts that reading tp forward from its head yields the
// characters of want followed by a blank. The head is left after the blank.
func AssertReads(t *testing.T, tp *tape.Tape, want string) {
	t.Helper()

	for i, r := range []rune(want) {
		got := tp.Reads(tape.Forward)
		assert.True(t, got.EqualRune(r), "symbol[%d]: want %q, got %#v", i, r, got)
	}
	got := tp.Reads(tape.Forward)
	assert.True(t, got.IsBlank(), "want blank after %q, got %#v", want, got)
}

// AssertSymbols asserts that two symbol slices are equal, reporting the
// first mismatch in diagnostic form.
func AssertSymbols(t *testing.T, want, got []symbol.Symbol) {
	t.Helper()

	require.Len(t, got, len(want), "symbol count mismatch")
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "symbol[%d]: want %#v, got %#v", i, want[i], got[i])
	}
}

// AssertRendered asserts the rendered form of tp.
func AssertRendered(t *testing.T, tp *tape.Tape, want string) {
	t.Helper()
	assert.Equal(t, want, tp.String(), "rendered tape mismatch")
}
