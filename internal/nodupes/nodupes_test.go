package nodupes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thruflo/turing/internal/symbol"
	"github.com/thruflo/turing/internal/tape"
	"github.com/thruflo/turing/internal/testutil"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		unique    bool
		duplicate symbol.Symbol
		position  int
	}{
		{"alphabet", "abcdefghijklmnopqrstuvwxyz", true, symbol.Blank, 26},
		{"repeated a", "abcdefghijklmnopqrstavwxyz", false, symbol.Must('a'), 20},
		{"pangram without repeats", "thequickbrownfxjmpdvlazyg", true, symbol.Blank, 25},
		{"repeated space", "the quick brown blah blah", false, symbol.Must(' '), 9},
		{"empty", "", true, symbol.Blank, 0},
		{"single", "x", true, symbol.Blank, 1},
		{"adjacent", "xx", false, symbol.Must('x'), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := tape.New(tt.input)
			res := Check(in)

			assert.Equal(t, tt.unique, res.Unique)
			assert.Equal(t, tt.duplicate, res.Duplicate)
			assert.Equal(t, tt.position, res.Position)
			assert.Equal(t, tt.position, in.Head())
			if !tt.unique {
				assert.Equal(t, tt.duplicate, in.Read())
			}
		})
	}
}

func TestCheckDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	in := tape.New("abcabc")
	before := in.Copy()
	Check(in)
	assert.True(t, before.Equal(in))
}

func TestCheckStartsAtHead(t *testing.T) {
	t.Parallel()

	in := tape.New("aabc")
	in.Step(tape.Forward)
	res := Check(in)
	assert.True(t, res.Unique)
	assert.Equal(t, 4, res.Position)
}

func TestCheckFixtures(t *testing.T) {
	t.Parallel()

	for _, tc := range testutil.DuplicateCases() {
		in := tape.New(tc.Input)
		res := Check(in)
		assert.Equal(t, tc.Unique, res.Unique, tc.Input)
		if tc.Unique {
			assert.True(t, res.Duplicate.IsBlank(), tc.Input)
			continue
		}
		assert.True(t, res.Duplicate.EqualRune(tc.Duplicate), tc.Input)
		assert.True(t, in.Read().EqualRune(tc.Duplicate), tc.Input)
	}
}
