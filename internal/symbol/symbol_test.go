package symbol

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	s, err := New('s')
	require.NoError(t, err)
	assert.False(t, s.IsBlank())
	assert.Equal(t, "s", s.String())

	_, err = New(-1)
	assert.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = New(0xD800) // lone surrogate
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestMustPanicsOnInvalidRune(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { Must('x') })
	assert.Panics(t, func() { Must(-1) })
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Symbol
		wantErr bool
	}{
		{"ascii", "a", Must('a'), false},
		{"space", " ", Must(' '), false},
		{"multibyte", "é", Must('é'), false},
		{"empty", "", Blank, true},
		{"two characters", "ab", Blank, true},
		{"longer string", "longer string", Blank, true},
		{"invalid utf8", "\xff", Blank, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSymbol)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     any
		want    Symbol
		wantErr bool
	}{
		{"one character string", "s", Must('s'), false},
		{"rune", 'r', Must('r'), false},
		{"byte", byte('b'), Must('b'), false},
		{"nil is blank", nil, Blank, false},
		{"symbol is returned unchanged", Must('q'), Must('q'), false},
		{"blank is returned unchanged", Blank, Blank, false},
		{"empty string", "", Blank, true},
		{"long string", "longer string", Blank, true},
		{"int", 1, Blank, true},
		{"slice", []string{}, Blank, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Create(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSymbol)
				var ise *InvalidSymbolError
				require.True(t, errors.As(err, &ise))
				assert.Equal(t, tt.raw, ise.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlankIdentity(t *testing.T) {
	t.Parallel()

	a, err := Create(nil)
	require.NoError(t, err)
	b, err := Create(nil)
	require.NoError(t, err)

	assert.True(t, a == b)
	assert.True(t, a == Blank)
	assert.True(t, Symbol{} == Blank)
	assert.True(t, a.IsBlank())
	assert.True(t, a.Equal(Blank))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Must('a').Equal(Must('a')))
	assert.True(t, Must('a').EqualRune('a'))
	assert.False(t, Must('a').Equal(Must('b')))
	assert.False(t, Must('a').EqualRune('b'))
	assert.False(t, Must('a').Equal(Blank))
	assert.False(t, Blank.Equal(Must('a')))
	assert.True(t, Blank.Equal(Blank))
}

func TestBlankIsNotSpace(t *testing.T) {
	t.Parallel()

	space := Must(' ')

	// Same text, different values.
	assert.Equal(t, space.String(), Blank.String())
	assert.False(t, Blank.Equal(space))
	assert.False(t, space.Equal(Blank))
	assert.False(t, Blank.EqualRune(' '))
	assert.False(t, space.IsBlank())
}

func TestRune(t *testing.T) {
	t.Parallel()

	r, ok := Must('z').Rune()
	assert.True(t, ok)
	assert.Equal(t, 'z', r)

	_, ok = Blank.Rune()
	assert.False(t, ok)
}

func TestFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sym      Symbol
		str      string
		goString string
	}{
		{Must('a'), "a", "Symbol('a')"},
		{Must('A'), "A", "Symbol('A')"},
		{Must('1'), "1", "Symbol('1')"},
		{Blank, " ", "Symbol(<blank>)"},
	}

	for _, tt := range tests {
		t.Run(tt.goString, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.str, tt.sym.String())
			assert.Equal(t, tt.str, fmt.Sprint(tt.sym))
			assert.Equal(t, tt.goString, fmt.Sprintf("%#v", tt.sym))
		})
	}
}

func TestInvalidSymbolErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := Parse("ab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ab"`)
	assert.Contains(t, err.Error(), "single character")
}
