package tape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/turing/internal/symbol"
)

func TestScan(t *testing.T) {
	t.Parallel()

	tp := New("0123456789")
	values := tp.Scan(Forward).Take(11)

	require.Len(t, values, 11)
	for i := range 10 {
		assert.True(t, values[i].EqualRune(rune('0'+i)), "value %d", i)
	}
	assert.Equal(t, symbol.Blank, values[10])
}

func TestScanYieldsBlankAfterContent(t *testing.T) {
	t.Parallel()

	for _, input := range sampleInputs {
		runes := []rune(input)
		values := New(input).Scan(Forward).Take(len(runes) + 1)

		require.Len(t, values, len(runes)+1)
		for i, r := range runes {
			assert.True(t, values[i].EqualRune(r), "input %q index %d", input, i)
		}
		assert.True(t, values[len(runes)].IsBlank(), "input %q", input)
	}
}

func TestScanNeverEnds(t *testing.T) {
	t.Parallel()

	values := New("ab").Scan(Forward).Take(1000)
	require.Len(t, values, 1000)
	for _, v := range values[2:] {
		assert.True(t, v.IsBlank())
	}
}

func TestScanReverse(t *testing.T) {
	t.Parallel()

	tp := New("abc")
	tp.Step(Forward)
	tp.Step(Forward)

	values := tp.Scan(Reverse).Take(4)
	assert.True(t, values[0].EqualRune('c'))
	assert.True(t, values[1].EqualRune('b'))
	assert.True(t, values[2].EqualRune('a'))
	assert.True(t, values[3].IsBlank())
}

func TestScanLeavesHeadOnLastValue(t *testing.T) {
	t.Parallel()

	tp := New("abc")
	sc := tp.Scan(Forward)

	assert.True(t, sc.Next().EqualRune('a'))
	assert.Equal(t, 0, tp.Head())
	assert.True(t, sc.Next().EqualRune('b'))
	assert.Equal(t, 1, tp.Head())

	// The cell just produced is still under the head.
	tp.Write(symbol.Must('B'))
	assert.True(t, sc.Next().EqualRune('c'))
	tp.Reset()
	assert.Equal(t, "aBc", tp.String())
}

func TestScanSharesTapeHead(t *testing.T) {
	t.Parallel()

	tp := New("abc")
	sc := tp.Scan(Forward)
	sc.Next()
	tp.Reset()
	tp.Step(Reverse)

	// The deferred step is applied from wherever the head now is.
	assert.True(t, sc.Next().EqualRune('a'))
}

func TestScanAll(t *testing.T) {
	t.Parallel()

	tp := New("hello")
	var got []rune
	for s := range tp.Scan(Forward).All() {
		r, ok := s.Rune()
		if !ok {
			break
		}
		got = append(got, r)
	}
	assert.Equal(t, "hello", string(got))
	assert.Equal(t, 5, tp.Head())
}

func TestScanAllBreakKeepsPosition(t *testing.T) {
	t.Parallel()

	tp := New("abcdef")
	sc := tp.Scan(Forward)
	for s := range sc.All() {
		if s.EqualRune('c') {
			break
		}
	}
	assert.True(t, tp.Read().EqualRune('c'))

	// Resuming continues after the symbol the loop stopped on.
	assert.True(t, sc.Next().EqualRune('d'))
}

func TestTakeNonPositive(t *testing.T) {
	t.Parallel()

	tp := New("abc")
	assert.Empty(t, tp.Scan(Forward).Take(0))
	assert.Empty(t, tp.Scan(Forward).Take(-3))
	assert.Equal(t, 0, tp.Head())
}
