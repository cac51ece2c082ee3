// Package render prints tapes for people: the two-line head display with an
// optional highlighted head cell, bold labels, and colour detection for
// terminals.
package render

import (
	"io"
	"os"
	"strings"

	"github.com/thruflo/turing/internal/config"
	"github.com/thruflo/turing/internal/tape"
	"golang.org/x/term"
)

// ANSI style codes.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Reverse = "\033[7m"
	FgRed   = "\033[31m"
	FgGreen = "\033[32m"
)

// Style applies ANSI style codes to text.
func Style(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// Styler applies styles only when Color is set.
type Styler struct {
	Color bool
}

// Apply styles s when colour is enabled and returns it unchanged otherwise.
func (st Styler) Apply(s string, codes ...string) string {
	if !st.Color {
		return s
	}
	return Style(s, codes...)
}

// Label renders a field label, bold when colour is enabled.
func (st Styler) Label(s string) string {
	return st.Apply(s, Bold)
}

// Verdict renders a boolean outcome, green for true and red for false.
func (st Styler) Verdict(ok bool, s string) string {
	if ok {
		return st.Apply(s, FgGreen)
	}
	return st.Apply(s, FgRed)
}

// ColorEnabled resolves a config colour mode for output w. In auto mode
// colour is used only when w is a terminal.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Head returns the head display of t: the rendered window, and when caret
// is set a second line with a caret under the head. With colour on, the
// head cell is drawn in reverse video.
func (st Styler) Head(t *tape.Tape, caret bool) []string {
	content, marker := t.Lines()
	offset := len(marker) - 1

	line := content
	if st.Color {
		runes := []rune(content)
		line = string(runes[:offset]) +
			Style(string(runes[offset]), Reverse) +
			string(runes[offset+1:])
	}

	if !caret {
		return []string{line}
	}
	return []string{line, marker}
}
