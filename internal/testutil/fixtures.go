package testutil

// Alphabet holds 26 distinct symbols.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// AlphabetWithRepeat is Alphabet with its 21st symbol replaced by a second 'a'.
const AlphabetWithRepeat = "abcdefghijklmnopqrstavwxyz"

// SampleInputs returns assorted tape inputs.
// Returns a new slice each time to prevent test interference.
func SampleInputs() []string {
	return []string{
		"",
		"a",
		"abc",
		"0123456789",
		"the quick brown fox",
		"héllo wörld",
		Alphabet,
	}
}

// DuplicateCase is an input with the expected duplicate check outcome.
type DuplicateCase struct {
	Input     string
	Unique    bool
	Duplicate rune
}

// DuplicateCases returns the inputs used to exercise the duplicate check.
func DuplicateCases() []DuplicateCase {
	return []DuplicateCase{
		{Input: Alphabet, Unique: true},
		{Input: AlphabetWithRepeat, Unique: false, Duplicate: 'a'},
		{Input: "thequickbrownfxjmpdvlazyg", Unique: true},
		{Input: "the quick brown blah blah", Unique: false, Duplicate: ' '},
		{Input: "", Unique: true},
		{Input: "xx", Unique: false, Duplicate: 'x'},
	}
}
