// Package testutil provides shared test helpers for turing.
//
// # Fixtures
//
// The fixtures.go file provides sample tape inputs:
//
//   - Alphabet, AlphabetWithRepeat - the two inputs of the duplicate check
//   - SampleInputs() - assorted inputs, including empty and multibyte ones
//   - DuplicateCases() - inputs with their expected duplicate check outcome
//
// # Environment Helpers
//
// The env.go file provides test environment setup:
//
//   - SetupConfigDir(t, content) - temp dir holding .turing/config.yaml
//   - WriteConfigFile(t, content) - standalone config file path
//
// # Assertions
//
// The assertions.go file provides tape assertions:
//
//   - AssertReads(t, tp, want) - reading forward yields want then a blank
//   - AssertSymbols(t, want, got) - compares symbols by their text and blankness
//   - AssertRendered(t, tp, want) - compares the rendered tape
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//	    tp := tape.New(testutil.Alphabet)
//	    testutil.AssertReads(t, tp, testutil.Alphabet)
//	}
package testutil
