package config

// Color modes for Display.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
}

// Display controls how tapes are printed.
type Display struct {
	// Color is one of ColorAuto, ColorAlways or ColorNever.
	Color string `yaml:"color"`
	// Caret prints a second line marking the head under the tape.
	Caret bool `yaml:"caret"`
}

// Scan bounds the scan command.
type Scan struct {
	// Limit is the number of symbols printed when no --limit is given.
	Limit int `yaml:"limit"`
}

// Config represents the .turing/config.yaml file.
type Config struct {
	Log     Log     `yaml:"log"`
	Display Display `yaml:"display"`
	Scan    Scan    `yaml:"scan"`
	// Cases are the inputs checked by the nodupes command when none are
	// given on the command line.
	Cases []string `yaml:"cases"`
}
