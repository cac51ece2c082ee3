// Package config loads the optional .turing/config.yaml file that sets the
// defaults of the turing command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/thruflo/turing/internal/logging"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultLogLevel  = "warn"
	DefaultColor     = ColorAuto
	DefaultCaret     = true
	DefaultScanLimit = 64
)

// DefaultCases are the inputs checked by nodupes when neither the command
// line nor the config file names any.
var DefaultCases = []string{
	"abcdefghijklmnopqrstuvwxyz",
	"abcdefghijklmnopqrstavwxyz",
	"thequickbrownfxjmpdvlazyg",
	"the quick brown blah blah",
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Log:     Log{Level: DefaultLogLevel},
		Display: Display{Color: DefaultColor, Caret: DefaultCaret},
		Scan:    Scan{Limit: DefaultScanLimit},
		Cases:   slices.Clone(DefaultCases),
	}
}

// Path returns the location of the config file under basePath.
func Path(basePath string) string {
	return filepath.Join(basePath, ".turing", "config.yaml")
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// LoadConfig reads .turing/config.yaml under basePath. A missing file yields
// the default config.
func LoadConfig(basePath string) (*Config, error) {
	return LoadFile(Path(basePath), false)
}

// LoadFile reads the config at path, applying defaults for missing fields.
// If required is false a missing file yields the default config.
func LoadFile(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return ValidationError{Field: "log.level", Message: "must be one of debug, info, warn, error"}
	}
	switch cfg.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return ValidationError{Field: "display.color", Message: "must be one of auto, always, never"}
	}
	if cfg.Scan.Limit <= 0 {
		return ValidationError{Field: "scan.limit", Message: "must be positive"}
	}
	return nil
}
