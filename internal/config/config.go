/*
Config Module - Optional Ambient Settings
==========================================

The expression-factoring contract itself takes no flags, env vars, or
persisted state (SPEC_FULL §6). This package covers the one knob the ambient
Go stack adds on top of that contract: an optional exptwig.yaml, loaded the
same way the teacher's constants package loaded constants.json — read the
file if it exists, parse it, otherwise fall back to hardcoded defaults.

Two things live here:
  - AllocatorBudget, a testing knob that lets the property tests in
    SPEC_FULL §8 simulate "allocation failure" deterministically instead of
    actually exhausting memory.
  - Logger level/format, consumed by internal/diagnostics.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every ambient setting this repository's CLI recognizes.
type Config struct {
	// AllocatorBudget caps the number of allocation units the parser and
	// factoring engine may charge before reporting allocation failure: one
	// per token the parser pushes or node it reduces, and one per
	// substitution in the factoring engine. A negative value (the default)
	// means unlimited.
	AllocatorBudget int `yaml:"allocatorBudget"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"logLevel"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"logFormat"`
}

// Default returns the hardcoded defaults used when no config file exists.
func Default() *Config {
	return &Config{
		AllocatorBudget: -1,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load reads and parses the YAML config at path. If the file does not
// exist, Load silently returns Default() — the contract in SPEC_FULL §6
// guarantees a bare invocation needs no file present. Any other read or
// parse error is returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg for self-consistency, the way settings.Set validated
// a precision value against a fixed range.
func Validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid logLevel %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: invalid logFormat %q", cfg.LogFormat)
	}
	return nil
}
