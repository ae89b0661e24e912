// Package config loads optional CLI defaults from a .loxrc.yaml file in
// the current directory, using github.com/goccy/go-yaml the way the rest
// of the corpus reaches for YAML over hand-rolled parsing.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

const fileName = ".loxrc.yaml"

// Config holds CLI defaults. Every field's zero value matches current
// behavior, so a missing or partial file is never an error.
type Config struct {
	// MaxCallDepth bounds recursive call nesting. Zero means use
	// interp.DefaultMaxCallDepth.
	MaxCallDepth int `yaml:"maxCallDepth"`

	// Color is read from the file but not consulted anywhere; diagnostic
	// output is always plain text.
	Color bool `yaml:"color"`

	// ClockEpoch pins clock() to a fixed seconds-since-epoch value instead
	// of wall-clock time, so REPL transcripts can be reproduced in tests.
	// Nil means use the real clock.
	ClockEpoch *float64 `yaml:"clockEpoch"`
}

// Load reads fileName from dir. A missing file returns a zero-value
// Config and no error.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(dir + string(os.PathSeparator) + fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Clock returns the configured fixed-epoch clock function, or nil when
// ClockEpoch is unset, meaning the caller should use the real clock.
func (c *Config) Clock() func() float64 {
	if c == nil || c.ClockEpoch == nil {
		return nil
	}
	epoch := *c.ClockEpoch
	return func() float64 { return epoch }
}
