// Package config holds the interpreter's user configuration, loaded from a
// YAML file. Everything has a working default; a missing config file is not
// an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up under the user's home directory when no
// explicit --config path is given.
const DefaultFileName = ".hexagony.yaml"

// Config holds all interpreter configuration.
type Config struct {
	// Debugger rendering
	Debugger DebuggerConfig `yaml:"debugger"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DebuggerConfig configures the pause renderer.
type DebuggerConfig struct {
	// ViewRings is how many memory rings around the MP are shown.
	ViewRings int `yaml:"view_rings"`
	// Color enables ANSI highlighting of IPs and the MP. It is still
	// suppressed when STDOUT is not a terminal.
	Color bool `yaml:"color"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Debugger: DebuggerConfig{
			ViewRings: 4,
			Color:     true,
		},
	}
}

// Load loads configuration from a YAML file, layered over the defaults.
// A nonexistent path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads $HOME/.hexagony.yaml if present, else the defaults.
func LoadDefault() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfig(), nil
	}
	return Load(filepath.Join(home, DefaultFileName))
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Debugger.ViewRings < 1 {
		return fmt.Errorf("debugger.view_rings must be at least 1, got %d", c.Debugger.ViewRings)
	}
	return nil
}
