// Package config loads the CLI configuration file.
//
// Example:
//
//	log_level: debug
//	assertions: true
//	deprecation_warnings: true
//	output: yaml
//	transforms:
//	  - name: triple
//	    kind: scale
//	    factor: 3
//	  - name: half
//	    kind: scale
//	    factor: 0.5
//	    deprecated: use "scale" with an explicit factor
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"dimension-mapper/internal/format"
	"dimension-mapper/internal/transform"
)

// Config is the parsed configuration file.
type Config struct {
	LogLevel            string          `yaml:"log_level,omitempty"`
	Assertions          *bool           `yaml:"assertions,omitempty"`
	DeprecationWarnings *bool           `yaml:"deprecation_warnings,omitempty"`
	Output              string          `yaml:"output,omitempty"`
	Transforms          []transform.Def `yaml:"transforms,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Output == "" {
		c.Output = format.JSON.String()
	}

	if c.Assertions == nil {
		c.Assertions = ptr(true)
	}

	if c.DeprecationWarnings == nil {
		c.DeprecationWarnings = ptr(true)
	}
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	if _, err := c.OutputFormat(); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	return nil
}

// Level returns the zap level named by LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}

	return lvl, nil
}

// OutputFormat returns the parsed Output.
func (c *Config) OutputFormat() (format.Kind, error) {
	return format.Parse(c.Output)
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes a Config to the given path.
func WriteFile(c *Config, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

func ptr[T any](v T) *T { return &v }
