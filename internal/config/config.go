// Package config provides configuration management for dprpwg-gen.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/dprpwg-gen/internal/entropy"
	generr "github.com/mrz1836/dprpwg-gen/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Version   int             `yaml:"version" json:"version"`
	Generator GeneratorConfig `yaml:"generator" json:"generator"`
	Output    OutputConfig    `yaml:"output" json:"output"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
}

// GeneratorConfig defines header generation settings.
type GeneratorConfig struct {
	Template string `yaml:"template" json:"template"`
	Bits     int    `yaml:"bits" json:"bits"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	Verbose       bool   `yaml:"verbose" json:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// Load reads configuration from the specified file on top of Defaults.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, generr.WithDetails(generr.WithCause(generr.ErrConfigNotFound, err),
				map[string]string{"path": path})
		}
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, generr.WithDetails(generr.WithCause(generr.ErrConfigInvalid, err),
			map[string]string{"path": path})
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Validate checks the configuration for values the generator cannot use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Generator.Template) == "" {
		return generr.WithSuggestion(
			generr.Wrap(generr.ErrConfigInvalid, "template path is empty"),
			"pass --template or set "+EnvTemplate)
	}

	if !entropy.ValidWidth(c.Generator.Bits) {
		return generr.WithDetails(
			generr.Wrap(generr.ErrConfigInvalid, "unsupported bit width"),
			map[string]string{"bits": fmt.Sprint(c.Generator.Bits)})
	}

	return nil
}

// GetTemplate returns the template path.
func (c *Config) GetTemplate() string {
	return c.Generator.Template
}

// GetBits returns the width of each generated integer.
func (c *Config) GetBits() int {
	return c.Generator.Bits
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}
