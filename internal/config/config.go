// Package config provides configuration management for lastword.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/lastword/internal/fileutil"
	lwerr "github.com/mrz1836/lastword/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Version    int              `yaml:"version"`
	Home       string           `yaml:"home"`
	Input      InputConfig      `yaml:"input"`
	Completion CompletionConfig `yaml:"completion"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// InputConfig defines how phrases are read.
type InputConfig struct {
	// StripNumbering removes list markers and commas from pasted phrases.
	StripNumbering bool `yaml:"strip_numbering"`
}

// CompletionConfig defines final-word completion settings.
type CompletionConfig struct {
	// Workers is the parallel enumeration width. Zero means sequential.
	Workers int `yaml:"workers"`
	// Verify re-checks every candidate with an independent BIP39 implementation.
	Verify bool `yaml:"verify"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Color         string `yaml:"color"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	// File is the log path. Empty means lastword.log under Home.
	File string `yaml:"file"`
}

// Load reads configuration from the specified file.
// A missing file yields ErrConfigNotFound; malformed YAML yields ErrConfigInvalid.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, lwerr.WithDetails(lwerr.ErrConfigNotFound, map[string]string{"path": path})
		}
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, lwerr.WithDetails(lwerr.ErrConfigInvalid, map[string]string{"path": path, "reason": err.Error()})
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return fileutil.WriteAtomic(path, data, 0o600)
}

// Path returns the config file path under home.
func Path(home string) string {
	return filepath.Join(fileutil.ExpandHome(home), "config.yaml")
}

// LogPath returns the effective log file path.
func (c *Config) LogPath() string {
	if c.Logging.File != "" {
		return fileutil.ExpandHome(c.Logging.File)
	}
	return filepath.Join(fileutil.ExpandHome(c.Home), "lastword.log")
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	invalid := func(key, value string) error {
		return lwerr.WithDetails(lwerr.ErrConfigInvalid, map[string]string{"key": key, "value": value})
	}

	switch c.Output.DefaultFormat {
	case "", "auto", "text", "json":
	default:
		return invalid("output.default_format", c.Output.DefaultFormat)
	}

	switch c.Output.Color {
	case "", "auto", "always", "never":
	default:
		return invalid("output.color", c.Output.Color)
	}

	switch c.Logging.Level {
	case "", "off", "none", "error", "debug":
	default:
		return invalid("logging.level", c.Logging.Level)
	}

	if c.Completion.Workers < 0 {
		return invalid("completion.workers", "negative")
	}

	return nil
}

// DefaultHome returns the default lastword home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lastword"
	}
	return filepath.Join(home, ".lastword")
}
