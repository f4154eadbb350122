package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultVersion = 1

	// Output formats accepted by the CLI.
	FormatText = "text"
	FormatJSON = "json"

	DefaultFormat = FormatText

	// DefaultDir and DefaultFile locate the config relative to the working directory.
	DefaultDir  = ".brik"
	DefaultFile = "config.json"
)

// DefaultPath is the config location used when --config is not given.
var DefaultPath = filepath.Join(DefaultDir, DefaultFile)

// Config defines CLI configuration stored in .brik/config.json.
type Config struct {
	Version int           `json:"version"`
	Output  *OutputConfig `json:"output,omitempty"`
}

// OutputConfig holds output rendering settings.
type OutputConfig struct {
	// Format is "text" or "json" (default "text").
	Format *string `json:"format,omitempty"`

	// Color controls styled text output (default true).
	Color *bool `json:"color,omitempty"`
}

// GetFormat returns the output format (default "text").
func (c *OutputConfig) GetFormat() string {
	if c == nil || c.Format == nil {
		return DefaultFormat
	}
	return *c.Format
}

// ColorEnabled returns whether styled output is enabled (default true).
func (c *OutputConfig) ColorEnabled() bool {
	if c == nil || c.Color == nil {
		return true
	}
	return *c.Color
}

// Validate checks that output settings hold supported values.
func (c *OutputConfig) Validate() error {
	if c == nil || c.Format == nil {
		return nil
	}
	if !IsValidFormat(*c.Format) {
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, *c.Format)
	}
	return nil
}

// IsValidFormat reports whether format is a supported output format.
func IsValidFormat(format string) bool {
	return format == FormatText || format == FormatJSON
}

// Default returns the default config.
func Default() Config {
	return Config{
		Version: DefaultVersion,
	}
}

// Load reads config from disk and applies defaults for zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config not found: %w", err)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(data)
}

// LoadOrDefault reads config from disk, returning defaults if file doesn't exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func parse(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes a config to disk, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("invalid output config: %w", err)
	}
	return nil
}
