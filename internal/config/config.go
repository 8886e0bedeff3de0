// Package config provides YAML-based application settings with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	appDir     = "figcentroid"
	configFile = "config.yaml"
)

// Config holds user settings. Precedence is command-line flags, then
// environment, then the config file, then defaults.
type Config struct {
	// Decimals printed in reports.
	Precision int `yaml:"precision" env:"FIGCENTROID_PRECISION"`
	// Styled enables terminal styling of reports.
	Styled bool `yaml:"styled" env:"FIGCENTROID_STYLED"`
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"FIGCENTROID_LOG_LEVEL"`

	path string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{Precision: 2, LogLevel: "info"}
}

// DefaultPath returns ~/.config/figcentroid/config.yaml or the platform
// equivalent.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, appDir, configFile)
}

// Load reads settings from the default path.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads settings from path, then applies environment overrides.
// A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > 12 {
		return fmt.Errorf("precision %d out of range 0..12", c.Precision)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level means info.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// Path returns the file the settings were loaded from.
func (c *Config) Path() string {
	return c.path
}

// Save writes the settings back to their file.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = DefaultPath()
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
