// Package config handles application configuration management.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/asteroid-belt/typekit/internal/tokens"
	"github.com/asteroid-belt/typekit/pkg/version"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for typekit state such as logs (~/.local/state/typekit)
	BaseDir string `yaml:"-"`

	// Reference viewport widths of the type scale
	Breakpoints tokens.Breakpoints `yaml:"breakpoints"`

	// Demo theme: "punk", "neon" or "blood"
	Theme string `yaml:"theme"`

	// Optional semver constraint on the typekit build, e.g. ">= 1.2"
	RequiredVersion string `yaml:"required_version,omitempty"`

	// ConfigFile is the path the file layer was read from, if any
	ConfigFile string `yaml:"-"`
}

// Environment variables read by Load.
const (
	EnvHome           = "TYPEKIT_HOME"
	EnvConfigFile     = "TYPEKIT_CONFIG"
	EnvSmallestScreen = "TYPEKIT_SMALLEST_SCREEN"
	EnvLargestScreen  = "TYPEKIT_LARGEST_SCREEN"
	EnvTheme          = "TYPEKIT_THEME"
)

// Load builds the configuration from defaults, the YAML config file (if it
// exists) and environment variables, in that order of precedence.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if home := os.Getenv(EnvHome); home != "" {
		cfg.BaseDir = home
	}

	path := os.Getenv(EnvConfigFile)
	if path == "" {
		path = DefaultConfigFile()
	}
	if err := loadFile(cfg, path); err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Ensure directories exist
	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile merges the YAML file at path into cfg. A missing file is not an error.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.ConfigFile = path
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvSmallestScreen); v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSmallestScreen, v, err)
		}
		cfg.Breakpoints.Smallest = f
	}
	if v := os.Getenv(EnvLargestScreen); v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvLargestScreen, v, err)
		}
		cfg.Breakpoints.Largest = f
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = strings.ToLower(v)
	}
	return nil
}

// Validate rejects breakpoints the type scale cannot interpolate over and
// builds outside the configured version constraint.
func (c *Config) Validate() error {
	if err := c.Breakpoints.Validate(); err != nil {
		return fmt.Errorf("config breakpoints: %w", err)
	}
	if c.RequiredVersion != "" {
		ok, err := version.Satisfies(c.RequiredVersion)
		if err != nil {
			return fmt.Errorf("invalid required_version %q: %w", c.RequiredVersion, err)
		}
		if !ok {
			return fmt.Errorf("config requires typekit %s, running %s", c.RequiredVersion, version.Short())
		}
	}
	return nil
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	paths := GetPaths(cfg)
	for _, dir := range []string{cfg.BaseDir, paths.Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
