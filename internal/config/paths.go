package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains commonly used file paths.
type Paths struct {
	Config string // YAML config file
	Logs   string // Log directory
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	configFile := cfg.ConfigFile
	if configFile == "" {
		configFile = DefaultConfigFile()
	}
	return Paths{
		Config: configFile,
		Logs:   filepath.Join(cfg.BaseDir, "logs"),
	}
}

// DefaultBaseDir returns the default state directory ($XDG_STATE_HOME/typekit).
func DefaultBaseDir() string {
	return filepath.Join(xdg.StateHome, "typekit")
}

// DefaultConfigFile returns $XDG_CONFIG_HOME/typekit/config.yaml.
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, "typekit", "config.yaml")
}
