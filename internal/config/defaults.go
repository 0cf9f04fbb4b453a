package config

import "github.com/asteroid-belt/typekit/internal/tokens"

// DefaultTheme is the demo theme used when none is configured.
const DefaultTheme = "punk"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseDir:     DefaultBaseDir(),
		Breakpoints: tokens.DefaultBreakpoints(),
		Theme:       DefaultTheme,
	}
}
