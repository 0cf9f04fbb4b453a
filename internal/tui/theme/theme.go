// Package theme provides color theming for the demo TUI.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name string

	// Primary colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Surfaces
	Surface lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor

	// Text colors
	Text          lipgloss.AdaptiveColor
	TextMuted     lipgloss.AdaptiveColor
	TextHighlight lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
}

// Punk is the default crimson-and-gold scheme.
var Punk = Theme{
	Name:      "punk",
	Primary:   lipgloss.AdaptiveColor{Light: "#8B0000", Dark: "#DC143C"}, // Crimson
	Secondary: lipgloss.AdaptiveColor{Light: "#6B3FA0", Dark: "#9B59B6"}, // Purple
	Accent:    lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#F1C40F"}, // Gold

	Surface: lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#1A1A1A"},
	Border:  lipgloss.AdaptiveColor{Light: "#C8C8C8", Dark: "#3A3A3A"},

	Text:          lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E5E5E5"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#6B6B6B"},
	TextHighlight: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},

	Success: lipgloss.AdaptiveColor{Light: "#008000", Dark: "#00FF41"},
	Warning: lipgloss.AdaptiveColor{Light: "#CC5500", Dark: "#FF6B35"},
	Error:   lipgloss.AdaptiveColor{Light: "#CC0033", Dark: "#FF0040"},
}

// Neon is a synthwave-inspired scheme.
var Neon = Theme{
	Name:      "neon",
	Primary:   lipgloss.AdaptiveColor{Light: "#AA00AA", Dark: "#FF00FF"}, // Magenta
	Secondary: lipgloss.AdaptiveColor{Light: "#008B8B", Dark: "#00FFFF"}, // Cyan
	Accent:    lipgloss.AdaptiveColor{Light: "#B8B800", Dark: "#FFFF00"}, // Yellow

	Surface: lipgloss.AdaptiveColor{Light: "#F0F0F0", Dark: "#111111"},
	Border:  lipgloss.AdaptiveColor{Light: "#B0B0B0", Dark: "#333366"},

	Text:          lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#888888", Dark: "#888888"},
	TextHighlight: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},

	Success: lipgloss.AdaptiveColor{Light: "#228B22", Dark: "#39FF14"},
	Warning: lipgloss.AdaptiveColor{Light: "#CC7700", Dark: "#FF9500"},
	Error:   lipgloss.AdaptiveColor{Light: "#CC0022", Dark: "#FF073A"},
}

// Blood is a dark red and black scheme.
var Blood = Theme{
	Name:      "blood",
	Primary:   lipgloss.AdaptiveColor{Light: "#660000", Dark: "#8B0000"},
	Secondary: lipgloss.AdaptiveColor{Light: "#8B1A2B", Dark: "#C41E3A"},
	Accent:    lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD700"},

	Surface: lipgloss.AdaptiveColor{Light: "#FFF5F5", Dark: "#1A0000"},
	Border:  lipgloss.AdaptiveColor{Light: "#E0B0B0", Dark: "#4A0000"},

	Text:          lipgloss.AdaptiveColor{Light: "#1A0000", Dark: "#EEEEEE"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#666666", Dark: "#666666"},
	TextHighlight: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},

	Success: lipgloss.AdaptiveColor{Light: "#006600", Dark: "#00AA00"},
	Warning: lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"},
	Error:   lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF0000"},
}

// All returns the built-in themes in cycle order.
func All() []Theme {
	return []Theme{Punk, Neon, Blood}
}

// Get returns the theme called name.
func Get(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range All() {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want punk, neon or blood)", name)
}

// Next returns the theme after t, wrapping around.
func Next(t Theme) Theme {
	all := All()
	for i, candidate := range all {
		if candidate.Name == t.Name {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
