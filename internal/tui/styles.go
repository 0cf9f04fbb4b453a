package tui

import (
	"github.com/asteroid-belt/typekit/internal/tui/theme"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the Lipgloss styles of the demo, derived from a theme.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Box     lipgloss.Style

	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
	Accent    lipgloss.Style

	Bar      lipgloss.Style
	BarEmpty lipgloss.Style
	Pinned   lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles builds the style set for t.
func NewStyles(t theme.Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary).
			MarginTop(1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		Normal:    lipgloss.NewStyle().Foreground(t.Text),
		Muted:     lipgloss.NewStyle().Foreground(t.TextMuted),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(t.TextHighlight),
		Accent:    lipgloss.NewStyle().Foreground(t.Accent),

		Bar:      lipgloss.NewStyle().Foreground(t.Primary),
		BarEmpty: lipgloss.NewStyle().Foreground(t.Border),
		Pinned:   lipgloss.NewStyle().Foreground(t.Warning),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(t.Error),
	}
}
