package design

import "github.com/charmbracelet/lipgloss"

// Logo colors, shared by every theme.
const (
	// LogoColorPrimary is the wordmark color.
	LogoColorPrimary = "#DC143C"
	// LogoColorAccent is the tagline color.
	LogoColorAccent = "#D4A84B"
)

// TypekitLogo is the wordmark shown above the demo when there is room for it.
const TypekitLogo = `
▀█▀ █▄█ █▀█ █▀▀ █▄▀ █ ▀█▀
 █   █  █▀▀ ██▄ █ █ █  █ `

// TypekitTagline goes under the wordmark.
const TypekitTagline = "responsive type scales"

// TypekitLogoMinimal is a single-line version for short terminals.
const TypekitLogoMinimal = "typekit demo"

// MinLogoHeight is the terminal height below which the minimal logo is used.
const MinLogoHeight = 36

// RenderLogo renders the wordmark for a terminal of the given height.
func RenderLogo(height int) string {
	primary := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(LogoColorPrimary))
	if height < MinLogoHeight {
		return primary.Render(TypekitLogoMinimal)
	}
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(LogoColorAccent))
	return primary.Render(TypekitLogo[1:]) + "\n" + accent.Render(TypekitTagline)
}
