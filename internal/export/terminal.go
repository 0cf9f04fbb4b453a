package export

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderTerminal renders markdown with Glamour for display on a terminal.
// It falls back to the raw markdown when rendering fails.
func RenderTerminal(markdown string, width int) string {
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}

	return strings.TrimRight(rendered, "\n") + "\n"
}
