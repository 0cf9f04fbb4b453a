// Package tui is the demo application: a Bubble Tea showcase of the design
// tokens in which the terminal width stands in for the viewport width.
package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/asteroid-belt/typekit/internal/tokens"
	"github.com/asteroid-belt/typekit/internal/tui/design"
	"github.com/asteroid-belt/typekit/internal/tui/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Simulated viewport parameters.
const (
	// CellWidth is the px width of one terminal column.
	CellWidth = 8.0
	// WidthStep and WidthJump are the manual resize increments in px.
	WidthStep = 40.0
	WidthJump = 200.0

	barCells = 24
)

// Model is the Bubble Tea model of the demo.
type Model struct {
	keymap      Keymap
	help        help.Model
	theme       theme.Theme
	styles      Styles
	breakpoints tokens.Breakpoints

	width    int
	height   int
	viewport float64
	manual   bool
	ready    bool

	// OnThemeChange is called after the theme is cycled.
	OnThemeChange func(theme.Theme)
}

// New creates the demo model.
func New(bp tokens.Breakpoints, t theme.Theme) Model {
	return Model{
		keymap:      DefaultKeymap(),
		help:        help.New(),
		theme:       t,
		styles:      NewStyles(t),
		breakpoints: bp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Viewport returns the simulated viewport width in px.
func (m Model) Viewport() float64 {
	return m.viewport
}

// Theme returns the active theme.
func (m Model) Theme() theme.Theme {
	return m.theme
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		if !m.manual {
			m.viewport = float64(msg.Width) * CellWidth
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Shrink):
			m.resize(-WidthStep)
		case key.Matches(msg, m.keymap.Grow):
			m.resize(WidthStep)
		case key.Matches(msg, m.keymap.ShrinkFast):
			m.resize(-WidthJump)
		case key.Matches(msg, m.keymap.GrowFast):
			m.resize(WidthJump)
		case key.Matches(msg, m.keymap.Reset):
			m.manual = false
			m.viewport = float64(m.width) * CellWidth
		case key.Matches(msg, m.keymap.Theme):
			m.theme = theme.Next(m.theme)
			m.styles = NewStyles(m.theme)
			if m.OnThemeChange != nil {
				m.OnThemeChange(m.theme)
			}
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m *Model) resize(delta float64) {
	m.manual = true
	m.viewport = math.Max(0, m.viewport+delta)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(design.RenderLogo(m.height))
	b.WriteString(m.styles.Muted.Render("  theme: "))
	b.WriteString(m.styles.Title.Render(m.theme.Name))
	b.WriteString("\n\n")
	b.WriteString(m.viewportLine())
	b.WriteString("\n")

	b.WriteString(m.styles.Section.Render("Type scale"))
	b.WriteString("\n")
	b.WriteString(m.typeScale())

	b.WriteString(m.styles.Section.Render("Spacing"))
	b.WriteString("\n")
	b.WriteString(m.tokenRow(tokens.GroupSpace))

	b.WriteString(m.styles.Section.Render("Radius"))
	b.WriteString("\n")
	b.WriteString(m.tokenRow(tokens.GroupRadius))

	b.WriteString(m.styles.Section.Render("Durations"))
	b.WriteString("\n")
	b.WriteString(m.tokenRow(tokens.GroupDuration))

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	return b.String()
}

func (m Model) viewportLine() string {
	mode := "terminal"
	if m.manual {
		mode = "manual"
	}
	line := fmt.Sprintf("viewport %s (%s)  breakpoints %gpx..%gpx",
		m.styles.Highlight.Render(fmt.Sprintf("%.0fpx", m.viewport)),
		mode,
		m.breakpoints.Smallest, m.breakpoints.Largest,
	)
	switch {
	case m.viewport <= m.breakpoints.Smallest:
		line += "  " + m.styles.Pinned.Render("pinned to smallest")
	case m.viewport >= m.breakpoints.Largest:
		line += "  " + m.styles.Pinned.Render("pinned to largest")
	}
	return line + "\n"
}

func (m Model) typeScale() string {
	fonts, err := tokens.ResolveAll(m.viewport, m.breakpoints)
	if err != nil {
		return m.styles.Error.Render(err.Error()) + "\n"
	}

	largest := 0.0
	for _, f := range fonts {
		largest = math.Max(largest, math.Max(f.Smallest, f.Largest))
	}

	var b strings.Builder
	for _, f := range fonts {
		filled := 0
		if largest > 0 {
			filled = int(math.Round(f.Size / largest * barCells))
		}
		bar := m.styles.Bar.Render(strings.Repeat("█", filled)) +
			m.styles.BarEmpty.Render(strings.Repeat("░", barCells-filled))
		fmt.Fprintf(&b, "  %-9s %s %s %s\n",
			f.Role,
			m.styles.Highlight.Render(fmt.Sprintf("%6.2fpx", f.Size)),
			bar,
			m.styles.Muted.Render(fmt.Sprintf("%g→%g", f.Smallest, f.Largest)),
		)
	}
	return b.String()
}

func (m Model) tokenRow(g tokens.Group) string {
	toks, err := tokens.ByGroup(g)
	if err != nil {
		return m.styles.Error.Render(err.Error()) + "\n"
	}
	parts := make([]string, 0, len(toks))
	for _, t := range toks {
		parts = append(parts, m.styles.Accent.Render(t.Name)+" "+m.styles.Normal.Render(t.String()))
	}
	return "  " + strings.Join(parts, m.styles.Muted.Render(" · ")) + "\n"
}

// Run starts the demo and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	start := time.Now()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run demo after %s: %w", time.Since(start).Round(time.Millisecond), err)
	}
	return nil
}
