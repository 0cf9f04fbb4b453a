package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// Keymap defines all key bindings for the demo.
type Keymap struct {
	Shrink     key.Binding
	Grow       key.Binding
	ShrinkFast key.Binding
	GrowFast   key.Binding
	Reset      key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Shrink: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "narrower"),
		),
		Grow: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "wider"),
		),
		ShrinkFast: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "much narrower"),
		),
		GrowFast: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "much wider"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "follow terminal"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shrink, k.Grow, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Shrink, k.Grow, k.ShrinkFast, k.GrowFast},
		{k.Reset, k.Theme, k.Help, k.Quit},
	}
}
