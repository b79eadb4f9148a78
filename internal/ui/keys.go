package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	Quit         key.Binding
	Help         key.Binding
	CycleTheme   key.Binding
	CycleBreaker key.Binding
	ResetBreaker key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		CycleBreaker: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Cycle breaker"),
		),
		ResetBreaker: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "Reset breaker"),
		),
	}
}

// helpSections groups bindings for the help overlay.
func (k keyMap) helpSections() []helpSection {
	return []helpSection{
		{
			title:    "Breakpoints",
			bindings: []key.Binding{k.CycleBreaker, k.ResetBreaker},
		},
		{
			title:    "General",
			bindings: []key.Binding{k.CycleTheme, k.Help, k.Quit},
		},
	}
}
