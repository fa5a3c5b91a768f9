package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab    key.Binding
	Filter key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle platform filter")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
