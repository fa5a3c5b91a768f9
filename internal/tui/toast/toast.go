// Package toast is the fire-and-forget notification channel shared by the TUI.
// Components are handed a Func instead of reaching for a global; nothing in
// their logic depends on the toast actually being rendered.
package toast

import tea "github.com/charmbracelet/bubbletea"

type Kind int

const (
	Info Kind = iota
	Success
	Warning
)

// Msg is delivered to whichever model renders toasts.
type Msg struct {
	Kind Kind
	Text string
}

// ClearMsg removes the current toast after its display time elapses.
type ClearMsg struct{}

// Func produces a command that surfaces a toast.
type Func func(kind Kind, text string) tea.Cmd

// Show is the standard Func implementation.
func Show(kind Kind, text string) tea.Cmd {
	return func() tea.Msg {
		return Msg{Kind: kind, Text: text}
	}
}
