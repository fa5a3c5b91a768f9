package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	filterTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110")).
			Padding(0, 1)

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Padding(0, 1)

	toastWarningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")).
				Padding(0, 1)

	toastInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
