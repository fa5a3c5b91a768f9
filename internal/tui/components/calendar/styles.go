package calendar

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	blankCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	todayCellStyle = cellStyle.
			BorderForeground(lipgloss.Color("205"))

	selectedCellStyle = cellStyle.
				BorderForeground(lipgloss.Color("212")).
				Bold(true)

	cursorCellStyle = cellStyle.
			BorderForeground(lipgloss.Color("86")).
			Bold(true)

	eventMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	overflowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	chipSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)

	dragHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyles = map[string]lipgloss.Style{
		"scheduled": lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		"published": lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		"draft":     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
)

func statusStyle(status string) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return mutedStyle
}
