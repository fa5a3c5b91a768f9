package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/tui/toast"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateCreatePost, constants.StateEditPost:
		content = docStyle.Render(m.form.View())
	default:
		content = m.calendar.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatusLine(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, mode := range []constants.ViewMode{constants.ViewMonth, constants.ViewWeek, constants.ViewList} {
		title := string(mode)
		if m.calendar.ViewMode() == mode && m.state == constants.StateCalendar {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	tabs = append(tabs, filterTabStyle.Render("filter: "+m.filterPlatform()))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatusLine() string {
	if m.toastText == "" {
		return ""
	}
	switch m.toastKind {
	case toast.Warning:
		return toastWarningStyle.Render(m.toastText)
	case toast.Success:
		return toastSuccessStyle.Render(m.toastText)
	default:
		return toastInfoStyle.Render(m.toastText)
	}
}
