package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/calgrid"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (m Model) View() string {
	if m.detailModal.open {
		return m.viewDetailModal()
	}
	if m.dayModal.open {
		return m.viewDayModal()
	}

	switch m.viewMode {
	case constants.ViewWeek:
		return m.viewWeek()
	case constants.ViewList:
		return m.viewList()
	default:
		return m.viewMonth()
	}
}

func (m Model) viewMonth() string {
	title := headerStyle.Render(m.monthCursor.Format(constants.MonthTitleFormat))

	cellWidth := m.width/7 - 2
	if cellWidth < 8 {
		cellWidth = 8
	}

	var header []string
	for _, name := range weekdayNames {
		header = append(header, weekdayStyle.Width(cellWidth+2).Render(name))
	}
	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, header...)

	today := calgrid.DayKey(timeNow().Year(), timeNow().Month(), timeNow().Day())
	selected := m.selectedDate.Format(constants.DateFormat)

	cells := calgrid.GridCells(m.monthCursor)
	var rows []string
	for start := 0; start < len(cells); start += 7 {
		end := start + 7
		if end > len(cells) {
			end = len(cells)
		}
		var row []string
		for _, day := range cells[start:end] {
			row = append(row, m.renderMonthCell(day, cellWidth, today, selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	sections := []string{title, headerRow}
	sections = append(sections, rows...)
	if m.dragged != nil {
		sections = append(sections, dragHintStyle.Render(
			fmt.Sprintf("Moving %q — pick a day and press enter, esc to cancel", m.dragged.Title)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderMonthCell(day, cellWidth int, todayKey, selectedKey string) string {
	if day == 0 {
		// Leading placeholder: blank and non-interactive.
		return blankCellStyle.Width(cellWidth + 2).Render(strings.Repeat(" ", cellWidth))
	}

	key := calgrid.DayKey(m.monthCursor.Year(), m.monthCursor.Month(), day)
	dayEvents := calgrid.EventsOnDay(m.events, m.monthCursor.Year(), m.monthCursor.Month(), day, m.filterPlatform)

	marks := ""
	if n := len(dayEvents); n > 0 {
		shown := n
		if shown > 3 {
			shown = 3
		}
		marks = eventMarkStyle.Render(strings.Repeat("•", shown))
		if n > 3 {
			marks += overflowStyle.Render(fmt.Sprintf("+%d", n-3))
		}
	}

	content := fmt.Sprintf("%2d %s", day, marks)

	style := cellStyle
	switch {
	case day == m.cursorDay:
		style = cursorCellStyle
	case key == selectedKey:
		style = selectedCellStyle
	case key == todayKey:
		style = todayCellStyle
	}
	return style.Width(cellWidth).Render(content)
}

func (m Model) viewWeek() string {
	title := headerStyle.Render(fmt.Sprintf("Week of %s", m.weekCursor.Format("Jan 2, 2006")))

	colWidth := m.width/7 - 2
	if colWidth < 12 {
		colWidth = 12
	}

	var cols []string
	for col := 0; col < 7; col++ {
		day := m.weekDay(col)
		dayEvents := calgrid.EventsOnDate(m.events, day, m.filterPlatform)

		var b strings.Builder
		header := fmt.Sprintf("%s %d", weekdayNames[day.Weekday()], day.Day())
		if col == m.weekCol && m.weekIdx < 0 {
			header = chipSelectedStyle.Render("> " + header)
		} else {
			header = chipStyle.Render("  " + header)
		}
		b.WriteString(header + "\n")

		for i, ev := range dayEvents {
			// Width-aware truncation keeps multibyte titles intact.
			line := ansi.Truncate(fmt.Sprintf("%s %s", ev.Time, ev.Title), colWidth-2, "")
			if col == m.weekCol && i == m.weekIdx {
				line = chipSelectedStyle.Render("> " + line)
			} else {
				line = chipStyle.Render("  " + line)
			}
			b.WriteString(line + "\n")
		}
		if len(dayEvents) == 0 {
			b.WriteString(mutedStyle.Render("  —") + "\n")
		}

		cols = append(cols, cellStyle.Width(colWidth).Render(b.String()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
	)
}

func (m Model) viewList() string {
	title := headerStyle.Render("All posts")
	if len(m.eventList.Items()) == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			mutedStyle.Render("No posts found"),
			"",
			"Press 'a' to schedule your first post",
		)
		return lipgloss.JoinVertical(lipgloss.Left, title, empty)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.eventList.View())
}

func (m Model) viewDayModal() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(m.dayModal.date.Format("Monday, Jan 2, 2006")) + "\n\n")
	for i, ev := range m.dayModal.events {
		line := fmt.Sprintf("%s %s  %s", ev.Time, ev.Title, statusStyle(string(ev.Status)).Render(string(ev.Status)))
		if i == m.dayModal.index {
			line = chipSelectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("enter open · m move · a add · esc close"))

	return m.placeModal(modalStyle.Render(b.String()))
}

func (m Model) viewDetailModal() string {
	ev := m.detailModal.event
	if ev == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(ev.Title) + "\n\n")
	b.WriteString(fmt.Sprintf("%s at %s\n", ev.Date.Key(), ev.Time))
	b.WriteString(fmt.Sprintf("Platform: %s\n", ev.Platform))
	b.WriteString(fmt.Sprintf("Status:   %s\n", statusStyle(string(ev.Status)).Render(string(ev.Status))))
	b.WriteString("\n" + mutedStyle.Render("e edit · c duplicate · x delete · esc close"))

	return m.placeModal(modalStyle.Render(b.String()))
}

func (m Model) placeModal(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
