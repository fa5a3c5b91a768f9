package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/calgrid"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/tui/toast"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.viewMode == constants.ViewList && !m.dayModal.open && !m.detailModal.open {
			var cmd tea.Cmd
			m.eventList, cmd = m.eventList.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Modal layers take precedence over the grid behind them.
	if m.detailModal.open {
		return m.updateDetailModal(keyMsg)
	}
	if m.dayModal.open {
		return m.updateDayModal(keyMsg)
	}

	switch m.viewMode {
	case constants.ViewMonth:
		return m.updateMonthView(keyMsg)
	case constants.ViewWeek:
		return m.updateWeekView(keyMsg)
	case constants.ViewList:
		return m.updateListView(keyMsg)
	}
	return m, nil
}

func (m Model) updateMonthView(msg tea.KeyMsg) (Model, tea.Cmd) {
	days := calgrid.DaysInMonth(m.monthCursor)

	switch {
	case key.Matches(msg, m.keys.Left):
		if m.cursorDay > 1 {
			m.cursorDay--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursorDay < days {
			m.cursorDay++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursorDay > 7 {
			m.cursorDay -= 7
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursorDay+7 <= days {
			m.cursorDay += 7
		}
	case key.Matches(msg, m.keys.PrevPage):
		return m.navigateMonth(-1)
	case key.Matches(msg, m.keys.NextPage):
		return m.navigateMonth(1)
	case key.Matches(msg, m.keys.Add):
		return m, createEvent(m.cursorDate())
	case key.Matches(msg, m.keys.Grab):
		if m.dragged == nil {
			if dayEvents := m.eventsOnCursorDay(); len(dayEvents) > 0 {
				ev := dayEvents[0]
				m.dragged = &ev
			}
		}
	case key.Matches(msg, m.keys.Close):
		// Cancel clears the pending drag unconditionally.
		m.dragged = nil
	case key.Matches(msg, m.keys.Select):
		if m.dragged != nil {
			return m.commitDrop(m.cursorDay)
		}
		return m.activateDay(m.cursorDate())
	}
	return m, nil
}

// navigateMonth pages the month cursor and reports the change upward. This is
// the only place the host hears about month navigation.
func (m Model) navigateMonth(delta int) (Model, tea.Cmd) {
	m.monthCursor = m.monthCursor.AddDate(0, delta, 0)
	m.clampCursors()
	return m, monthChanged(m.monthCursor)
}

// activateDay is a grid-day activation: report the selection, then either
// open the day modal or, for a day with no matching events, hand the host a
// create intent. No modal ever opens for an empty day.
func (m Model) activateDay(date time.Time) (Model, tea.Cmd) {
	dayEvents := calgrid.EventsOnDate(m.events, date, m.filterPlatform)
	if len(dayEvents) == 0 {
		return m, tea.Batch(dateSelected(date), createEvent(date))
	}
	m.dayModal = dayModalState{open: true, date: date, events: dayEvents}
	return m, dateSelected(date)
}

func (m Model) updateWeekView(msg tea.KeyMsg) (Model, tea.Cmd) {
	colEvents := calgrid.EventsOnDate(m.events, m.weekDay(m.weekCol), m.filterPlatform)

	switch {
	case key.Matches(msg, m.keys.Left):
		if m.weekCol > 0 {
			m.weekCol--
			m.weekIdx = -1
		}
	case key.Matches(msg, m.keys.Right):
		if m.weekCol < 6 {
			m.weekCol++
			m.weekIdx = -1
		}
	case key.Matches(msg, m.keys.Up):
		if m.weekIdx >= 0 {
			m.weekIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.weekIdx < len(colEvents)-1 {
			m.weekIdx++
		}
	case key.Matches(msg, m.keys.PrevPage):
		return m.navigateWeek(-1)
	case key.Matches(msg, m.keys.NextPage):
		return m.navigateWeek(1)
	case key.Matches(msg, m.keys.Add):
		return m, createEvent(m.weekDay(m.weekCol))
	case key.Matches(msg, m.keys.Select):
		if m.weekIdx >= 0 && m.weekIdx < len(colEvents) {
			// Activating a single event chip opens the detail directly,
			// bypassing the day modal.
			ev := colEvents[m.weekIdx]
			m.detailModal = detailModalState{open: true, event: &ev}
			return m, nil
		}
		return m, dateSelected(m.weekDay(m.weekCol))
	}
	return m, nil
}

// navigateWeek pages the week cursor by whole weeks. The new week's first day
// goes out on the date-selection channel; the month cursor is deliberately
// left alone.
func (m Model) navigateWeek(delta int) (Model, tea.Cmd) {
	m.weekCursor = m.weekCursor.AddDate(0, 0, 7*delta)
	m.weekIdx = -1
	return m, dateSelected(m.weekCursor)
}

func (m Model) updateListView(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.eventList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.eventList, cmd = m.eventList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Add):
		return m, createEvent(timeNow())
	case key.Matches(msg, m.keys.Select):
		if item, ok := m.eventList.SelectedItem().(Item); ok {
			ev := item.Event
			m.detailModal = detailModalState{open: true, event: &ev}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.eventList, cmd = m.eventList.Update(msg)
	return m, cmd
}

func (m Model) updateDayModal(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.dayModal.index > 0 {
			m.dayModal.index--
		}
	case key.Matches(msg, m.keys.Down):
		if m.dayModal.index < len(m.dayModal.events)-1 {
			m.dayModal.index++
		}
	case key.Matches(msg, m.keys.Select):
		if m.dayModal.index < len(m.dayModal.events) {
			// Day list closes as the detail opens.
			ev := m.dayModal.events[m.dayModal.index]
			m.dayModal = dayModalState{}
			m.detailModal = detailModalState{open: true, event: &ev}
		}
	case key.Matches(msg, m.keys.Grab):
		if m.dayModal.index < len(m.dayModal.events) {
			ev := m.dayModal.events[m.dayModal.index]
			m.dragged = &ev
			m.dayModal = dayModalState{}
		}
	case key.Matches(msg, m.keys.Add):
		date := m.dayModal.date
		m.dayModal = dayModalState{}
		return m, createEvent(date)
	case key.Matches(msg, m.keys.Close):
		m.dayModal = dayModalState{}
	}
	return m, nil
}

func (m Model) updateDetailModal(msg tea.KeyMsg) (Model, tea.Cmd) {
	ev := m.detailModal.event
	if ev == nil {
		m.detailModal = detailModalState{}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Edit):
		edited := *ev
		m.detailModal = detailModalState{}
		return m, editEvent(edited)
	case key.Matches(msg, m.keys.Duplicate):
		return m.duplicateEvent(*ev)
	case key.Matches(msg, m.keys.Delete):
		return m.deleteEvent(*ev)
	case key.Matches(msg, m.keys.Close):
		m.detailModal = detailModalState{}
	}
	return m, nil
}

// commitDrop finishes the drag: the target day plus the grid's current
// month/year become the event's new date, exactly one event changes, and the
// whole replacement collection goes upward. A drop on the day the event
// already occupies still counts as a move.
func (m Model) commitDrop(targetDay int) (Model, tea.Cmd) {
	if m.dragged == nil {
		return m, nil
	}
	moved := *m.dragged
	target := time.Date(m.monthCursor.Year(), m.monthCursor.Month(), targetDay, 0, 0, 0, 0, m.monthCursor.Location())

	next := make([]models.Event, len(m.events))
	for i, ev := range m.events {
		if ev.ID == moved.ID {
			ev.Date = models.NewEventDate(target)
		}
		next[i] = ev
	}
	m.dragged = nil

	return m, tea.Batch(
		eventsChanged(next),
		m.toast(toast.Success, fmt.Sprintf("%s rescheduled to %s", moved.Title, target.Format(constants.DateFormat))),
	)
}

func (m Model) duplicateEvent(src models.Event) (Model, tea.Cmd) {
	clone := src
	clone.ID = strconv.FormatInt(timeNow().UnixMilli(), 10)

	next := make([]models.Event, 0, len(m.events)+1)
	next = append(next, m.events...)
	next = append(next, clone)
	m.detailModal = detailModalState{}

	return m, tea.Batch(
		eventsChanged(next),
		m.toast(toast.Success, fmt.Sprintf("%s duplicated", src.Title)),
	)
}

func (m Model) deleteEvent(src models.Event) (Model, tea.Cmd) {
	next := make([]models.Event, 0, len(m.events))
	for _, ev := range m.events {
		if ev.ID != src.ID {
			next = append(next, ev)
		}
	}
	m.detailModal = detailModalState{}

	return m, tea.Batch(
		eventsChanged(next),
		m.toast(toast.Success, fmt.Sprintf("%s deleted", src.Title)),
	)
}

func (m Model) eventsOnCursorDay() []models.Event {
	return calgrid.EventsOnDay(m.events, m.monthCursor.Year(), m.monthCursor.Month(), m.cursorDay, m.filterPlatform)
}
