package calendar

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
)

// EventsChangedMsg carries the replacement event collection after a
// reschedule, duplicate, or delete. It is the single upward mutation channel:
// the component never persists anything itself.
type EventsChangedMsg struct {
	Events []models.Event
}

// DateSelectedMsg is emitted when a grid day is activated, and on week
// navigation with the new week's first day. Week paging deliberately reuses
// this channel instead of a dedicated week-changed message.
type DateSelectedMsg struct {
	Date time.Time
}

// MonthChangedMsg is emitted on month navigation only.
type MonthChangedMsg struct {
	Date time.Time
}

// CreateEventMsg signals intent to create a post on a specific day: an empty
// day activated in month view, the add binding in week view or the day modal,
// or the empty list view's call to action.
type CreateEventMsg struct {
	Date time.Time
}

// EditEventMsg is the edit wiring point of the detail modal; the host decides
// what editing looks like.
type EditEventMsg struct {
	Event models.Event
}

func eventsChanged(events []models.Event) tea.Cmd {
	return func() tea.Msg { return EventsChangedMsg{Events: events} }
}

func dateSelected(date time.Time) tea.Cmd {
	return func() tea.Msg { return DateSelectedMsg{Date: date} }
}

func monthChanged(date time.Time) tea.Cmd {
	return func() tea.Msg { return MonthChangedMsg{Date: date} }
}

func createEvent(date time.Time) tea.Cmd {
	return func() tea.Msg { return CreateEventMsg{Date: date} }
}

func editEvent(ev models.Event) tea.Cmd {
	return func() tea.Msg { return EditEventMsg{Event: ev} }
}
