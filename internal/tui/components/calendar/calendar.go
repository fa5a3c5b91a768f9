// Package calendar is the drag-and-drop scheduling board: a month grid, a
// week strip, and a flat list over one shared event collection. The collection
// and the selected date are owned by the host; every change flows back up as a
// message (see msgs.go).
package calendar

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/calgrid"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/tui/toast"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Select    key.Binding
	Grab      key.Binding
	Add       key.Binding
	Edit      key.Binding
	Duplicate key.Binding
	Delete    key.Binding
	Close     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PrevPage:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev")),
		NextPage:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Grab:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move post")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add post")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Duplicate: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "duplicate")),
		Delete:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close/cancel")),
	}
}

// dayModalState is the intermediate modal listing a clicked day's events.
type dayModalState struct {
	open   bool
	date   time.Time
	events []models.Event
	index  int
}

// detailModalState shows a single event with its actions.
type detailModalState struct {
	open  bool
	event *models.Event
}

type Model struct {
	events         []models.Event
	selectedDate   time.Time
	filterPlatform string
	viewMode       constants.ViewMode

	// monthCursor and weekCursor page independently; switching view modes
	// never resets either one.
	monthCursor time.Time
	weekCursor  time.Time

	cursorDay int // month view: day number under the cursor
	weekCol   int // week view: column 0..6
	weekIdx   int // week view: event index within the column, -1 = day header

	eventList list.Model // list view

	dragged     *models.Event
	dayModal    dayModalState
	detailModal detailModalState

	keys   KeyMap
	notify toast.Func
	width  int
	height int
}

// Item adapts an event for the list view.
type Item struct {
	Event models.Event
}

func (i Item) Title() string {
	return fmt.Sprintf("%s · %s", i.Event.Time, i.Event.Title)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · %s · %s", i.Event.Date.Key(), i.Event.Platform, i.Event.Status)
}

func (i Item) FilterValue() string { return i.Event.Title }

// New builds the component. The notify func is the injected toast capability;
// nil disables notifications without changing behavior.
func New(events []models.Event, selected time.Time, notify toast.Func, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	m := Model{
		events:         events,
		filterPlatform: constants.PlatformAll,
		viewMode:       constants.ViewMonth,
		monthCursor:    time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, selected.Location()),
		cursorDay:      selected.Day(),
		weekIdx:        -1,
		eventList:      l,
		keys:           DefaultKeyMap(),
		notify:         notify,
		width:          width,
		height:         height,
	}
	m.setSelected(selected)
	m.refreshList()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetEvents replaces the event collection. The host calls this after every
// EventsChangedMsg round trip and on external loads.
func (m *Model) SetEvents(events []models.Event) {
	m.events = events
	m.refreshList()
}

// SetSelectedDate updates the externally owned selection and re-derives the
// week cursor: the week strip always re-snaps to the week containing the
// selected date, no matter where the change came from.
func (m *Model) SetSelectedDate(t time.Time) {
	m.setSelected(t)
}

func (m *Model) setSelected(t time.Time) {
	m.selectedDate = t
	m.weekCursor = calgrid.StartOfWeek(t)
	m.weekCol = int(t.Weekday())
	m.weekIdx = -1
	if t.Year() == m.monthCursor.Year() && t.Month() == m.monthCursor.Month() {
		m.cursorDay = t.Day()
	}
}

func (m *Model) SetFilterPlatform(platform string) {
	m.filterPlatform = platform
	m.clampCursors()
	m.refreshList()
}

// SetViewMode switches presentation. The month and week cursors each keep
// their last position, so returning to a mode resumes where it left off.
func (m *Model) SetViewMode(mode constants.ViewMode) {
	m.viewMode = mode
}

// SetCurrentDate is the optional external month-cursor override.
func (m *Model) SetCurrentDate(t time.Time) {
	m.monthCursor = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	m.clampCursors()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.eventList.SetSize(width, height)
}

func (m Model) ViewMode() constants.ViewMode { return m.viewMode }

// Filtering reports whether the list view's filter input is capturing keys,
// so the host can keep its global bindings out of the way.
func (m Model) Filtering() bool {
	return m.viewMode == constants.ViewList && m.eventList.FilterState() == list.Filtering
}

// Dragging reports whether a drag payload is pending.
func (m Model) Dragging() bool { return m.dragged != nil }

// DayModalOpen and DetailModalOpen expose modal state for the host's help bar.
func (m Model) DayModalOpen() bool    { return m.dayModal.open }
func (m Model) DetailModalOpen() bool { return m.detailModal.open }

// HelpBindings returns the bindings relevant to the current mode for the
// host's help view.
func (m Model) HelpBindings() []key.Binding {
	if m.detailModal.open {
		return []key.Binding{m.keys.Edit, m.keys.Duplicate, m.keys.Delete, m.keys.Close}
	}
	if m.dayModal.open {
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Grab, m.keys.Add, m.keys.Close}
	}
	switch m.viewMode {
	case constants.ViewWeek:
		return []key.Binding{m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down, m.keys.PrevPage, m.keys.NextPage, m.keys.Select, m.keys.Add}
	case constants.ViewList:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Add}
	default:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.PrevPage, m.keys.NextPage, m.keys.Select, m.keys.Grab, m.keys.Add}
	}
}

func (m *Model) clampCursors() {
	if days := calgrid.DaysInMonth(m.monthCursor); m.cursorDay > days {
		m.cursorDay = days
	}
	if m.cursorDay < 1 {
		m.cursorDay = 1
	}
}

func (m *Model) refreshList() {
	sorted := calgrid.SortedByDate(m.events, m.filterPlatform)
	items := make([]list.Item, len(sorted))
	for i, ev := range sorted {
		items[i] = Item{Event: ev}
	}
	m.eventList.SetItems(items)
}

// cursorDate materializes the month-view cursor as a date in the displayed
// month.
func (m Model) cursorDate() time.Time {
	return time.Date(m.monthCursor.Year(), m.monthCursor.Month(), m.cursorDay, 0, 0, 0, 0, m.monthCursor.Location())
}

// weekDay returns the date of a week-view column.
func (m Model) weekDay(col int) time.Time {
	return m.weekCursor.AddDate(0, 0, col)
}

func (m Model) toast(kind toast.Kind, text string) tea.Cmd {
	if m.notify == nil {
		return nil
	}
	return m.notify(kind, text)
}
