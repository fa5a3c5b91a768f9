// Package tui is the root Bubble Tea program: it owns the store, the event
// collection, and the selected date, and hands the calendar component a view
// of that state. All mutations come back up as calendar messages and are
// persisted here.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/storage"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/tui/components/calendar"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/tui/toast"
)

type Model struct {
	store storage.Provider
	state constants.SessionState
	keys  KeyMap
	help  help.Model

	events       []models.Event
	selectedDate time.Time
	filterIdx    int // index into platformCycle

	calendar calendar.Model

	form        *huh.Form
	postForm    *PostFormModel
	editingPost *models.Event

	toastText string
	toastKind toast.Kind

	quitting bool
	width    int
	height   int
}

// platformCycle is the filter rotation order: the wildcard first, then every
// supported platform.
var platformCycle = append([]string{constants.PlatformAll}, constants.Platforms...)

type Options struct {
	DefaultView     constants.ViewMode
	DefaultPlatform string
}

func NewModel(store storage.Provider, opts Options) Model {
	events, err := store.GetAllPosts()
	if err != nil {
		events = []models.Event{}
	}

	today := time.Now()
	selected := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)

	cal := calendar.New(events, selected, toast.Show, 0, 0)
	if opts.DefaultView != "" {
		cal.SetViewMode(opts.DefaultView)
	}

	filterIdx := 0
	for i, p := range platformCycle {
		if p == opts.DefaultPlatform {
			filterIdx = i
			break
		}
	}
	if filterIdx != 0 {
		cal.SetFilterPlatform(platformCycle[filterIdx])
	}

	return Model{
		store:        store,
		state:        constants.StateCalendar,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		events:       events,
		selectedDate: selected,
		filterIdx:    filterIdx,
		calendar:     cal,
	}
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Filter, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.Filter, m.keys.Quit, m.keys.Help}
	calKeys := m.calendar.HelpBindings()
	return [][]key.Binding{global, calKeys}
}

func (m Model) Init() tea.Cmd {
	return m.calendar.Init()
}

func (m Model) filterPlatform() string {
	return platformCycle[m.filterIdx]
}
