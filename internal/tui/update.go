package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/logger"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/tui/components/calendar"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/tui/toast"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.calendar.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case toast.Msg:
		m.toastText = msg.Text
		m.toastKind = msg.Kind
		return m, tea.Tick(constants.ToastDuration, func(time.Time) tea.Msg {
			return toast.ClearMsg{}
		})

	case toast.ClearMsg:
		m.toastText = ""
		return m, nil

	case calendar.EventsChangedMsg:
		return m.applyEvents(msg.Events)

	case calendar.DateSelectedMsg:
		m.selectedDate = msg.Date
		m.calendar.SetSelectedDate(msg.Date)
		return m, nil

	case calendar.MonthChangedMsg:
		logger.Debug("month cursor moved", "month", msg.Date.Format(constants.MonthTitleFormat))
		return m, nil

	case calendar.CreateEventMsg:
		return m.openCreateForm(msg.Date), nil

	case calendar.EditEventMsg:
		return m.openEditForm(msg.Event), nil
	}

	if m.state == constants.StateCreatePost || m.state == constants.StateEditPost {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.calendar.Filtering() {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(keyMsg, m.keys.Tab):
			m.calendar.SetViewMode(nextViewMode(m.calendar.ViewMode()))
			return m, nil
		case key.Matches(keyMsg, m.keys.Filter):
			m.filterIdx = (m.filterIdx + 1) % len(platformCycle)
			m.calendar.SetFilterPlatform(m.filterPlatform())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.calendar, cmd = m.calendar.Update(msg)
	return m, cmd
}

func nextViewMode(mode constants.ViewMode) constants.ViewMode {
	switch mode {
	case constants.ViewMonth:
		return constants.ViewWeek
	case constants.ViewWeek:
		return constants.ViewList
	default:
		return constants.ViewMonth
	}
}

// applyEvents is the single landing point for calendar mutations: persist the
// replacement collection, then hand it back down.
func (m Model) applyEvents(events []models.Event) (tea.Model, tea.Cmd) {
	if err := m.store.ReplacePosts(events); err != nil {
		logger.Error("failed to persist posts", "err", err)
		return m, toast.Show(toast.Warning, "failed to save changes")
	}
	m.events = events
	m.calendar.SetEvents(events)
	return m, nil
}

func (m Model) openCreateForm(date time.Time) Model {
	m.postForm = &PostFormModel{
		Date:     date.Format(constants.DateFormat),
		Platform: constants.Platforms[0],
		Status:   models.StatusScheduled,
	}
	if p := m.filterPlatform(); p != constants.PlatformAll {
		m.postForm.Platform = p
	}
	m.editingPost = nil
	m.form = NewPostForm(m.postForm)
	m.state = constants.StateCreatePost
	return m
}

func (m Model) openEditForm(ev models.Event) Model {
	edited := ev
	m.postForm = &PostFormModel{
		Title:    ev.Title,
		Date:     ev.Date.Key(),
		Time:     ev.Time,
		Platform: ev.Platform,
		Status:   ev.Status,
		Color:    ev.Color,
	}
	if m.postForm.Status == "" {
		m.postForm.Status = models.StatusScheduled
	}
	m.editingPost = &edited
	m.form = NewPostForm(m.postForm)
	m.state = constants.StateEditPost
	return m
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = constants.StateCalendar
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submitForm()
	case huh.StateAborted:
		m.state = constants.StateCalendar
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	now := time.Now()

	var next []models.Event
	var verb string
	if m.editingPost != nil {
		verb = "updated"
		next = make([]models.Event, len(m.events))
		for i, ev := range m.events {
			if ev.ID == m.editingPost.ID {
				ev.Title = m.postForm.Title
				ev.Date = models.ParseEventDate(m.postForm.Date)
				ev.Time = m.postForm.Time
				ev.Platform = m.postForm.Platform
				ev.Status = m.postForm.Status
				ev.Color = m.postForm.Color
				ev.UpdatedAt = now
			}
			next[i] = ev
		}
	} else {
		verb = "scheduled"
		post := models.Event{
			ID:        uuid.NewString(),
			Title:     m.postForm.Title,
			Date:      models.ParseEventDate(m.postForm.Date),
			Time:      m.postForm.Time,
			Platform:  m.postForm.Platform,
			Status:    m.postForm.Status,
			Color:     m.postForm.Color,
			CreatedAt: now,
			UpdatedAt: now,
		}
		next = append(append([]models.Event{}, m.events...), post)
	}

	title := m.postForm.Title
	m.state = constants.StateCalendar
	m.editingPost = nil

	model, cmd := m.applyEvents(next)
	return model, tea.Batch(cmd, toast.Show(toast.Success, fmt.Sprintf("%s %s", title, verb)))
}
