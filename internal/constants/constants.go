package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// ViewMode selects which calendar presentation is active
type ViewMode string

const (
	AppName            = "sparkcal"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/sparkcal/sparkcal.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// MonthTitleFormat renders the month cursor in headers
	MonthTitleFormat = "January 2006"

	// ToastDuration is how long a toast stays on screen
	ToastDuration = 4 * time.Second

	// View modes
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewList  ViewMode = "list"

	// PlatformAll is the wildcard platform filter
	PlatformAll = "all"
)

// Session states
const (
	StateCalendar SessionState = iota
	StateCreatePost
	StateEditPost
)

// Platforms lists the supported publishing platforms, in filter-cycling order.
var Platforms = []string{"instagram", "facebook", "twitter", "linkedin", "youtube"}
