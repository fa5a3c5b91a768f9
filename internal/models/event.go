package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
)

type EventStatus string

const (
	StatusScheduled EventStatus = "scheduled"
	StatusPublished EventStatus = "published"
	StatusDraft     EventStatus = "draft"
)

// EventDate is the calendar day an event is scheduled on. Depending on where
// an event came from (the TUI, an ICS import, a JSON payload) the day may be
// carried as a native time.Time or as an ISO date string; both forms reduce
// to the same YYYY-MM-DD key for grid placement.
type EventDate struct {
	t   time.Time
	raw string
}

func NewEventDate(t time.Time) EventDate {
	return EventDate{t: t}
}

// ParseEventDate keeps the raw string form. The key is the portion before the
// first 'T' (or the first ten characters for non-ISO strings).
func ParseEventDate(s string) EventDate {
	return EventDate{raw: s}
}

func (d EventDate) IsZero() bool {
	return d.raw == "" && d.t.IsZero()
}

// Key returns the canonical YYYY-MM-DD day key used for all same-day
// comparisons.
func (d EventDate) Key() string {
	if d.raw != "" {
		if i := strings.IndexByte(d.raw, 'T'); i >= 0 {
			return d.raw[:i]
		}
		if len(d.raw) > len(constants.DateFormat) {
			return d.raw[:len(constants.DateFormat)]
		}
		return d.raw
	}
	return d.t.Format(constants.DateFormat)
}

// Time returns the day as a local midnight time.Time. String-backed values
// that do not parse as a date return the zero time.
func (d EventDate) Time() time.Time {
	if d.raw != "" {
		t, err := time.ParseInLocation(constants.DateFormat, d.Key(), time.Local)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	return d.t
}

// String returns the stored representation: the raw string if the value was
// string-backed, the canonical key otherwise.
func (d EventDate) String() string {
	if d.raw != "" {
		return d.raw
	}
	return d.t.Format(constants.DateFormat)
}

func (d EventDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *EventDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*d = ParseEventDate(s)
	return nil
}

// Event is a scheduled post. The calendar component treats events as
// read-mostly; only Date is rewritten, and only via a full replacement of the
// collection.
type Event struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Date     EventDate   `json:"date"`
	Time     string      `json:"time,omitempty"` // HH:MM display string, kept apart from Date
	Platform string      `json:"platform"`
	Status   EventStatus `json:"status"`
	Color    string      `json:"color,omitempty"`
	Icon     string      `json:"icon,omitempty"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}
