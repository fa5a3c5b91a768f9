// Package ics converts between scheduled posts and iCalendar (RFC 5545)
// payloads for interchange with external calendar tools.
package ics

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
)

// Export serializes posts as a VCALENDAR. Posts with an HH:MM time become
// one-hour timed events, the rest become all-day events.
func Export(posts []models.Event) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(fmt.Sprintf("-//%s//EN", constants.AppName))

	for _, post := range posts {
		day := post.Date.Time()
		if day.IsZero() {
			return "", fmt.Errorf("post %s has an unparseable date %q", post.ID, post.Date.String())
		}

		ev := cal.AddEvent(post.ID)
		ev.SetDtStampTime(time.Now())
		ev.SetSummary(post.Title)

		if post.Time != "" {
			clock, err := time.ParseInLocation(constants.TimeFormat, post.Time, time.Local)
			if err != nil {
				return "", fmt.Errorf("post %s has an unparseable time %q", post.ID, post.Time)
			}
			start := time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
			ev.SetStartAt(start)
			ev.SetEndAt(start.Add(time.Hour))
		} else {
			ev.SetAllDayStartAt(day)
			ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		}

		var desc []string
		if post.Platform != "" {
			desc = append(desc, "platform: "+post.Platform)
		}
		if post.Status != "" {
			desc = append(desc, "status: "+string(post.Status))
		}
		if len(desc) > 0 {
			ev.SetDescription(strings.Join(desc, "\n"))
		}
	}

	return cal.Serialize(), nil
}

// Import parses a VCALENDAR into posts. Events that cannot be read are
// skipped rather than failing the whole import.
func Import(r io.Reader) ([]models.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar: %w", err)
	}

	var posts []models.Event
	for _, ve := range cal.Events() {
		post, err := parseVEvent(ve)
		if err != nil {
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// ImportBytes is Import for an in-memory payload.
func ImportBytes(body []byte) ([]models.Event, error) {
	if len(body) == 0 {
		return nil, errors.New("empty ICS body")
	}
	return Import(bytes.NewReader(body))
}

func parseVEvent(ve *ical.VEvent) (models.Event, error) {
	var post models.Event

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil && p.Value != "" {
		post.ID = p.Value
	} else {
		post.ID = uuid.NewString()
	}

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		post.Title = p.Value
	}
	if post.Title == "" {
		return post, errors.New("missing summary")
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil || dtStart.Value == "" {
		return post, errors.New("missing DTSTART")
	}

	start, err := ve.GetStartAt()
	if err != nil || start.IsZero() {
		return post, errors.New("unparseable DTSTART")
	}
	start = start.In(time.Local)
	post.Date = models.NewEventDate(time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local))

	// Timed events carry an HH:MM display time, all-day events do not.
	if strings.Contains(dtStart.Value, "T") && !isDateValue(dtStart) {
		post.Time = start.Format(constants.TimeFormat)
	}

	post.Status = models.StatusScheduled
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		for _, line := range strings.Split(p.Value, "\n") {
			if v, ok := strings.CutPrefix(line, "platform: "); ok {
				post.Platform = v
			}
			if v, ok := strings.CutPrefix(line, "status: "); ok {
				post.Status = models.EventStatus(v)
			}
		}
	}

	return post, nil
}

func isDateValue(p *ical.IANAProperty) bool {
	if p.ICalParameters == nil {
		return false
	}
	vs, ok := p.ICalParameters["VALUE"]
	return ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE")
}
