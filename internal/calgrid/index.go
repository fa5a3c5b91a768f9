package calgrid

import (
	"sort"
	"strings"
	"time"

	"github.com/PauloHenriqueJr/storyspark-sub002/internal/constants"
	"github.com/PauloHenriqueJr/storyspark-sub002/internal/models"
)

// MatchesPlatform reports whether an event passes the platform filter. The
// comparison is case-insensitive and "all" matches everything.
func MatchesPlatform(ev models.Event, platform string) bool {
	return platform == constants.PlatformAll || strings.EqualFold(ev.Platform, platform)
}

// EventsOnDay returns the events falling on the given day under the platform
// filter. Input order is preserved; callers that want a sort do it themselves.
func EventsOnDay(events []models.Event, year int, month time.Month, day int, platform string) []models.Event {
	key := DayKey(year, month, day)

	var matched []models.Event
	for _, ev := range events {
		if ev.Date.Key() != key {
			continue
		}
		if !MatchesPlatform(ev, platform) {
			continue
		}
		matched = append(matched, ev)
	}
	return matched
}

// EventsOnDate is EventsOnDay for a concrete date value.
func EventsOnDate(events []models.Event, date time.Time, platform string) []models.Event {
	return EventsOnDay(events, date.Year(), date.Month(), date.Day(), platform)
}

// FilterByPlatform returns the subset passing the platform filter, in input
// order.
func FilterByPlatform(events []models.Event, platform string) []models.Event {
	var matched []models.Event
	for _, ev := range events {
		if MatchesPlatform(ev, platform) {
			matched = append(matched, ev)
		}
	}
	return matched
}

// SortedByDate returns the filtered events sorted ascending by day, for the
// list view. The sort is stable so same-day events keep their input order.
func SortedByDate(events []models.Event, platform string) []models.Event {
	matched := FilterByPlatform(events, platform)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Key() < matched[j].Date.Key()
	})
	return matched
}
