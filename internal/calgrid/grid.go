// Package calgrid holds the pure date math behind the calendar views: month
// grid construction, week anchoring, and the per-day event index. Nothing in
// here touches state or I/O.
package calgrid

import (
	"fmt"
	"time"
)

// DaysInMonth returns the number of days in cursor's month. Day zero of the
// following month normalizes to the last day of the current one, which handles
// every month length and leap years.
func DaysInMonth(cursor time.Time) int {
	return time.Date(cursor.Year(), cursor.Month()+1, 0, 0, 0, 0, 0, cursor.Location()).Day()
}

// FirstWeekdayOffset returns the weekday index (Sunday = 0) of the first day
// of cursor's month.
func FirstWeekdayOffset(cursor time.Time) int {
	return int(time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, cursor.Location()).Weekday())
}

// GridCells produces the padded day sequence for the month view: leading
// zeroes for the cells before the 1st, then the day numbers 1..DaysInMonth.
// Zero entries render as blank, non-interactive cells.
func GridCells(cursor time.Time) []int {
	offset := FirstWeekdayOffset(cursor)
	days := DaysInMonth(cursor)

	cells := make([]int, offset+days)
	for d := 1; d <= days; d++ {
		cells[offset+d-1] = d
	}
	return cells
}

// StartOfWeek returns the Sunday on or before t, at local midnight.
func StartOfWeek(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

// DayKey builds the canonical YYYY-MM-DD key for a concrete day.
func DayKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
