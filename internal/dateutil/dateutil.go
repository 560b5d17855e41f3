// Package dateutil holds the leaf date helpers shared by classification
// and projection. All instants are handled in UTC; status boundaries are
// compared at day granularity, event windows at minute granularity.
package dateutil

import (
	"fmt"
	"time"
)

// dateLayouts are tried in order when resolving an upstream date string.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// TruncateToDay shifts t to 00:00:00 UTC of its calendar day.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the most recent Sunday at 00:00:00 UTC, inclusive:
// if t falls on a Sunday the result is that same day.
func WeekStart(t time.Time) time.Time {
	day := TruncateToDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// ParseDate resolves an upstream date string against the known layouts.
// The second return is false when no layout matches.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseWeekday resolves an English weekday name ("Sunday".."Saturday").
func ParseWeekday(name string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if name == wd.String() {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unrecognized weekday %q", name)
}

// Clock is a minute-precision time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Before reports whether c is strictly earlier in the day than other.
func (c Clock) Before(other Clock) bool {
	return c.Hour*60+c.Minute < other.Hour*60+other.Minute
}

// On combines the clock with the calendar day of t.
func (c Clock) On(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, time.UTC)
}

// String renders the clock back to "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
