package course

import (
	"fmt"
	"time"
)

// Category distinguishes how a course's lifecycle is driven.
type Category string

const (
	// CategoryInternal is a course with a local planning/approval lifecycle
	// and explicit weekly scheduling (onsite courses).
	CategoryInternal Category = "internal"
	// CategoryExternal is a course whose lifecycle is wholly determined by
	// start/end dates pulled from an outside system (online/LMS courses).
	CategoryExternal Category = "external"
)

// WeeklySession is one recurring slot in a course's weekly schedule.
// Day is an English weekday name ("Sunday".."Saturday"); Start and End
// are 24-hour "HH:MM" clocks on that day. Fields are kept as the raw
// upstream strings; invalid entries contribute no events.
type WeeklySession struct {
	Day   string
	Start string
	End   string
}

// Course is the read-only course record supplied by the caller.
//
// Start and end are each resolvable from either a Unix-seconds field or
// an ISO date string; the Unix field wins when both are set. A course
// with neither has no resolvable instant, which downstream logic treats
// as "unknown" rather than an error.
type Course struct {
	ID       string
	Title    string
	Category Category
	Status   Status

	StartUnix *int64
	StartDate string
	EndUnix   *int64
	EndDate   string

	Sessions []WeeklySession
}

// DateRange is an inclusive reporting window, already truncated to day
// granularity by the caller.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the day-truncated instant t falls inside the
// range, boundaries included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// CalendarEvent is a single projected occurrence of a weekly session.
// Events are ephemeral: produced by one projection pass and consumed
// immediately by the rendering caller.
type CalendarEvent struct {
	ID       string
	CourseID string
	Title    string
	Start    time.Time
	End      time.Time
	Color    string
}

func (e CalendarEvent) String() string {
	return fmt.Sprintf("%s %s [%s - %s]", e.CourseID, e.Title,
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}
