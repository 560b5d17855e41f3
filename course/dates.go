package course

import (
	"time"

	"github.com/samber/mo"

	"github.com/edulify/coursecal/internal/dateutil"
)

// StartInstant resolves the course's effective start. The Unix-seconds
// field always wins over the date string when both are present; an
// unparseable string degrades to None rather than an error.
func (c Course) StartInstant() mo.Option[time.Time] {
	return resolveInstant(c.StartUnix, c.StartDate)
}

// EndInstant resolves the course's effective end. None means the course
// is open-ended.
func (c Course) EndInstant() mo.Option[time.Time] {
	return resolveInstant(c.EndUnix, c.EndDate)
}

// StartDay is the day-truncated start instant, for status-boundary
// comparisons.
func (c Course) StartDay() mo.Option[time.Time] {
	return truncated(c.StartInstant())
}

// EndDay is the day-truncated end instant.
func (c Course) EndDay() mo.Option[time.Time] {
	return truncated(c.EndInstant())
}

func resolveInstant(unix *int64, date string) mo.Option[time.Time] {
	if unix != nil {
		return mo.Some(time.Unix(*unix, 0).UTC())
	}
	if date != "" {
		if t, ok := dateutil.ParseDate(date); ok {
			return mo.Some(t)
		}
	}
	return mo.None[time.Time]()
}

func truncated(opt mo.Option[time.Time]) mo.Option[time.Time] {
	if t, ok := opt.Get(); ok {
		return mo.Some(dateutil.TruncateToDay(t))
	}
	return mo.None[time.Time]()
}
