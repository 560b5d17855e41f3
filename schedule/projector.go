// Package schedule expands the weekly session patterns of ongoing
// courses into concrete calendar events over a bounded forward horizon.
package schedule

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/edulify/coursecal/course"
	"github.com/edulify/coursecal/internal/dateutil"
	"github.com/edulify/coursecal/lifecycle"
)

// eventNamespace seeds the UUIDv5 derivation of event identifiers, so
// repeated projections of unchanged input reproduce the same ids.
var eventNamespace = uuid.MustParse("7c9e3a52-61d4-4b08-9b5e-2f1a84c0de37")

// Projector expands weekly course schedules into calendar events.
type Projector struct {
	cfg        ProjectorConfig
	classifier *lifecycle.Classifier
	cache      *ProjectionCache
	logger     *slog.Logger
}

// NewProjector creates a projector with the default configuration.
func NewProjector() *Projector {
	return NewProjectorWithConfig(DefaultProjectorConfig, nil)
}

// NewProjectorWithConfig creates a projector with custom configuration.
// A nil logger falls back to slog.Default.
func NewProjectorWithConfig(cfg ProjectorConfig, logger *slog.Logger) *Projector {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.HorizonWeeks <= 0 {
		cfg.HorizonWeeks = DefaultProjectorConfig.HorizonWeeks
	}
	var cache *ProjectionCache
	if cfg.CacheEnabled {
		cache = NewProjectionCache(cfg.CacheConfig)
	}
	return &Projector{
		cfg:        cfg,
		classifier: lifecycle.NewClassifier(),
		cache:      cache,
		logger:     logger,
	}
}

// Close releases the projection cache, if one is enabled.
func (p *Projector) Close() {
	if p.cache != nil {
		p.cache.Close()
	}
}

// Project returns the calendar events of every ongoing, already-started
// course over the configured horizon, anchored at the most recent Sunday
// relative to now (inclusive). Courses appear in input order, sessions
// in declaration order, weeks ascending; malformed sessions are skipped.
// The result is a pure function of (now, courses).
func (p *Projector) Project(now time.Time, courses []course.Course) []course.CalendarEvent {
	if p.cache != nil {
		if events, ok := p.cache.Get(now, p.cfg.HorizonWeeks, courses); ok {
			return events
		}
	}
	events := p.project(now, courses)
	if p.cache != nil {
		p.cache.Set(now, p.cfg.HorizonWeeks, courses, events)
	}
	return events
}

func (p *Projector) project(now time.Time, courses []course.Course) []course.CalendarEvent {
	// Only ongoing courses generate events, whichever category they
	// belong to. Membership is resolved per category and then applied
	// over the original slice to preserve input order.
	eligible := make(map[string]struct{})
	for _, c := range p.classifier.Ongoing(now, courses, course.CategoryInternal) {
		eligible[c.ID] = struct{}{}
	}
	for _, c := range p.classifier.Ongoing(now, courses, course.CategoryExternal) {
		eligible[c.ID] = struct{}{}
	}

	today := dateutil.TruncateToDay(now)
	anchor := dateutil.WeekStart(now)

	var events []course.CalendarEvent
	for _, c := range courses {
		if _, ok := eligible[c.ID]; !ok {
			continue
		}
		startDay, ok := c.StartDay().Get()
		if !ok || startDay.After(today) {
			continue
		}
		events = append(events, p.projectCourse(c, anchor, startDay)...)
	}
	return events
}

func (p *Projector) projectCourse(c course.Course, anchor, startDay time.Time) []course.CalendarEvent {
	endDay, hasEnd := c.EndDay().Get()
	perWeekday := sessionsPerWeekday(c)
	color := ColorFor(c)

	var out []course.CalendarEvent
	for i, s := range c.Sessions {
		weekday, err := dateutil.ParseWeekday(s.Day)
		if err != nil {
			p.logger.Debug("skipping session with unrecognized weekday",
				"course", c.ID, "session", i, "day", s.Day)
			continue
		}
		startClock, err := dateutil.ParseClock(s.Start)
		if err != nil {
			p.logger.Debug("skipping session with invalid start clock",
				"course", c.ID, "session", i, "start", s.Start)
			continue
		}
		endClock, err := dateutil.ParseClock(s.End)
		if err != nil {
			p.logger.Debug("skipping session with invalid end clock",
				"course", c.ID, "session", i, "end", s.End)
			continue
		}
		if !startClock.Before(endClock) {
			// Overnight sessions are a configuration error caught by
			// course.ValidateSessions; here they just contribute nothing.
			p.logger.Debug("skipping session ending at or before its start",
				"course", c.ID, "session", i, "start", s.Start, "end", s.End)
			continue
		}

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Count:     p.cfg.HorizonWeeks,
			Byweekday: []rrule.Weekday{rruleWeekday(weekday)},
			Dtstart:   startClock.On(anchor),
		})
		if err != nil {
			p.logger.Debug("skipping session with unbuildable recurrence",
				"course", c.ID, "session", i, "error", err)
			continue
		}

		title := c.Title
		if perWeekday[weekday] > 1 {
			title = fmt.Sprintf("%s (%s)", c.Title, startClock)
		}

		for _, occ := range rule.All() {
			day := dateutil.TruncateToDay(occ)
			if day.Before(startDay) {
				continue
			}
			if hasEnd && day.After(endDay) {
				continue
			}
			week := int(day.Sub(anchor).Hours()) / (24 * 7)
			ev := course.CalendarEvent{
				ID:       eventID(c.ID, weekday, i, week, startClock),
				CourseID: c.ID,
				Title:    title,
				Start:    occ,
				End:      endClock.On(day),
				Color:    color,
			}
			if !ev.End.After(ev.Start) {
				continue
			}
			out = append(out, ev)
		}
	}
	return out
}

// sessionsPerWeekday counts the parseable sessions per weekday, used to
// decide whether event titles need the start clock appended.
func sessionsPerWeekday(c course.Course) map[time.Weekday]int {
	counts := make(map[time.Weekday]int)
	for _, s := range c.Sessions {
		if weekday, err := dateutil.ParseWeekday(s.Day); err == nil {
			counts[weekday]++
		}
	}
	return counts
}

func eventID(courseID string, weekday time.Weekday, session, week int, start dateutil.Clock) string {
	key := fmt.Sprintf("%s|%d|%d|%d|%s", courseID, weekday, session, week, start)
	return uuid.NewSHA1(eventNamespace, []byte(key)).String()
}

func rruleWeekday(wd time.Weekday) rrule.Weekday {
	switch wd {
	case time.Sunday:
		return rrule.SU
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	default:
		return rrule.SA
	}
}
