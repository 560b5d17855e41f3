// Package lifecycle partitions courses into lifecycle buckets, either
// relative to an injected "today" or constrained to an inclusive
// reporting window.
//
// Externally-time-boxed courses are classified purely from their
// start/end dates. Internally-scheduled courses combine the upstream
// status label with the dates; only they can occupy the planning bucket.
// Each course is evaluated exactly once against a decision table, so the
// four buckets of one call are disjoint by construction and classifying
// with no range agrees with classifying against an all-covering range.
package lifecycle

import (
	"time"

	"github.com/edulify/coursecal/course"
	"github.com/edulify/coursecal/internal/dateutil"
)

// Result holds the four lifecycle buckets of one classification call.
// Buckets preserve the relative order of the input collection.
type Result struct {
	Upcoming  []course.Course
	Ongoing   []course.Course
	Planning  []course.Course
	Completed []course.Course
}

// Total is the number of courses placed in any bucket.
func (r Result) Total() int {
	return len(r.Upcoming) + len(r.Ongoing) + len(r.Planning) + len(r.Completed)
}

type bucket int

const (
	bucketNone bucket = iota
	bucketUpcoming
	bucketOngoing
	bucketPlanning
	bucketCompleted
)

// Classifier evaluates course lifecycle membership.
type Classifier struct{}

// NewClassifier creates a new classifier instance.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify partitions the courses of the given category into lifecycle
// buckets. Courses of the other category are ignored. today supplies the
// reference instant (injected, never read from the system clock); rng,
// when non-nil, constrains each bucket to the inclusive reporting
// window. All status boundaries compare at day granularity.
func (cl *Classifier) Classify(today time.Time, courses []course.Course, cat course.Category, rng *course.DateRange) Result {
	td := dateutil.TruncateToDay(today)

	var res Result
	for _, c := range courses {
		if c.Category != cat {
			continue
		}
		var b bucket
		switch cat {
		case course.CategoryExternal:
			b = classifyExternal(td, c, rng)
		default:
			b = classifyInternal(td, c, rng)
		}
		switch b {
		case bucketUpcoming:
			res.Upcoming = append(res.Upcoming, c)
		case bucketOngoing:
			res.Ongoing = append(res.Ongoing, c)
		case bucketPlanning:
			res.Planning = append(res.Planning, c)
		case bucketCompleted:
			res.Completed = append(res.Completed, c)
		}
	}
	return res
}

// Ongoing is a convenience for callers that only need the ongoing set,
// such as the schedule projector.
func (cl *Classifier) Ongoing(today time.Time, courses []course.Course, cat course.Category) []course.Course {
	return cl.Classify(today, courses, cat, nil).Ongoing
}

// classifyExternal buckets a course whose lifecycle is determined purely
// by its dates. The status label is ignored and planning is never used.
func classifyExternal(td time.Time, c course.Course, rng *course.DateRange) bucket {
	sd, hasStart := c.StartDay().Get()
	ed, hasEnd := c.EndDay().Get()

	// Not yet started.
	if hasStart && sd.After(td) {
		if rng == nil || rng.Contains(sd) {
			return bucketUpcoming
		}
		return bucketNone
	}

	// Started and not yet ended. The ranged constraint is interval
	// overlap: started by the window end, ends at or after its start.
	if hasStart && (!hasEnd || !ed.Before(td)) {
		if rng == nil || (!sd.After(rng.End) && (!hasEnd || !ed.Before(rng.Start))) {
			return bucketOngoing
		}
		return bucketNone
	}

	// Ended before today. A course with no end date is never completed.
	if hasEnd && ed.Before(td) {
		if rng == nil || rng.Contains(ed) {
			return bucketCompleted
		}
	}
	return bucketNone
}

// classifyInternal buckets a course with a planning lifecycle. Rows are
// evaluated top to bottom; the first match wins.
//
// The ranged tests for ongoing-status courses and for other in-flight
// statuses differ on window-end boundary inclusion (see the strict
// Before in the final row). The upstream system handles the two through
// separate code paths with exactly this asymmetry; it is preserved here
// pending product clarification rather than unified.
func classifyInternal(td time.Time, c course.Course, rng *course.DateRange) bucket {
	sd, hasStart := c.StartDay().Get()
	ed, hasEnd := c.EndDay().Get()

	switch c.Status {
	case course.StatusDraft:
		// Drafts are always planning, regardless of dates or range.
		return bucketPlanning
	case course.StatusCompleted:
		// Completed status dominates; window membership is judged by
		// the end date. No end date means reported regardless of range.
		if rng == nil || !hasEnd || rng.Contains(ed) {
			return bucketCompleted
		}
		return bucketNone
	}

	// Future start: upcoming, never planning, even for ongoing status.
	if hasStart && sd.After(td) {
		if rng == nil || rng.Contains(sd) {
			return bucketUpcoming
		}
		return bucketNone
	}

	if c.Status == course.StatusOngoing {
		if !hasStart {
			// Marked ongoing upstream but with no resolvable start it
			// cannot have started; keep it in the planning pipeline.
			return bucketPlanning
		}
		if rng == nil || (!sd.After(rng.End) && (!hasEnd || !ed.Before(rng.Start))) {
			return bucketOngoing
		}
		return bucketNone
	}

	// Unknown/other status: not yet started, still being planned.
	if !hasStart || rng == nil {
		return bucketPlanning
	}
	if sd.Before(rng.End) && (!hasEnd || !ed.Before(rng.Start)) {
		return bucketPlanning
	}
	return bucketNone
}
