package schedule

import (
	"bytes"
	"fmt"

	"github.com/emersion/go-ical"

	"github.com/edulify/coursecal/course"
)

// X-properties carrying projector metadata into the exported feed.
const (
	propCourseID = "X-COURSE-ID"
	propColor    = "COLOR"
)

// EventsToICS renders projected events as an iCalendar stream, so the
// calendar boundary can hand the projection to any subscribing client.
// The course id travels as an X-property for navigation back to the
// course detail view.
func EventsToICS(events []course.CalendarEvent) (string, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//coursecal//Schedule Projector//EN")

	for _, ev := range events {
		comp := ical.NewComponent(ical.CompEvent)
		comp.Props.SetText(ical.PropUID, ev.ID)
		comp.Props.SetText(ical.PropSummary, ev.Title)
		comp.Props.SetDateTime(ical.PropDateTimeStamp, ev.Start)
		comp.Props.SetDateTime(ical.PropDateTimeStart, ev.Start)
		comp.Props.SetDateTime(ical.PropDateTimeEnd, ev.End)
		comp.Props.SetText(propCourseID, ev.CourseID)
		comp.Props.SetText(propColor, ev.Color)
		cal.Children = append(cal.Children, comp)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return "", fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.String(), nil
}
