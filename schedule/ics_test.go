package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulify/coursecal/course"
)

func TestEventsToICSRoundTrip(t *testing.T) {
	c := ongoingCourse("go-basics",
		course.WeeklySession{Day: "Monday", Start: "09:00", End: "10:00"},
		course.WeeklySession{Day: "Thursday", Start: "14:00", End: "15:30"},
	)

	projected := horizon(2).Project(monday, []course.Course{c})
	require.NotEmpty(t, projected)

	ics, err := EventsToICS(projected)
	require.NoError(t, err)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")

	cal, err := ical.NewDecoder(strings.NewReader(ics)).Decode()
	require.NoError(t, err)

	decoded := cal.Events()
	require.Len(t, decoded, len(projected))

	for i, ev := range decoded {
		want := projected[i]
		assert.Equal(t, want.ID, ev.Props.Get(ical.PropUID).Value)
		assert.Equal(t, want.Title, ev.Props.Get(ical.PropSummary).Value)
		assert.Equal(t, want.CourseID, ev.Props.Get(propCourseID).Value)
		assert.Equal(t, want.Color, ev.Props.Get(propColor).Value)

		start, err := ev.Props.Get(ical.PropDateTimeStart).DateTime(time.UTC)
		require.NoError(t, err)
		assert.True(t, start.Equal(want.Start), "event %d start mismatch", i)

		end, err := ev.Props.Get(ical.PropDateTimeEnd).DateTime(time.UTC)
		require.NoError(t, err)
		assert.True(t, end.Equal(want.End), "event %d end mismatch", i)
	}
}
