package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2024, 2, 15, 18, 42, 31, 999, time.UTC)
	got := TruncateToDay(in)
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), got)

	// Already truncated input is a no-op.
	assert.Equal(t, got, TruncateToDay(got))
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		expected time.Time
	}{
		{
			name:     "Mid-week Thursday",
			in:       time.Date(2024, 2, 15, 10, 30, 0, 0, time.UTC),
			expected: time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Sunday is its own week start",
			in:       time.Date(2024, 2, 11, 23, 59, 0, 0, time.UTC),
			expected: time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Saturday belongs to the almost-finished week",
			in:       time.Date(2024, 2, 17, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeekStart(tt.in))
			assert.Equal(t, time.Sunday, WeekStart(tt.in).Weekday())
		})
	}
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-03-31")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), got)

	got, ok = ParseDate("2024-03-31T08:30:00Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 31, 8, 30, 0, 0, time.UTC), got)

	_, ok = ParseDate("31/03/2024")
	assert.False(t, ok)

	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestParseWeekday(t *testing.T) {
	wd, err := ParseWeekday("Sunday")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)

	wd, err = ParseWeekday("Saturday")
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, wd)

	_, err = ParseWeekday("monday")
	assert.Error(t, err)

	_, err = ParseWeekday("Funday")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 9, Minute: 30}, c)
	assert.Equal(t, "09:30", c.String())

	c, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, Clock{Hour: 23, Minute: 59}, c)

	for _, bad := range []string{"", "24:00", "12:60", "noon", "12", "12:00:00"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "clock %q should not parse", bad)
	}
}

func TestClockBeforeAndOn(t *testing.T) {
	morning := Clock{Hour: 9, Minute: 0}
	afternoon := Clock{Hour: 14, Minute: 30}

	assert.True(t, morning.Before(afternoon))
	assert.False(t, afternoon.Before(morning))
	assert.False(t, morning.Before(morning))

	day := time.Date(2024, 2, 12, 17, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 12, 14, 30, 0, 0, time.UTC), afternoon.On(day))
}
