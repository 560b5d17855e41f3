package course

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSessions(t *testing.T) {
	valid := Course{ID: "c1", Sessions: []WeeklySession{
		{Day: "Monday", Start: "09:00", End: "10:00"},
		{Day: "Thursday", Start: "14:00", End: "15:30"},
	}}
	assert.NoError(t, ValidateSessions(valid))

	assert.NoError(t, ValidateSessions(Course{ID: "empty"}))

	tests := []struct {
		name    string
		session WeeklySession
	}{
		{"Unknown weekday", WeeklySession{Day: "Funday", Start: "09:00", End: "10:00"}},
		{"Bad start clock", WeeklySession{Day: "Monday", Start: "9am", End: "10:00"}},
		{"Bad end clock", WeeklySession{Day: "Monday", Start: "09:00", End: "25:00"}},
		{"Overnight session", WeeklySession{Day: "Monday", Start: "22:00", End: "01:00"}},
		{"Zero-length session", WeeklySession{Day: "Monday", Start: "09:00", End: "09:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessions(Course{ID: "c2", Sessions: []WeeklySession{tt.session}})
			require.Error(t, err)

			var cerr *Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, ErrInvalidSession, cerr.Type)
			assert.Contains(t, cerr.Error(), "c2")
		})
	}
}
