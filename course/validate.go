package course

import (
	"fmt"

	"github.com/edulify/coursecal/internal/dateutil"
)

// ValidateSessions checks a course's weekly schedule at the caller
// boundary. Projection itself skips malformed sessions silently; this
// helper lets the ingestion layer surface them instead. The first
// offending session is reported.
//
// Overnight sessions (end clock not later than start clock) are a
// configuration error: the projector cannot represent them and will
// drop them.
func ValidateSessions(c Course) error {
	for i, s := range c.Sessions {
		if _, err := dateutil.ParseWeekday(s.Day); err != nil {
			return &Error{
				Type:    ErrInvalidSession,
				Message: fmt.Sprintf("course %s session %d", c.ID, i),
				Err:     err,
			}
		}
		start, err := dateutil.ParseClock(s.Start)
		if err != nil {
			return &Error{
				Type:    ErrInvalidSession,
				Message: fmt.Sprintf("course %s session %d", c.ID, i),
				Err:     err,
			}
		}
		end, err := dateutil.ParseClock(s.End)
		if err != nil {
			return &Error{
				Type:    ErrInvalidSession,
				Message: fmt.Sprintf("course %s session %d", c.ID, i),
				Err:     err,
			}
		}
		if !start.Before(end) {
			return &Error{
				Type:    ErrInvalidSession,
				Message: fmt.Sprintf("course %s session %d: end %s not after start %s", c.ID, i, end, start),
			}
		}
	}
	return nil
}
