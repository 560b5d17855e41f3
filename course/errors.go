package course

import "fmt"

// ErrorType categorizes validation failures at the caller boundary.
type ErrorType string

const (
	ErrInvalidSession ErrorType = "invalid_session"
	ErrInvalidInput   ErrorType = "invalid_input"
)

// Error is a validation error for upstream course data. The
// classification and projection engines themselves never fail; Error is
// returned only by the explicit validation helpers.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
