package course

import "strings"

// Status is the lifecycle label recorded by upstream data. Upstream
// values are free-form strings; anything unrecognized parses to
// StatusUnknown, which classification treats as "not yet started".
type Status string

const (
	StatusDraft     Status = "draft"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusUnknown   Status = ""
)

// ParseStatus maps an upstream status label to a Status. Comparison is
// case-insensitive with surrounding whitespace ignored.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "draft":
		return StatusDraft
	case "ongoing":
		return StatusOngoing
	case "completed":
		return StatusCompleted
	default:
		return StatusUnknown
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	if s == StatusUnknown {
		return "unknown"
	}
	return string(s)
}

// IsTerminal reports whether the status represents a finished course.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}
