package domain

// Status represents the state of a task.
type Status string

const (
	StatusNone      Status = "none"      // No state, marker ' '
	StatusPending   Status = "pending"   // Marker 'p'
	StatusDoing     Status = "doing"     // Marker '>'
	StatusWaiting   Status = "waiting"   // Marker 'w'
	StatusDone      Status = "done"      // Marker 'x'
	StatusCancelled Status = "cancelled" // Marker 'c'
	StatusUnknown   Status = "unknown"   // Marker '?', and any unrecognized marker

	// Legacy spelling (for backward compatibility with old data).
	statusOpenLegacy Status = "open" // Legacy: renamed to none
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusNone,
		StatusPending,
		StatusDoing,
		StatusWaiting,
		StatusDone,
		StatusCancelled,
		StatusUnknown,
	}
}

// StatusFromMarker maps a status marker character to a Status.
// Matching is case-insensitive; unrecognized markers map to unknown.
func StatusFromMarker(marker rune) Status {
	if marker >= 'A' && marker <= 'Z' {
		marker += 'a' - 'A'
	}
	switch marker {
	case ' ':
		return StatusNone
	case 'p':
		return StatusPending
	case '>':
		return StatusDoing
	case 'w':
		return StatusWaiting
	case 'x':
		return StatusDone
	case 'c':
		return StatusCancelled
	default:
		return StatusUnknown
	}
}

// Marker returns the single-character text representation of the status.
func (s Status) Marker() rune {
	switch s.Canonical() {
	case StatusNone:
		return ' '
	case StatusPending:
		return 'p'
	case StatusDoing:
		return '>'
	case StatusWaiting:
		return 'w'
	case StatusDone:
		return 'x'
	case StatusCancelled:
		return 'c'
	default:
		return '?'
	}
}

// Canonical maps legacy spellings to their current form. "open" was the
// original word for the blank marker and still appears in old stores.
func (s Status) Canonical() Status {
	if s == statusOpenLegacy {
		return StatusNone
	}
	return s
}

// IsValid returns true if the status is a known valid value.
// The legacy spelling "open" is not considered valid for new tasks.
func (s Status) IsValid() bool {
	switch s {
	case StatusNone, StatusPending, StatusDoing, StatusWaiting, StatusDone, StatusCancelled, StatusUnknown:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the task needs no further work.
func (s Status) IsTerminal() bool {
	c := s.Canonical()
	return c == StatusDone || c == StatusCancelled
}
