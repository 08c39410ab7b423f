package domain

import "errors"

var (
	// ErrInvalidWindow is returned for a window with start >= end.
	ErrInvalidWindow = errors.New("invalid window")

	// ErrInvalidRange is returned for a recurring rule whose date range or weekday set is malformed.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidDuration is returned for a non-positive slot duration.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidClick is returned for a timeline position outside [0, 1].
	ErrInvalidClick = errors.New("invalid click position")

	// ErrOutOfRange is returned when a candidate is not inside any single window.
	ErrOutOfRange = errors.New("slot is out of range")

	// ErrConflict is returned when a candidate overlaps a booked slot.
	ErrConflict = errors.New("slot conflicts with a booking")
)

// ErrorKind classifies engine errors for callers that branch on them.
type ErrorKind string

const (
	KindInvalidWindow   ErrorKind = "invalid_window"
	KindInvalidRange    ErrorKind = "invalid_range"
	KindInvalidDuration ErrorKind = "invalid_duration"
	KindInvalidClick    ErrorKind = "invalid_click"
	KindOutOfRange      ErrorKind = "out_of_range"
	KindConflict        ErrorKind = "conflict"
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrInvalidWindow, KindInvalidWindow},
	{ErrInvalidRange, KindInvalidRange},
	{ErrInvalidDuration, KindInvalidDuration},
	{ErrInvalidClick, KindInvalidClick},
	{ErrOutOfRange, KindOutOfRange},
	{ErrConflict, KindConflict},
}

// KindOf returns the kind of a (possibly wrapped) engine error, or "" for other errors.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}

// IsCallerBug reports whether err signals malformed upstream input
// rather than a user-facing rejection.
func IsCallerBug(err error) bool {
	switch KindOf(err) {
	case KindInvalidWindow, KindInvalidRange, KindInvalidDuration, KindInvalidClick:
		return true
	default:
		return false
	}
}

// RejectReason is the user-facing reason a candidate slot was rejected.
type RejectReason string

const (
	ReasonNone       RejectReason = ""
	ReasonOutOfRange RejectReason = "out_of_range"
	ReasonConflict   RejectReason = "conflict"

	// ReasonTooSoon marks a slot inside the lesson's minimum booking notice.
	// The engine never returns it; it comes from lesson settings.
	ReasonTooSoon RejectReason = "too_soon"
)

// ReasonOf maps a validation error to a RejectReason. Unknown errors map to ReasonNone.
func ReasonOf(err error) RejectReason {
	switch KindOf(err) {
	case KindOutOfRange:
		return ReasonOutOfRange
	case KindConflict:
		return ReasonConflict
	default:
		return ReasonNone
	}
}
