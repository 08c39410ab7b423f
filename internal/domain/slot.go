package domain

import "time"

// CandidateSlot is a slot under evaluation, End = Start + duration.
type CandidateSlot struct {
	Interval
}

// NewCandidateSlot builds a candidate of durationMinutes starting at start.
func NewCandidateSlot(start time.Time, durationMinutes int) CandidateSlot {
	return CandidateSlot{Interval{Start: start, End: start.Add(time.Duration(durationMinutes) * time.Minute)}}
}

// BookedSlot is a confirmed reservation against a lesson.
type BookedSlot struct {
	Interval
}

// AvailableSlot is a generated slot together with its validation outcome.
type AvailableSlot struct {
	CandidateSlot
	WindowID  string
	Price     Money
	Available bool
	Reason    RejectReason
}
