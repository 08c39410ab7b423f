package domain

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether Start is strictly before End.
func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether two half-open ranges share at least one instant.
// Ranges that only touch (a.End == b.Start) do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

// Contains reports whether o lies fully inside i.
func (i Interval) Contains(o Interval) bool {
	return !o.Start.Before(i.Start) && !o.End.After(i.End)
}

// Touches reports whether the ranges overlap or meet end-to-start.
func (i Interval) Touches(o Interval) bool {
	return !i.Start.After(o.End) && !o.Start.After(i.End)
}

// Equal compares instants, ignoring location.
func (i Interval) Equal(o Interval) bool {
	return i.Start.Equal(o.Start) && i.End.Equal(o.End)
}

// Less orders by Start, then by End.
func (i Interval) Less(o Interval) bool {
	if !i.Start.Equal(o.Start) {
		return i.Start.Before(o.Start)
	}
	return i.End.Before(o.End)
}

// Compare returns -1, 0 or +1 following Less.
func (i Interval) Compare(o Interval) int {
	switch {
	case i.Less(o):
		return -1
	case o.Less(i):
		return 1
	default:
		return 0
	}
}
