package availability

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Slots lazily tiles w with back-to-back slots of durationMinutes starting at
// w.Start. A trailing remainder shorter than the duration is dropped.
// The sequence is empty for an invalid window or duration and can be ranged
// over any number of times.
func Slots(w domain.Window, durationMinutes int) iter.Seq[domain.CandidateSlot] {
	return func(yield func(domain.CandidateSlot) bool) {
		if durationMinutes <= 0 || !w.Valid() {
			return
		}
		d := time.Duration(durationMinutes) * time.Minute
		for cursor := w.Start; !cursor.Add(d).After(w.End); cursor = cursor.Add(d) {
			slot := domain.CandidateSlot{Interval: domain.Interval{Start: cursor, End: cursor.Add(d)}}
			if !yield(slot) {
				return
			}
		}
	}
}

// Generate materializes Slots. A duration longer than the window yields an
// empty slice, not an error.
func Generate(w domain.Window, durationMinutes int) ([]domain.CandidateSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", domain.ErrInvalidDuration, durationMinutes)
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", err, formatInterval(w.Interval))
	}

	slots := slices.Collect(Slots(w, durationMinutes))
	if slots == nil {
		slots = []domain.CandidateSlot{}
	}
	return slots, nil
}
