package availability

import (
	"fmt"
	"slices"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Insert adds w to set and re-normalizes it: entries that overlap or touch
// are merged into one. The merged entry keeps id, price and capacity of the
// entry retained first (earliest start; existing entries win ties).
// The input set is not modified.
func Insert(set CanonicalSet, w domain.Window) (CanonicalSet, error) {
	if err := w.Validate(); err != nil {
		return set, fmt.Errorf("%w: %s", err, formatInterval(w.Interval))
	}

	all := make([]domain.Window, 0, len(set.windows)+1)
	all = append(all, set.windows...)
	all = append(all, w)
	slices.SortStableFunc(all, func(a, b domain.Window) int {
		return a.Start.Compare(b.Start)
	})

	merged := make([]domain.Window, 0, len(all))
	current := all[0]
	for _, next := range all[1:] {
		if current.Touches(next.Interval) {
			if next.End.After(current.End) {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	return CanonicalSet{windows: merged}, nil
}

// InsertAll inserts ws one by one. On the first invalid window it stops and
// returns the set built so far together with the error.
func InsertAll(set CanonicalSet, ws ...domain.Window) (CanonicalSet, error) {
	var err error
	for _, w := range ws {
		set, err = Insert(set, w)
		if err != nil {
			return set, err
		}
	}
	return set, nil
}

func formatInterval(iv domain.Interval) string {
	return fmt.Sprintf("[%s, %s)", iv.Start.UTC().Format("2006-01-02T15:04Z"), iv.End.UTC().Format("2006-01-02T15:04Z"))
}
