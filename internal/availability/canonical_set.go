package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// CanonicalSet is the merged form of one lesson's windows: sorted by start,
// with a strict gap between neighbours (entry[i].End < entry[i+1].Start).
// The zero value is an empty set. New sets only come out of Insert.
type CanonicalSet struct {
	windows []domain.Window
}

// NewCanonicalSet folds ws through Insert in order.
func NewCanonicalSet(ws ...domain.Window) (CanonicalSet, error) {
	return InsertAll(CanonicalSet{}, ws...)
}

// Windows returns a copy of the entries.
func (s CanonicalSet) Windows() []domain.Window {
	out := make([]domain.Window, len(s.windows))
	copy(out, s.windows)
	return out
}

func (s CanonicalSet) Len() int {
	return len(s.windows)
}

func (s CanonicalSet) IsEmpty() bool {
	return len(s.windows) == 0
}

// Find returns the single entry that fully contains iv.
// Entries are sorted and disjoint, so only the last entry starting at or
// before iv.Start can contain it.
func (s CanonicalSet) Find(iv domain.Interval) (domain.Window, bool) {
	idx := sort.Search(len(s.windows), func(i int) bool {
		return s.windows[i].Start.After(iv.Start)
	})
	if idx == 0 {
		return domain.Window{}, false
	}
	w := s.windows[idx-1]
	if !w.Contains(iv) {
		return domain.Window{}, false
	}
	return w, true
}

// HasStart reports whether some entry starts exactly at t.
func (s CanonicalSet) HasStart(t time.Time) bool {
	idx := sort.Search(len(s.windows), func(i int) bool {
		return !s.windows[i].Start.Before(t)
	})
	return idx < len(s.windows) && s.windows[idx].Start.Equal(t)
}

// OnDay returns the entries that start on the calendar day of day, in day's location.
func (s CanonicalSet) OnDay(day time.Time) []domain.Window {
	y, m, d := day.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	out := make([]domain.Window, 0)
	for _, w := range s.windows {
		if !w.Start.Before(dayStart) && w.Start.Before(dayEnd) {
			out = append(out, w)
		}
	}
	return out
}

// Without returns the set minus the entry with the given id, together with
// the removed entry. Removing an entry keeps the remaining ones canonical.
func (s CanonicalSet) Without(id string) (CanonicalSet, domain.Window, bool) {
	for i, w := range s.windows {
		if w.ID == id {
			rest := make([]domain.Window, 0, len(s.windows)-1)
			rest = append(rest, s.windows[:i]...)
			rest = append(rest, s.windows[i+1:]...)
			return CanonicalSet{windows: rest}, w, true
		}
	}
	return s, domain.Window{}, false
}

// Equal compares the entries' intervals only.
func (s CanonicalSet) Equal(o CanonicalSet) bool {
	if len(s.windows) != len(o.windows) {
		return false
	}
	for i := range s.windows {
		if !s.windows[i].Interval.Equal(o.windows[i].Interval) {
			return false
		}
	}
	return true
}
