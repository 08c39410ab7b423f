package availability

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Validate accepts (nil) or rejects a candidate. Checks run in order and the
// first failure wins:
//  1. domain.ErrOutOfRange: no single entry of set contains the candidate;
//  2. domain.ErrConflict: the candidate overlaps a booked slot (half-open test).
//
// The result only holds for this snapshot of set and booked; a caller that
// commits the slot must re-validate under its own lock.
func Validate(c domain.CandidateSlot, set CanonicalSet, booked []domain.BookedSlot) error {
	if !c.Valid() {
		return fmt.Errorf("%w: candidate %s", domain.ErrInvalidWindow, formatInterval(c.Interval))
	}

	if _, ok := set.Find(c.Interval); !ok {
		return fmt.Errorf("%w: %s", domain.ErrOutOfRange, formatInterval(c.Interval))
	}

	for _, b := range booked {
		if c.Overlaps(b.Interval) {
			return fmt.Errorf("%w: %s overlaps booked %s",
				domain.ErrConflict, formatInterval(c.Interval), formatInterval(b.Interval))
		}
	}

	return nil
}
