package availability

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Picker turns a click on a 24-hour timeline into a candidate slot.
type Picker struct {
	GranularityMinutes int
}

// DefaultPicker rounds picks down to 10 minutes.
var DefaultPicker = Picker{GranularityMinutes: domain.DefaultPickGranularityMinutes}

// NewPicker returns a picker with the given granularity; non-positive values
// fall back to the default.
func NewPicker(granularityMinutes int) Picker {
	if granularityMinutes <= 0 {
		granularityMinutes = domain.DefaultPickGranularityMinutes
	}
	return Picker{GranularityMinutes: granularityMinutes}
}

// Candidate converts clickFraction (0.0 = midnight, 1.0 = end of day) to a
// slot on date without validating it. The position is floored to whole
// minutes, then down to the granularity. A click at exactly 1.0 is treated
// as the last minute of the day.
func (p Picker) Candidate(clickFraction float64, date time.Time, durationMinutes int) (domain.CandidateSlot, error) {
	if math.IsNaN(clickFraction) || clickFraction < 0 || clickFraction > 1 {
		return domain.CandidateSlot{}, fmt.Errorf("%w: %v", domain.ErrInvalidClick, clickFraction)
	}
	if durationMinutes <= 0 {
		return domain.CandidateSlot{}, fmt.Errorf("%w: %d minutes", domain.ErrInvalidDuration, durationMinutes)
	}

	granularity := p.GranularityMinutes
	if granularity <= 0 {
		granularity = domain.DefaultPickGranularityMinutes
	}

	minutes := int(math.Floor(clickFraction * domain.MinutesPerDay))
	if minutes >= domain.MinutesPerDay {
		minutes = domain.MinutesPerDay - 1
	}
	minutes = minutes / granularity * granularity

	y, m, d := date.Date()
	start := time.Date(y, m, d, minutes/60, minutes%60, 0, 0, date.Location())

	return domain.NewCandidateSlot(start, durationMinutes), nil
}

// PickFromClick builds the candidate and always runs it through Validate.
// On rejection the candidate is returned together with the error so the
// caller can render what was tried.
func (p Picker) PickFromClick(
	clickFraction float64,
	date time.Time,
	durationMinutes int,
	set CanonicalSet,
	booked []domain.BookedSlot,
) (domain.CandidateSlot, error) {
	candidate, err := p.Candidate(clickFraction, date, durationMinutes)
	if err != nil {
		return candidate, err
	}
	if err := Validate(candidate, set, booked); err != nil {
		return candidate, err
	}
	return candidate, nil
}

// PickFromClick uses DefaultPicker.
func PickFromClick(
	clickFraction float64,
	date time.Time,
	durationMinutes int,
	set CanonicalSet,
	booked []domain.BookedSlot,
) (domain.CandidateSlot, error) {
	return DefaultPicker.PickFromClick(clickFraction, date, durationMinutes, set, booked)
}
