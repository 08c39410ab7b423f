package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// buildSlots нарезает окна, начинающиеся в этот день, на слоты и проверяет каждый.
// Слоты, начинающиеся раньше earliest, не возвращаются.
func buildSlots(
	set availability.CanonicalSet,
	date time.Time,
	durationMinutes int,
	booked []domain.BookedSlot,
	earliest time.Time,
) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, 0)

	for _, w := range set.OnDay(date) {
		for slot := range availability.Slots(w, durationMinutes) {
			if slot.Start.Before(earliest) {
				continue
			}

			err := availability.Validate(slot, set, booked)
			result = append(result, domain.AvailableSlot{
				CandidateSlot: slot,
				WindowID:      w.ID,
				Price:         w.Price,
				Available:     err == nil,
				Reason:        domain.ReasonOf(err),
			})
		}
	}

	return result
}

// dayBounds возвращает [начало дня, конец дня) в UTC
func dayBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateStart, _ := dayBounds(date)
	nowStart, _ := dayBounds(now.UTC())
	return dateStart.Before(nowStart)
}

// decision метка результата для метрик
func decision(slot domain.AvailableSlot) string {
	if slot.Available {
		return "accept"
	}
	return string(slot.Reason)
}
