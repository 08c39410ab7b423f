package settings

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const (
	maxAdvanceBookingDays      = 365
	maxMinBookingNoticeMinutes = 7 * 24 * 60
	maxPickGranularityMinutes  = 60
)

// validateSettings проверяет итоговые настройки по лимитам сервиса
func validateSettings(s *domain.LessonSettings, limits domain.EngineLimits) error {
	if !limits.DurationAllowed(s.SlotDurationMinutes) {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, limits.MinDurationMinutes, limits.MaxDurationMinutes)
	}

	// Шаг клика должен делить сутки без остатка, иначе сетка сдвигается от дня к дню
	g := s.PickGranularityMinutes
	if g <= 0 || g > maxPickGranularityMinutes || domain.MinutesPerDay%g != 0 {
		return fmt.Errorf("%w: pickGranularityMinutes must divide %d and be at most %d",
			ErrInvalidInput, domain.MinutesPerDay, maxPickGranularityMinutes)
	}

	if s.AdvanceBookingDays < 0 || s.AdvanceBookingDays > maxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between 0 and %d", ErrInvalidInput, maxAdvanceBookingDays)
	}

	if s.MinBookingNoticeMinutes < 0 || s.MinBookingNoticeMinutes > maxMinBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between 0 and %d", ErrInvalidInput, maxMinBookingNoticeMinutes)
	}

	return nil
}
