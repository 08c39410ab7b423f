package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LessonID <= 0 {
		return fmt.Errorf("%w: lessonID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: %d minutes", domain.ErrInvalidDuration, req.DurationMinutes)
	}

	return nil
}

// validateDuration проверяет длительность по лимитам сервиса
func validateDuration(minutes int, limits domain.EngineLimits) error {
	if !limits.DurationAllowed(minutes) {
		return fmt.Errorf("%w: %d minutes, allowed %d..%d", domain.ErrInvalidDuration,
			minutes, limits.MinDurationMinutes, limits.MaxDurationMinutes)
	}
	return nil
}
