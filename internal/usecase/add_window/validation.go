package add_window

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LessonID <= 0 {
		return fmt.Errorf("%w: lessonID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	// Начало строго раньше конца
	if !req.Start.Before(req.End) {
		return fmt.Errorf("%w: start %s is not before end %s", domain.ErrInvalidWindow,
			req.Start.Format(timeLayout), req.End.Format(timeLayout))
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}

	return nil
}

const timeLayout = "2006-01-02T15:04Z07:00"
