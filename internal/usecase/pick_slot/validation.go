package pick_slot

import (
	"fmt"
	"math"

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

	if math.IsNaN(req.ClickFraction) || req.ClickFraction < 0 || req.ClickFraction > 1 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidClick, req.ClickFraction)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: %d minutes", domain.ErrInvalidDuration, req.DurationMinutes)
	}

	return nil
}
