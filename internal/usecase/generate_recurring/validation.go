package generate_recurring

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Корректность диапазона дат и времени проверяет availability.Expand.
func validateRequest(req *Request, limits domain.EngineLimits) error {
	if req.LessonID <= 0 {
		return fmt.Errorf("%w: lessonID must be positive", ErrInvalidInput)
	}

	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}

	if days := availability.ExpandDays(toRule(req)); days > limits.MaxRecurringDays {
		return fmt.Errorf("%w: %d days, at most %d allowed", ErrRangeTooLong, days, limits.MaxRecurringDays)
	}

	return nil
}

func toRule(req *Request) domain.RecurringRule {
	capacity := req.Capacity
	if capacity == 0 {
		capacity = domain.DefaultWindowCapacity
	}

	return domain.RecurringRule{
		LessonID:   req.LessonID,
		Weekdays:   req.Weekdays,
		RangeStart: req.RangeStart,
		RangeEnd:   req.RangeEnd,
		DailyStart: req.DailyStart,
		DailyEnd:   req.DailyEnd,
		Price:      req.Price,
		Capacity:   capacity,
	}
}
