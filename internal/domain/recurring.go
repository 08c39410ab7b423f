package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// RecurringRule describes weekly availability that expands into dated windows,
// one per matching calendar day in [RangeStart, RangeEnd].
type RecurringRule struct {
	LessonID   int64
	Weekdays   []time.Weekday
	RangeStart time.Time // date, time of day ignored
	RangeEnd   time.Time // date, inclusive
	DailyStart types.TimeString
	DailyEnd   types.TimeString
	Price      Money
	Capacity   int
}

// HasWeekday reports whether d is one of the rule's weekdays.
func (r RecurringRule) HasWeekday(d time.Weekday) bool {
	for _, w := range r.Weekdays {
		if w == d {
			return true
		}
	}
	return false
}
