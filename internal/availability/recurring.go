package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Expand turns a weekly rule into dated windows, one per matching day in
// [RangeStart, RangeEnd]. A window whose start equals the start of an entry
// in existing, or of a window produced earlier in this call, is skipped.
// The result is not merged; feed it through Insert.
//
// An empty weekday set is a valid rule and yields no windows. Windows that
// would cross midnight are rejected with domain.ErrInvalidWindow.
func Expand(rule domain.RecurringRule, existing CanonicalSet) ([]domain.Window, error) {
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	out := make([]domain.Window, 0)
	if len(rule.Weekdays) == 0 {
		return out, nil
	}

	seen := make(map[int64]struct{})
	first := dateOnly(rule.RangeStart)
	last := dateOnly(rule.RangeEnd)

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if !rule.HasWeekday(day.Weekday()) {
			continue
		}

		start := rule.DailyStart.On(day)
		if existing.HasStart(start) {
			continue
		}
		key := start.UnixNano()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, domain.Window{
			LessonID: rule.LessonID,
			Interval: domain.Interval{Start: start, End: rule.DailyEnd.On(day)},
			Price:    rule.Price,
			Capacity: rule.Capacity,
		})
	}

	return out, nil
}

// ExpandDays returns the number of calendar days the rule's range spans.
// Runs in constant time, so callers can check it against a limit before
// calling Expand.
func ExpandDays(rule domain.RecurringRule) int {
	first := civilDate(rule.RangeStart)
	last := civilDate(rule.RangeEnd)
	if last.Before(first) {
		return 0
	}
	return int(last.Sub(first)/(24*time.Hour)) + 1
}

func validateRule(rule domain.RecurringRule) error {
	if rule.RangeStart.IsZero() || rule.RangeEnd.IsZero() {
		return fmt.Errorf("%w: range bounds are required", domain.ErrInvalidRange)
	}
	if dateOnly(rule.RangeEnd).Before(dateOnly(rule.RangeStart)) {
		return fmt.Errorf("%w: range end %s is before range start %s", domain.ErrInvalidRange,
			rule.RangeEnd.Format(domain.DateFormat), rule.RangeStart.Format(domain.DateFormat))
	}
	for _, wd := range rule.Weekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("%w: weekday %d", domain.ErrInvalidRange, int(wd))
		}
	}
	if rule.DailyStart.IsZero() || rule.DailyEnd.IsZero() {
		return fmt.Errorf("%w: daily start and end are required", domain.ErrInvalidWindow)
	}
	if !rule.DailyStart.IsBefore(rule.DailyEnd) {
		return fmt.Errorf("%w: daily range %s-%s", domain.ErrInvalidWindow, rule.DailyStart, rule.DailyEnd)
	}
	return nil
}

// civilDate maps t's calendar date to UTC midnight, where every day is 24h long.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
