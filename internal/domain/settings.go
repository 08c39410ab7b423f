package domain

import "time"

// EngineLimits are service-wide bounds applied on top of per-lesson settings
type EngineLimits struct {
	PickGranularityMinutes int
	MinDurationMinutes     int
	MaxDurationMinutes     int
	MaxRecurringDays       int
}

// DefaultEngineLimits returns the built-in limits
func DefaultEngineLimits() EngineLimits {
	return EngineLimits{
		PickGranularityMinutes: DefaultPickGranularityMinutes,
		MinDurationMinutes:     DefaultMinDurationMinutes,
		MaxDurationMinutes:     DefaultMaxDurationMinutes,
		MaxRecurringDays:       DefaultMaxRecurringDays,
	}
}

// DurationAllowed reports whether minutes is within [MinDurationMinutes, MaxDurationMinutes]
func (l EngineLimits) DurationAllowed(minutes int) bool {
	return minutes >= l.MinDurationMinutes && minutes <= l.MaxDurationMinutes
}

// LessonSettings represents the booking settings a mentor set for a lesson.
// A lesson without stored settings uses DefaultLessonSettings.
type LessonSettings struct {
	LessonID                int64
	SlotDurationMinutes     int
	PickGranularityMinutes  int
	AdvanceBookingDays      int // 0 = unlimited
	MinBookingNoticeMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DefaultLessonSettings returns the settings used when none are stored
func DefaultLessonSettings(lessonID int64, limits EngineLimits) *LessonSettings {
	return &LessonSettings{
		LessonID:               lessonID,
		SlotDurationMinutes:    DefaultSlotDurationMinutes,
		PickGranularityMinutes: limits.PickGranularityMinutes,
	}
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (s *LessonSettings) HasAdvanceBookingLimit() bool {
	return s.AdvanceBookingDays > 0
}

// EarliestStart returns the first instant a slot may start at, given now
func (s *LessonSettings) EarliestStart(now time.Time) time.Time {
	return now.Add(time.Duration(s.MinBookingNoticeMinutes) * time.Minute)
}

// LatestDate returns the last calendar day open for booking, or zero time if unlimited
func (s *LessonSettings) LatestDate(now time.Time) time.Time {
	if !s.HasAdvanceBookingLimit() {
		return time.Time{}
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, s.AdvanceBookingDays)
}
