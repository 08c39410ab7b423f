package domain

// Engine defaults
const (
	MinutesPerDay                 = 24 * 60
	DefaultPickGranularityMinutes = 10
	DefaultMinDurationMinutes     = 10
	DefaultMaxDurationMinutes     = 480 // 8 hours
	DefaultMaxRecurringDays       = 366
	DefaultWindowCapacity         = 1
	DefaultSlotDurationMinutes    = 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, которые не занимают время в расписании
var InactiveStatuses = []BookingStatus{
	StatusCancelledByUser,
	StatusCancelledByMentor,
}

// ActiveStatuses статусы, которые занимают время в расписании
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
