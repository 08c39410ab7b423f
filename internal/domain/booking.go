package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending           BookingStatus = "pending"
	StatusConfirmed         BookingStatus = "confirmed"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByUser   BookingStatus = "cancelled_by_user"
	StatusCancelledByMentor BookingStatus = "cancelled_by_mentor"
)

// Booking represents a persisted reservation of a slot on a lesson
type Booking struct {
	ID       int64
	LessonID int64
	UserID   int64
	WindowID *string
	Interval
	Status BookingStatus
	Price  Money
	Notes  *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time range
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByUser && b.Status != StatusCancelledByMentor
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Slot returns the booked range as seen by the slot engine
func (b *Booking) Slot() BookedSlot {
	return BookedSlot{Interval: b.Interval}
}

// ActiveSlots converts the active bookings to booked slots
func ActiveSlots(bookings []*Booking) []BookedSlot {
	slots := make([]BookedSlot, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			slots = append(slots, b.Slot())
		}
	}
	return slots
}

// IsValidBookingStatus checks that s is a known status
func IsValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelledByUser, StatusCancelledByMentor:
		return true
	default:
		return false
	}
}
