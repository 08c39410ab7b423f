package create_booking

import "errors"

var (
	// ErrLessonNotFound возвращается, когда занятие не найдено или не опубликовано
	ErrLessonNotFound = errors.New("create_booking: lesson not found")

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: booking date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrTooLateToBook возвращается, когда не соблюдён minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrConcurrentBooking возвращается, когда параллельная транзакция заняла слот раньше
	ErrConcurrentBooking = errors.New("create_booking: slot was booked concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
