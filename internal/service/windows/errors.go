package windows

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно не найдено
	ErrWindowNotFound = errors.New("window not found")

	// ErrWindowHasBookings возвращается при удалении окна с активными бронированиями
	ErrWindowHasBookings = errors.New("window has active bookings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
