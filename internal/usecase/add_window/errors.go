package add_window

import "errors"

var (
	// ErrLessonNotFound возвращается, когда занятие не найдено
	ErrLessonNotFound = errors.New("add_window: lesson not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_window: invalid input data")

	// ErrConcurrentUpdate возвращается, когда окна занятия изменила параллельная транзакция
	ErrConcurrentUpdate = errors.New("add_window: windows were modified concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_window: internal error")
)
