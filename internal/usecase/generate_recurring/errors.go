package generate_recurring

import "errors"

var (
	// ErrLessonNotFound возвращается, когда занятие не найдено
	ErrLessonNotFound = errors.New("generate_recurring: lesson not found")

	// ErrRangeTooLong возвращается, когда период правила длиннее допустимого
	ErrRangeTooLong = errors.New("generate_recurring: date range is too long")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_recurring: invalid input data")

	// ErrConcurrentUpdate возвращается, когда окна занятия изменила параллельная транзакция
	ErrConcurrentUpdate = errors.New("generate_recurring: windows were modified concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_recurring: internal error")
)
