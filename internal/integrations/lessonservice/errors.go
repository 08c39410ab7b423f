package lessonservice

import "errors"

var (
	// ErrLessonNotFound возвращается, когда занятие не найдено в каталоге
	ErrLessonNotFound = errors.New("lessonservice client: lesson not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("lessonservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("lessonservice client: invalid response")
)
