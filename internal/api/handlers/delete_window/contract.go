package delete_window

import "context"

type WindowService interface {
	Delete(ctx context.Context, lessonID int64, windowID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
