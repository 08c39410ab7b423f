package add_window

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
)

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	ListByLesson(ctx context.Context, lessonID int64) ([]domain.Window, error)
	ReplaceForLesson(ctx context.Context, lessonID int64, windows []domain.Window) error
}

// LessonServiceClient интерфейс клиента каталога занятий
type LessonServiceClient interface {
	GetLesson(ctx context.Context, lessonID int64) (*lessonservice.Lesson, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
