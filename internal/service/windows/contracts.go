package windows

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	ListByLesson(ctx context.Context, lessonID int64) ([]domain.Window, error)
	DeleteByID(ctx context.Context, lessonID int64, windowID string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActiveByLesson(ctx context.Context, lessonID int64, from, to *time.Time) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
