package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
)

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	ListByLesson(ctx context.Context, lessonID int64) ([]domain.Window, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListActiveByLesson получает активные бронирования, пересекающиеся с [from, to)
	ListActiveByLesson(ctx context.Context, lessonID int64, from, to *time.Time) ([]*domain.Booking, error)
}

// SettingsRepository интерфейс репозитория настроек занятий
type SettingsRepository interface {
	GetByLesson(ctx context.Context, lessonID int64) (*domain.LessonSettings, error)
}

// LessonServiceClient интерфейс клиента каталога занятий
type LessonServiceClient interface {
	GetPublishedLesson(ctx context.Context, lessonID int64) (*lessonservice.Lesson, error)
}

// Metrics интерфейс учёта решений по слотам
type Metrics interface {
	RecordSlotDecision(operation, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
