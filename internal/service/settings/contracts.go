package settings

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
)

// SettingsRepository интерфейс репозитория настроек занятий
type SettingsRepository interface {
	GetByLesson(ctx context.Context, lessonID int64) (*domain.LessonSettings, error)
	Upsert(ctx context.Context, s *domain.LessonSettings) (*domain.LessonSettings, error)
}

// LessonServiceClient интерфейс клиента каталога занятий
type LessonServiceClient interface {
	GetLesson(ctx context.Context, lessonID int64) (*lessonservice.Lesson, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
