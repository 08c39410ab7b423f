package bookings

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByLesson(ctx context.Context, lessonID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, filter bookingRepo.UserFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error
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
