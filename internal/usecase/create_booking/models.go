package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64
	LessonID        int64
	Date            time.Time        // дата (без времени)
	StartTime       types.TimeString // время начала HH:MM
	DurationMinutes int              // 0 = длительность из настроек занятия
	Notes           *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	UserID    int64
	LessonID  int64
	WindowID  *string
	Start     time.Time
	End       time.Time
	Status    string
	Price     domain.Money
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
