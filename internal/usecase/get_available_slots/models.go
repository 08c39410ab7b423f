package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	LessonID        int64
	Date            time.Time // дата (без времени)
	DurationMinutes int       // 0 = длительность из настроек занятия
}

// Response модель ответа со списком слотов дня.
// Возвращаются все слоты, которые можно нарезать из окон дня; занятые
// помечены Available=false с причиной.
type Response struct {
	LessonID        int64
	Date            time.Time
	DurationMinutes int
	Slots           []domain.AvailableSlot
}
