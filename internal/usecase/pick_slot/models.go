package pick_slot

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса выбора слота кликом по шкале дня
type Request struct {
	LessonID        int64
	ClickFraction   float64   // 0.0 = полночь, 1.0 = конец дня
	Date            time.Time // дата (без времени)
	DurationMinutes int       // 0 = длительность из настроек занятия
}

// Response результат выбора.
// Отклонённый слот возвращается вместе с причиной, чтобы клиент мог показать его.
type Response struct {
	LessonID int64
	Slot     domain.CandidateSlot
	Accepted bool
	Reason   domain.RejectReason
	WindowID string
	Price    domain.Money
}
