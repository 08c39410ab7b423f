package add_window

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на добавление окна доступности
type Request struct {
	LessonID int64
	Start    time.Time
	End      time.Time
	Price    domain.Money
	Capacity int // 0 = domain.DefaultWindowCapacity
}

// Response модель ответа: канонический набор окон занятия после слияния
type Response struct {
	LessonID int64
	Windows  []domain.Window
}
