package generate_recurring

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на генерацию окон по дням недели
type Request struct {
	LessonID   int64
	Weekdays   []time.Weekday
	RangeStart time.Time // дата, включительно
	RangeEnd   time.Time // дата, включительно
	DailyStart types.TimeString
	DailyEnd   types.TimeString
	Price      domain.Money
	Capacity   int // 0 = domain.DefaultWindowCapacity
}

// Response модель ответа
type Response struct {
	LessonID int64
	Created  []domain.Window // окна, порождённые правилом (до слияния)
	Windows  []domain.Window // канонический набор окон занятия после слияния
}
