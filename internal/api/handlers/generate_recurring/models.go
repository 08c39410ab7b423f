package generate_recurring

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/windows/models"
	generateRecurring "github.com/m04kA/SMC-AvailabilityService/internal/usecase/generate_recurring"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// GenerateRecurringRequest HTTP request model
type GenerateRecurringRequest struct {
	Weekdays   []int  `json:"weekdays"`   // 0 = воскресенье, 6 = суббота
	RangeStart string `json:"rangeStart"` // "2025-10-01"
	RangeEnd   string `json:"rangeEnd"`   // "2025-10-31"
	DailyStart string `json:"dailyStart"` // "09:00"
	DailyEnd   string `json:"dailyEnd"`   // "12:00"
	Price      int64  `json:"price"`
	Capacity   int    `json:"capacity,omitempty"`
}

// GenerateRecurringResponse HTTP response model
type GenerateRecurringResponse struct {
	LessonID int64                   `json:"lessonId"`
	Created  []models.WindowResponse `json:"created"`
	Windows  []models.WindowResponse `json:"windows"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат и времени)
func (r *GenerateRecurringRequest) ToUseCaseRequest(lessonID int64) (*generateRecurring.Request, error) {
	weekdays := make([]time.Weekday, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		if d < int(time.Sunday) || d > int(time.Saturday) {
			return nil, fmt.Errorf("weekday %d out of range 0..6", d)
		}
		weekdays = append(weekdays, time.Weekday(d))
	}

	rangeStart, err := time.Parse(domain.DateFormat, r.RangeStart)
	if err != nil {
		return nil, fmt.Errorf("rangeStart: %w", err)
	}
	rangeEnd, err := time.Parse(domain.DateFormat, r.RangeEnd)
	if err != nil {
		return nil, fmt.Errorf("rangeEnd: %w", err)
	}

	dailyStart, err := types.NewTimeStringFromString(r.DailyStart)
	if err != nil {
		return nil, fmt.Errorf("dailyStart: %w", err)
	}
	dailyEnd, err := types.NewTimeStringFromString(r.DailyEnd)
	if err != nil {
		return nil, fmt.Errorf("dailyEnd: %w", err)
	}

	return &generateRecurring.Request{
		LessonID:   lessonID,
		Weekdays:   weekdays,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		DailyStart: dailyStart,
		DailyEnd:   dailyEnd,
		Price:      domain.Money(r.Price),
		Capacity:   r.Capacity,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateRecurring.Response) *GenerateRecurringResponse {
	return &GenerateRecurringResponse{
		LessonID: resp.LessonID,
		Created:  models.FromDomainWindowList(resp.LessonID, resp.Created).Windows,
		Windows:  models.FromDomainWindowList(resp.LessonID, resp.Windows).Windows,
	}
}
