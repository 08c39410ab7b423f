package pick_slot

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	pickSlot "github.com/m04kA/SMC-AvailabilityService/internal/usecase/pick_slot"
)

// PickSlotRequest HTTP request model
type PickSlotRequest struct {
	Date            string   `json:"date"`          // "2025-10-15"
	ClickFraction   *float64 `json:"clickFraction"` // позиция клика на шкале дня, 0..1
	DurationMinutes int      `json:"durationMinutes,omitempty"`
}

// PickSlotResponse HTTP response model
type PickSlotResponse struct {
	LessonID int64  `json:"lessonId"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	WindowID string `json:"windowId,omitempty"`
	Price    int64  `json:"price,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PickSlotRequest) ToUseCaseRequest(lessonID int64) (*pickSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &pickSlot.Request{
		LessonID:        lessonID,
		ClickFraction:   *r.ClickFraction,
		Date:            date,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *pickSlot.Response) *PickSlotResponse {
	return &PickSlotResponse{
		LessonID: resp.LessonID,
		Start:    resp.Slot.Start.Format(time.RFC3339),
		End:      resp.Slot.End.Format(time.RFC3339),
		Accepted: resp.Accepted,
		Reason:   string(resp.Reason),
		WindowID: resp.WindowID,
		Price:    int64(resp.Price),
	}
}
