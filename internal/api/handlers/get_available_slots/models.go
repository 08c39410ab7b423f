package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// SlotResponse слот дня
type SlotResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	WindowID  string `json:"windowId"`
	Price     int64  `json:"price"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	LessonID        int64          `json:"lessonId"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Start:     s.Start.Format(time.RFC3339),
			End:       s.End.Format(time.RFC3339),
			WindowID:  s.WindowID,
			Price:     int64(s.Price),
			Available: s.Available,
			Reason:    string(s.Reason),
		})
	}

	return &AvailableSlotsResponse{
		LessonID:        resp.LessonID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
