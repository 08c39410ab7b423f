package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// WindowResponse окно доступности
type WindowResponse struct {
	ID       string    `json:"id"`
	LessonID int64     `json:"lessonId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Price    int64     `json:"price"`
	Capacity int       `json:"capacity"`
}

// WindowListResponse канонический список окон занятия (по возрастанию начала, без пересечений)
type WindowListResponse struct {
	LessonID int64            `json:"lessonId"`
	Windows  []WindowResponse `json:"windows"`
}

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w domain.Window) WindowResponse {
	return WindowResponse{
		ID:       w.ID,
		LessonID: w.LessonID,
		Start:    w.Start,
		End:      w.End,
		Price:    int64(w.Price),
		Capacity: w.Capacity,
	}
}

// FromDomainWindowList конвертирует список окон в DTO
func FromDomainWindowList(lessonID int64, windows []domain.Window) *WindowListResponse {
	resp := &WindowListResponse{
		LessonID: lessonID,
		Windows:  make([]WindowResponse, 0, len(windows)),
	}
	for _, w := range windows {
		resp.Windows = append(resp.Windows, FromDomainWindow(w))
	}
	return resp
}
