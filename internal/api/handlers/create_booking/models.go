package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	createBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserID          int64   `json:"userId"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	LessonID        int64   `json:"lessonId"`
	WindowID        *string `json:"windowId,omitempty"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Price           int64   `json:"price"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// parseError ошибка разбора поля запроса
type parseError struct {
	field string
	err   error
}

func (e *parseError) Error() string {
	return e.field + ": " + e.err.Error()
}

func (e *parseError) Unwrap() error {
	return e.err
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateBookingRequest) ToUseCaseRequest(lessonID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, &parseError{field: "date", err: err}
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, &parseError{field: "startTime", err: err}
	}

	return &createBooking.Request{
		UserID:          r.UserID,
		LessonID:        lessonID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		LessonID:        resp.LessonID,
		WindowID:        resp.WindowID,
		Start:           resp.Start.Format(time.RFC3339),
		End:             resp.End.Format(time.RFC3339),
		DurationMinutes: int(resp.End.Sub(resp.Start).Minutes()),
		Status:          resp.Status,
		Price:           int64(resp.Price),
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
