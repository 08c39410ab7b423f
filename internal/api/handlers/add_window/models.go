package add_window

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	addWindow "github.com/m04kA/SMC-AvailabilityService/internal/usecase/add_window"
)

// AddWindowRequest HTTP request model
type AddWindowRequest struct {
	Start    time.Time `json:"start"` // RFC3339
	End      time.Time `json:"end"`   // RFC3339
	Price    int64     `json:"price"`
	Capacity int       `json:"capacity,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddWindowRequest) ToUseCaseRequest(lessonID int64) *addWindow.Request {
	return &addWindow.Request{
		LessonID: lessonID,
		Start:    r.Start,
		End:      r.End,
		Price:    domain.Money(r.Price),
		Capacity: r.Capacity,
	}
}
