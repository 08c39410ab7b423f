package get_lesson_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
)

const (
	msgInvalidLessonID = "некорректный ID занятия"
	msgInvalidStatus   = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/lessons/{lessonId}/bookings
// Query параметры: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID, err := handlers.ParsePathID(r, "lessonId")
	if err != nil {
		h.logger.Warn("GET /lessons/{lessonId}/bookings - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	serviceReq := &models.GetLessonBookingsRequest{
		LessonID: lessonID,
		Status:   handlers.OptionalQuery(r, "status"),
	}

	result, err := h.service.GetLessonBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /lessons/{lessonId}/bookings - Invalid status: lesson_id=%d", lessonID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /lessons/{lessonId}/bookings - Failed to get bookings: lesson_id=%d, error=%v",
			lessonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /lessons/{lessonId}/bookings - Bookings retrieved successfully: lesson_id=%d, count=%d",
		lessonID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
