package delete_window

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/windows"
)

const (
	msgInvalidLessonID  = "некорректный ID занятия"
	msgInvalidWindowID  = "некорректный ID окна"
	msgWindowNotFound   = "окно не найдено"
	msgWindowHasBooking = "в окне есть активные бронирования"
)

type Handler struct {
	service WindowService
	logger  Logger
}

func NewHandler(service WindowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/lessons/{lessonId}/windows/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID, err := handlers.ParsePathID(r, "lessonId")
	if err != nil {
		h.logger.Warn("DELETE /lessons/{lessonId}/windows/{windowId} - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	windowID := mux.Vars(r)["windowId"]
	if _, err := uuid.Parse(windowID); err != nil {
		h.logger.Warn("DELETE /lessons/{lessonId}/windows/{windowId} - Invalid window ID %q: %v", windowID, err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	if err := h.service.Delete(r.Context(), lessonID, windowID); err != nil {
		switch {
		case errors.Is(err, windows.ErrWindowNotFound):
			h.logger.Warn("DELETE /lessons/{lessonId}/windows/{windowId} - Window not found: lesson_id=%d, window_id=%s",
				lessonID, windowID)
			handlers.RespondNotFound(w, msgWindowNotFound)

		case errors.Is(err, windows.ErrWindowHasBookings):
			h.logger.Warn("DELETE /lessons/{lessonId}/windows/{windowId} - Window has bookings: lesson_id=%d, window_id=%s",
				lessonID, windowID)
			handlers.RespondConflict(w, msgWindowHasBooking)

		default:
			h.logger.Error("DELETE /lessons/{lessonId}/windows/{windowId} - Failed to delete window: window_id=%s, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /lessons/{lessonId}/windows/{windowId} - Window deleted: lesson_id=%d, window_id=%s",
		lessonID, windowID)
	w.WriteHeader(http.StatusNoContent)
}
