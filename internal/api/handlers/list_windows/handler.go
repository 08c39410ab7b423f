package list_windows

import (
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

const msgInvalidLessonID = "некорректный ID занятия"

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

// Handle GET /api/v1/lessons/{lessonId}/windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID, err := handlers.ParsePathID(r, "lessonId")
	if err != nil {
		h.logger.Warn("GET /lessons/{lessonId}/windows - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	result, err := h.service.List(r.Context(), lessonID)
	if err != nil {
		h.logger.Error("GET /lessons/{lessonId}/windows - Failed to get windows: lesson_id=%d, error=%v", lessonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /lessons/{lessonId}/windows - Windows retrieved successfully: lesson_id=%d, count=%d",
		lessonID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
