package get_lesson_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings"
)

const (
	msgInvalidLessonID = "некорректный ID занятия"
	msgLessonNotFound  = "занятие не найдено"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/lessons/{lessonId}/settings
// Если настройки не сохранялись, возвращаются значения по умолчанию (isDefault=true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID, err := handlers.ParsePathID(r, "lessonId")
	if err != nil {
		h.logger.Warn("GET /lessons/{lessonId}/settings - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	result, err := h.service.Get(r.Context(), lessonID)
	if err != nil {
		if errors.Is(err, settings.ErrLessonNotFound) {
			h.logger.Warn("GET /lessons/{lessonId}/settings - Lesson not found: lesson_id=%d", lessonID)
			handlers.RespondNotFound(w, msgLessonNotFound)
			return
		}
		h.logger.Error("GET /lessons/{lessonId}/settings - Failed to get settings: lesson_id=%d, error=%v", lessonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /lessons/{lessonId}/settings - Settings retrieved successfully: lesson_id=%d, is_default=%t",
		lessonID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
