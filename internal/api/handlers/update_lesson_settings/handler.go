package update_lesson_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings/models"
)

const (
	msgInvalidLessonID    = "некорректный ID занятия"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgLessonNotFound     = "занятие не найдено"
	msgForbidden          = "доступ запрещен"
	msgInvalidData        = "некорректные данные настроек"
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

// Handle PUT /api/v1/lessons/{lessonId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID, err := handlers.ParsePathID(r, "lessonId")
	if err != nil {
		h.logger.Warn("PUT /lessons/{lessonId}/settings - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /lessons/{lessonId}/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Сервис сам проверит, что настройки меняет ментор занятия
	result, err := h.service.Update(r.Context(), lessonID, &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrLessonNotFound):
			h.logger.Warn("PUT /lessons/{lessonId}/settings - Lesson not found: lesson_id=%d", lessonID)
			handlers.RespondNotFound(w, msgLessonNotFound)

		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("PUT /lessons/{lessonId}/settings - Access denied: lesson_id=%d, user_id=%d", lessonID, req.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /lessons/{lessonId}/settings - Invalid data: lesson_id=%d, error=%v", lessonID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /lessons/{lessonId}/settings - Failed to update settings: lesson_id=%d, error=%v",
				lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /lessons/{lessonId}/settings - Settings updated successfully: lesson_id=%d", lessonID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
