package add_window

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/windows/models"
	addWindow "github.com/m04kA/SMC-AvailabilityService/internal/usecase/add_window"
)

const (
	msgInvalidLessonID    = "некорректный ID занятия"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWindow      = "начало окна должно быть раньше конца"
	msgInvalidData        = "некорректные данные окна"
	msgLessonNotFound     = "занятие не найдено"
	msgConcurrentUpdate   = "окна занятия изменились, повторите запрос"
)

type Handler struct {
	useCase AddWindowUseCase
	logger  Logger
}

func NewHandler(useCase AddWindowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/lessons/{lessonId}/windows
// Возвращает набор окон занятия после слияния
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID, err := handlers.ParsePathID(r, "lessonId")
	if err != nil {
		h.logger.Warn("POST /lessons/{lessonId}/windows - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	var req AddWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lessons/{lessonId}/windows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(lessonID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidWindow):
			h.logger.Warn("POST /lessons/{lessonId}/windows - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, addWindow.ErrInvalidInput):
			h.logger.Warn("POST /lessons/{lessonId}/windows - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, addWindow.ErrLessonNotFound):
			h.logger.Warn("POST /lessons/{lessonId}/windows - Lesson not found: lesson_id=%d", lessonID)
			handlers.RespondNotFound(w, msgLessonNotFound)

		case errors.Is(err, addWindow.ErrConcurrentUpdate):
			h.logger.Warn("POST /lessons/{lessonId}/windows - Concurrent update: lesson_id=%d", lessonID)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("POST /lessons/{lessonId}/windows - Failed to add window: lesson_id=%d, error=%v", lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /lessons/{lessonId}/windows - Window added: lesson_id=%d, total=%d", lessonID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainWindowList(result.LessonID, result.Windows))
}
