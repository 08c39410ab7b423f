package generate_recurring

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	generateRecurring "github.com/m04kA/SMC-AvailabilityService/internal/usecase/generate_recurring"
)

const (
	msgInvalidLessonID    = "некорректный ID занятия"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRule        = "некорректное правило повторения"
	msgInvalidRange       = "некорректный период или набор дней недели"
	msgInvalidDailyTime   = "время начала должно быть раньше времени окончания"
	msgRangeTooLong       = "слишком длинный период повторения"
	msgInvalidData        = "некорректные данные окна"
	msgLessonNotFound     = "занятие не найдено"
	msgConcurrentUpdate   = "окна занятия изменились, повторите запрос"
)

type Handler struct {
	useCase GenerateRecurringUseCase
	logger  Logger
}

func NewHandler(useCase GenerateRecurringUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/lessons/{lessonId}/windows/recurring
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID, err := handlers.ParsePathID(r, "lessonId")
	if err != nil {
		h.logger.Warn("POST /lessons/{lessonId}/windows/recurring - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	var req GenerateRecurringRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lessons/{lessonId}/windows/recurring - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(lessonID)
	if err != nil {
		h.logger.Warn("POST /lessons/{lessonId}/windows/recurring - Failed to parse rule: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRule)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange):
			h.logger.Warn("POST /lessons/{lessonId}/windows/recurring - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, domain.ErrInvalidWindow):
			h.logger.Warn("POST /lessons/{lessonId}/windows/recurring - Invalid daily time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDailyTime)

		case errors.Is(err, generateRecurring.ErrRangeTooLong):
			h.logger.Warn("POST /lessons/{lessonId}/windows/recurring - Range too long: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, generateRecurring.ErrInvalidInput):
			h.logger.Warn("POST /lessons/{lessonId}/windows/recurring - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, generateRecurring.ErrLessonNotFound):
			h.logger.Warn("POST /lessons/{lessonId}/windows/recurring - Lesson not found: lesson_id=%d", lessonID)
			handlers.RespondNotFound(w, msgLessonNotFound)

		case errors.Is(err, generateRecurring.ErrConcurrentUpdate):
			h.logger.Warn("POST /lessons/{lessonId}/windows/recurring - Concurrent update: lesson_id=%d", lessonID)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("POST /lessons/{lessonId}/windows/recurring - Failed to generate windows: lesson_id=%d, error=%v",
				lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /lessons/{lessonId}/windows/recurring - Windows generated: lesson_id=%d, created=%d, total=%d",
		lessonID, len(result.Created), len(result.Windows))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
