package pick_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	pickSlot "github.com/m04kA/SMC-AvailabilityService/internal/usecase/pick_slot"
)

const (
	msgInvalidLessonID    = "некорректный ID занятия"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingClick       = "не указана позиция клика (clickFraction)"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidClick       = "позиция клика должна быть в диапазоне от 0 до 1"
	msgInvalidDuration    = "недопустимая длительность слота"
	msgLessonNotFound     = "занятие не найдено или не опубликовано"
)

type Handler struct {
	useCase PickSlotUseCase
	logger  Logger
}

func NewHandler(useCase PickSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/lessons/{lessonId}/pick
// Отклонённый слот возвращается со статусом 200 и причиной в поле reason
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID, err := handlers.ParsePathID(r, "lessonId")
	if err != nil {
		h.logger.Warn("POST /lessons/{lessonId}/pick - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	var req PickSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lessons/{lessonId}/pick - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ClickFraction == nil {
		h.logger.Warn("POST /lessons/{lessonId}/pick - Missing click fraction: lesson_id=%d", lessonID)
		handlers.RespondBadRequest(w, msgMissingClick)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(lessonID)
	if err != nil {
		h.logger.Warn("POST /lessons/{lessonId}/pick - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidClick):
			h.logger.Warn("POST /lessons/{lessonId}/pick - Invalid click: %v", err)
			handlers.RespondBadRequest(w, msgInvalidClick)

		case errors.Is(err, domain.ErrInvalidDuration):
			h.logger.Warn("POST /lessons/{lessonId}/pick - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, pickSlot.ErrLessonNotFound):
			h.logger.Warn("POST /lessons/{lessonId}/pick - Lesson not found: lesson_id=%d", lessonID)
			handlers.RespondNotFound(w, msgLessonNotFound)

		case errors.Is(err, pickSlot.ErrInvalidInput):
			h.logger.Warn("POST /lessons/{lessonId}/pick - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /lessons/{lessonId}/pick - Failed to pick slot: lesson_id=%d, error=%v", lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /lessons/{lessonId}/pick - Slot picked: lesson_id=%d, start=%s, accepted=%t, reason=%s",
		lessonID, result.Slot.Start.Format("15:04"), result.Accepted, result.Reason)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
