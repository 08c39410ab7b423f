package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	createBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
)

const (
	msgInvalidLessonID    = "некорректный ID занятия"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidDuration    = "недопустимая длительность слота"
	msgSlotConflict       = "выбранный слот пересекается с другим бронированием"
	msgConcurrentBooking  = "слот только что заняли, выберите другое время"
	msgOutOfRange         = "выбранный слот не попадает в окно доступности ментора"
	msgLessonNotFound     = "занятие не найдено"
	msgInvalidBookingDate = "дата бронирования уже прошла"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/lessons/{lessonId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID, err := handlers.ParsePathID(r, "lessonId")
	if err != nil {
		h.logger.Warn("POST /lessons/{lessonId}/bookings - Invalid lesson ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLessonID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lessons/{lessonId}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(lessonID)
	if err != nil {
		h.logger.Warn("POST /lessons/{lessonId}/bookings - Failed to parse request: %v", err)
		var pe *parseError
		if errors.As(err, &pe) && pe.field == "startTime" {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			h.logger.Warn("POST /lessons/{lessonId}/bookings - Slot conflict: user_id=%d, lesson_id=%d", req.UserID, lessonID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrConcurrentBooking):
			h.logger.Warn("POST /lessons/{lessonId}/bookings - Concurrent booking: user_id=%d, lesson_id=%d", req.UserID, lessonID)
			handlers.RespondConflict(w, msgConcurrentBooking)

		case errors.Is(err, domain.ErrOutOfRange):
			h.logger.Warn("POST /lessons/{lessonId}/bookings - Slot out of range: user_id=%d, lesson_id=%d", req.UserID, lessonID)
			handlers.RespondUnprocessable(w, msgOutOfRange)

		case errors.Is(err, createBooking.ErrLessonNotFound):
			h.logger.Warn("POST /lessons/{lessonId}/bookings - Lesson not found: lesson_id=%d", lessonID)
			handlers.RespondNotFound(w, msgLessonNotFound)

		case errors.Is(err, domain.ErrInvalidDuration):
			h.logger.Warn("POST /lessons/{lessonId}/bookings - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /lessons/{lessonId}/bookings - Invalid booking date: user_id=%d, lesson_id=%d", req.UserID, lessonID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /lessons/{lessonId}/bookings - Date too far in future: user_id=%d, lesson_id=%d", req.UserID, lessonID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /lessons/{lessonId}/bookings - Too late to book: user_id=%d, lesson_id=%d", req.UserID, lessonID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /lessons/{lessonId}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /lessons/{lessonId}/bookings - Failed to create booking: user_id=%d, lesson_id=%d, error=%v",
				req.UserID, lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /lessons/{lessonId}/bookings - Booking created successfully: booking_id=%d, user_id=%d, lesson_id=%d",
		result.ID, req.UserID, lessonID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
