package get_user_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidStatus = "некорректный статус бронирования"
	msgInvalidFilter = "некорректные параметры фильтра (from, to, limit, offset)"
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

// Handle GET /api/v1/users/{userId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	userID, err := handlers.ParsePathID(r, "userId")
	if err != nil {
		h.logger.Warn("GET /users/{userId}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Формируем запрос к сервису (все фильтры опциональны)
	serviceReq, err := parseRequest(r, userID)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/bookings - Invalid filter: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	// Получаем бронирования пользователя
	result, err := h.service.GetUserBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /users/{userId}/bookings - Invalid input: user_id=%d, error=%v", userID, err)
			if serviceReq.Status != nil {
				handlers.RespondBadRequest(w, msgInvalidStatus)
				return
			}
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /users/{userId}/bookings - Failed to get bookings: user_id=%d, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/bookings - Bookings retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}

// parseRequest разбирает query-параметры status, from, to (RFC3339), limit и offset
func parseRequest(r *http.Request, userID int64) (*models.GetUserBookingsRequest, error) {
	req := &models.GetUserBookingsRequest{
		UserID: userID,
		Status: handlers.OptionalQuery(r, "status"),
	}

	var err error
	if req.From, err = parseTimeQuery(r, "from"); err != nil {
		return nil, err
	}
	if req.To, err = parseTimeQuery(r, "to"); err != nil {
		return nil, err
	}
	if req.Limit, err = parseIntQuery(r, "limit"); err != nil {
		return nil, err
	}
	if req.Offset, err = parseIntQuery(r, "offset"); err != nil {
		return nil, err
	}
	return req, nil
}

func parseTimeQuery(r *http.Request, name string) (*time.Time, error) {
	v := handlers.OptionalQuery(r, name)
	if v == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &t, nil
}

func parseIntQuery(r *http.Request, name string) (int, error) {
	v := handlers.OptionalQuery(r, name)
	if v == nil {
		return 0, nil
	}
	n, err := strconv.Atoi(*v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}
