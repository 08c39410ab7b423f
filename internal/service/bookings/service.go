package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	lessonClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
)

// MaxUserBookingsLimit максимальный размер страницы истории бронирований
const MaxUserBookingsLimit = 100

// allowedTransitions допустимые переходы статусов, кроме отмены
var allowedTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.StatusPending:   {domain.StatusConfirmed},
	domain.StatusConfirmed: {domain.StatusCompleted},
}

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	lessonClient LessonServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	lessonClient LessonServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		lessonClient: lessonClient,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetLessonBookings получает бронирования занятия, опционально по статусу
func (s *Service) GetLessonBookings(ctx context.Context, req *models.GetLessonBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetLessonBookings: fetching bookings for lesson=%d, status=%v", req.LessonID, req.Status)

	domainStatus, err := parseStatus(req.Status)
	if err != nil {
		s.logger.Warn("GetLessonBookings: invalid status=%s for lesson=%d", *req.Status, req.LessonID)
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByLesson(ctx, req.LessonID, domainStatus)
	if err != nil {
		s.logger.Error("GetLessonBookings: repository error for lesson=%d: %v", req.LessonID, err)
		return nil, fmt.Errorf("%w: GetLessonBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetLessonBookings: successfully fetched %d bookings for lesson=%d", len(bookings), req.LessonID)
	return models.FromDomainBookingList(bookings), nil
}

// GetUserBookings получает историю бронирований пользователя.
// Опционально фильтрует по статусу и периоду [from, to), поддерживает постраничный вывод.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v, from=%v, to=%v, limit=%d, offset=%d",
		req.UserID, req.Status, req.From, req.To, req.Limit, req.Offset)

	domainStatus, err := parseStatus(req.Status)
	if err != nil {
		s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
		return nil, err
	}

	if err := validateUserFilter(req); err != nil {
		s.logger.Warn("GetUserBookings: invalid filter for user=%d: %v", req.UserID, err)
		return nil, err
	}

	filter := bookingRepo.UserFilter{
		Status: domainStatus,
		From:   req.From,
		To:     req.To,
		Limit:  uint64(req.Limit),
		Offset: uint64(req.Offset),
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, req.UserID, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и освобождает его время.
// Ученик отменяет своё бронирование (cancelled_by_user),
// ментор занятия любое бронирование занятия (cancelled_by_mentor).
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}

	// Получаем бронирование
	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены по тому, кто отменяет
	var cancelStatus domain.BookingStatus

	if booking.UserID == req.UserID {
		cancelStatus = domain.StatusCancelledByUser
	} else {
		if err := s.checkMentor(ctx, booking.LessonID, req.UserID); err != nil {
			s.logger.Warn("Cancel: user=%d cannot cancel booking id=%d: %v", req.UserID, bookingID, err)
			return err
		}
		cancelStatus = domain.StatusCancelledByMentor
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только ментору занятия
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Получаем бронирование
	booking, err := s.getBooking(ctx, "UpdateStatus", bookingID)
	if err != nil {
		return err
	}

	// Проверяем права доступа (только ментор занятия)
	if err := s.checkMentor(ctx, booking.LessonID, req.UserID); err != nil {
		s.logger.Warn("UpdateStatus: user=%d cannot update booking id=%d: %v", req.UserID, bookingID, err)
		return err
	}

	if !canTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkMentor проверяет, что пользователь является ментором занятия
func (s *Service) checkMentor(ctx context.Context, lessonID int64, userID int64) error {
	lesson, err := s.lessonClient.GetLesson(ctx, lessonID)
	if err != nil {
		if errors.Is(err, lessonClient.ErrLessonNotFound) {
			return ErrLessonNotFound
		}
		s.logger.Error("checkMentor: failed to get lesson id=%d: %v", lessonID, err)
		return fmt.Errorf("%w: checkMentor - failed to get lesson: %v", ErrInternal, err)
	}

	if lesson.MentorID != userID {
		return ErrAccessDenied
	}

	return nil
}

func validateUserFilter(req *models.GetUserBookingsRequest) error {
	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		return fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}
	if req.Limit < 0 || req.Limit > MaxUserBookingsLimit {
		return fmt.Errorf("%w: limit must be in [0, %d]", ErrInvalidInput, MaxUserBookingsLimit)
	}
	if req.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative", ErrInvalidInput)
	}
	return nil
}

func parseStatus(status *string) (*domain.BookingStatus, error) {
	if status == nil {
		return nil, nil
	}
	s, err := models.ToDomainBookingStatus(*status)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	return &s, nil
}

func canTransition(from, to domain.BookingStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
