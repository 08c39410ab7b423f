package windows

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	windowRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/window"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/windows/models"
)

// Service сервис для просмотра и удаления окон доступности.
// Добавление окон идёт через usecase add_window и generate_recurring.
type Service struct {
	windowRepo  WindowRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса окон
func NewService(
	windowRepo WindowRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		windowRepo:  windowRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// List получает канонический набор окон занятия
func (s *Service) List(ctx context.Context, lessonID int64) (*models.WindowListResponse, error) {
	s.logger.Info("List: fetching windows for lesson=%d", lessonID)

	var set availability.CanonicalSet
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		windows, err := s.windowRepo.ListByLesson(txCtx, lessonID)
		if err != nil {
			s.logger.Error("List: repository error for lesson=%d: %v", lessonID, err)
			return fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}

		// Хранимые окна уже каноничны; проход через набор отсекает повреждённые данные
		set, err = availability.NewCanonicalSet(windows...)
		if err != nil {
			s.logger.Error("List: stored windows of lesson=%d are invalid: %v", lessonID, err)
			return fmt.Errorf("%w: List - stored windows are invalid: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: successfully fetched %d windows for lesson=%d", set.Len(), lessonID)
	return models.FromDomainWindowList(lessonID, set.Windows()), nil
}

// Delete удаляет окно занятия.
// Окно, в котором есть активные бронирования, удалить нельзя.
func (s *Service) Delete(ctx context.Context, lessonID int64, windowID string) error {
	s.logger.Info("Delete: deleting window id=%s of lesson=%d", windowID, lessonID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Находим окно
		windows, err := s.windowRepo.ListByLesson(txCtx, lessonID)
		if err != nil {
			s.logger.Error("Delete: repository error for lesson=%d: %v", lessonID, err)
			return fmt.Errorf("%w: Delete - list windows: %v", ErrInternal, err)
		}

		set, err := availability.NewCanonicalSet(windows...)
		if err != nil {
			s.logger.Error("Delete: stored windows of lesson=%d are invalid: %v", lessonID, err)
			return fmt.Errorf("%w: Delete - stored windows are invalid: %v", ErrInternal, err)
		}

		rest, target, ok := set.Without(windowID)
		if !ok {
			s.logger.Warn("Delete: window id=%s not found in lesson=%d", windowID, lessonID)
			return ErrWindowNotFound
		}

		// 2. Проверяем бронирования внутри окна
		bookings, err := s.bookingRepo.ListActiveByLesson(txCtx, lessonID, &target.Start, &target.End)
		if err != nil {
			s.logger.Error("Delete: failed to get bookings for lesson=%d: %v", lessonID, err)
			return fmt.Errorf("%w: Delete - list bookings: %v", ErrInternal, err)
		}
		if len(bookings) > 0 {
			s.logger.Warn("Delete: window id=%s has %d active bookings", windowID, len(bookings))
			return fmt.Errorf("%w: %d active bookings", ErrWindowHasBookings, len(bookings))
		}

		// 3. Удаляем
		if err := s.windowRepo.DeleteByID(txCtx, lessonID, windowID); err != nil {
			if errors.Is(err, windowRepo.ErrWindowNotFound) {
				return ErrWindowNotFound
			}
			s.logger.Error("Delete: repository error for window id=%s: %v", windowID, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("Delete: lesson=%d keeps %d windows", lessonID, rest.Len())
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted window id=%s of lesson=%d", windowID, lessonID)
	return nil
}
