package add_window

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	lessonClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

// UseCase use case добавления окна доступности к занятию
type UseCase struct {
	windowRepo   WindowRepository
	lessonClient LessonServiceClient
	txManager    TransactionManager
	newID        func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	windowRepo WindowRepository,
	lessonClient LessonServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		windowRepo:   windowRepo,
		lessonClient: lessonClient,
		txManager:    txManager,
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Execute добавляет окно и сохраняет слитый набор окон занятия.
// Чтение, слияние и запись выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddWindow: lesson=%d, start=%s, end=%s, price=%d, capacity=%d",
		req.LessonID, req.Start.Format(timeLayout), req.End.Format(timeLayout), req.Price, req.Capacity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddWindow: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что занятие существует
	if _, err := uc.lessonClient.GetLesson(ctx, req.LessonID); err != nil {
		if errors.Is(err, lessonClient.ErrLessonNotFound) {
			uc.logger.Warn("AddWindow: lesson id=%d not found", req.LessonID)
			return nil, ErrLessonNotFound
		}
		uc.logger.Error("AddWindow: failed to get lesson id=%d: %v", req.LessonID, err)
		return nil, fmt.Errorf("%w: failed to get lesson: %v", ErrInternal, err)
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = domain.DefaultWindowCapacity
	}

	window := domain.Window{
		ID:       uc.newID(),
		LessonID: req.LessonID,
		Interval: domain.Interval{Start: req.Start.UTC(), End: req.End.UTC()},
		Price:    req.Price,
		Capacity: capacity,
	}

	var result availability.CanonicalSet

	// 3. Сливаем окно с сохранёнными в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем текущие окна с блокировкой
		existing, err := uc.windowRepo.ListByLesson(txCtx, req.LessonID)
		if err != nil {
			uc.logger.Error("AddWindow: failed to list windows: %v", err)
			return fmt.Errorf("%w: failed to list windows: %w", ErrInternal, err)
		}

		set, err := availability.NewCanonicalSet(existing...)
		if err != nil {
			uc.logger.Error("AddWindow: stored windows of lesson=%d are invalid: %v", req.LessonID, err)
			return fmt.Errorf("%w: stored windows are invalid: %v", ErrInternal, err)
		}

		// 3.2. Сливаем
		merged, err := availability.Insert(set, window)
		if err != nil {
			uc.logger.Warn("AddWindow: merge rejected: %v", err)
			return err
		}

		// 3.3. Сохраняем канонический набор
		if err := uc.windowRepo.ReplaceForLesson(txCtx, req.LessonID, merged.Windows()); err != nil {
			uc.logger.Error("AddWindow: failed to save windows: %v", err)
			return fmt.Errorf("%w: failed to save windows: %w", ErrInternal, err)
		}

		result = merged
		return nil
	})

	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("AddWindow: serialization failure for lesson=%d: %v", req.LessonID, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		}
		return nil, err
	}

	uc.logger.Info("AddWindow: lesson=%d now has %d windows", req.LessonID, result.Len())

	return &Response{
		LessonID: req.LessonID,
		Windows:  result.Windows(),
	}, nil
}
