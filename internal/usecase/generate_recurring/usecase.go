package generate_recurring

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

// UseCase use case генерации окон доступности по правилу "дни недели + период"
type UseCase struct {
	windowRepo   WindowRepository
	lessonClient LessonServiceClient
	txManager    TransactionManager
	limits       domain.EngineLimits
	newID        func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	windowRepo WindowRepository,
	lessonClient LessonServiceClient,
	txManager TransactionManager,
	limits domain.EngineLimits,
	logger Logger,
) *UseCase {
	return &UseCase{
		windowRepo:   windowRepo,
		lessonClient: lessonClient,
		txManager:    txManager,
		limits:       limits,
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Execute разворачивает правило в окна, пропуская уже существующие,
// сливает их с сохранёнными окнами и сохраняет результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateRecurring: lesson=%d, weekdays=%v, range=%s..%s, daily=%s-%s",
		req.LessonID, req.Weekdays, req.RangeStart.Format(domain.DateFormat), req.RangeEnd.Format(domain.DateFormat),
		req.DailyStart, req.DailyEnd)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.limits); err != nil {
		uc.logger.Warn("GenerateRecurring: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что занятие существует
	if _, err := uc.lessonClient.GetLesson(ctx, req.LessonID); err != nil {
		if errors.Is(err, lessonClient.ErrLessonNotFound) {
			uc.logger.Warn("GenerateRecurring: lesson id=%d not found", req.LessonID)
			return nil, ErrLessonNotFound
		}
		uc.logger.Error("GenerateRecurring: failed to get lesson id=%d: %v", req.LessonID, err)
		return nil, fmt.Errorf("%w: failed to get lesson: %v", ErrInternal, err)
	}

	rule := toRule(req)

	var (
		created []domain.Window
		result  availability.CanonicalSet
	)

	// 3. Разворачиваем и сливаем в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем текущие окна с блокировкой
		existing, err := uc.windowRepo.ListByLesson(txCtx, req.LessonID)
		if err != nil {
			uc.logger.Error("GenerateRecurring: failed to list windows: %v", err)
			return fmt.Errorf("%w: failed to list windows: %w", ErrInternal, err)
		}

		set, err := availability.NewCanonicalSet(existing...)
		if err != nil {
			uc.logger.Error("GenerateRecurring: stored windows of lesson=%d are invalid: %v", req.LessonID, err)
			return fmt.Errorf("%w: stored windows are invalid: %v", ErrInternal, err)
		}

		// 3.2. Разворачиваем правило (дубли по началу пропускаются)
		windows, err := availability.Expand(rule, set)
		if err != nil {
			uc.logger.Warn("GenerateRecurring: rule rejected: %v", err)
			return err
		}

		if len(windows) == 0 {
			uc.logger.Info("GenerateRecurring: rule produced no new windows for lesson=%d", req.LessonID)
			created, result = windows, set
			return nil
		}

		for i := range windows {
			windows[i].ID = uc.newID()
		}

		// 3.3. Сливаем с существующими
		merged, err := availability.InsertAll(set, windows...)
		if err != nil {
			uc.logger.Error("GenerateRecurring: merge failed: %v", err)
			return fmt.Errorf("%w: merge failed: %v", ErrInternal, err)
		}

		// 3.4. Сохраняем канонический набор
		if err := uc.windowRepo.ReplaceForLesson(txCtx, req.LessonID, merged.Windows()); err != nil {
			uc.logger.Error("GenerateRecurring: failed to save windows: %v", err)
			return fmt.Errorf("%w: failed to save windows: %w", ErrInternal, err)
		}

		created, result = windows, merged
		return nil
	})

	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("GenerateRecurring: serialization failure for lesson=%d: %v", req.LessonID, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
		}
		return nil, err
	}

	uc.logger.Info("GenerateRecurring: lesson=%d, created=%d, total=%d", req.LessonID, len(created), result.Len())

	return &Response{
		LessonID: req.LessonID,
		Created:  created,
		Windows:  result.Windows(),
	}, nil
}
