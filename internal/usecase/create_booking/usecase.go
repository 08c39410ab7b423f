package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	lessonClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

const metricsOperation = "book"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	windowRepo   WindowRepository
	settingsRepo SettingsRepository
	lessonClient LessonServiceClient
	txManager    TransactionManager
	metrics      Metrics
	limits       domain.EngineLimits
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	windowRepo WindowRepository,
	settingsRepo SettingsRepository,
	lessonClient LessonServiceClient,
	txManager TransactionManager,
	metrics Metrics,
	limits domain.EngineLimits,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		windowRepo:   windowRepo,
		settingsRepo: settingsRepo,
		lessonClient: lessonClient,
		txManager:    txManager,
		metrics:      metrics,
		limits:       limits,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка слота и запись выполняются в одной сериализуемой транзакции,
// поэтому два параллельных запроса не могут занять пересекающиеся слоты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, lesson=%d, date=%s, time=%s, duration=%d",
		req.UserID, req.LessonID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().UTC()

	// 3. Проверяем, что занятие опубликовано
	if _, err := uc.lessonClient.GetPublishedLesson(ctx, req.LessonID); err != nil {
		if errors.Is(err, lessonClient.ErrLessonNotFound) {
			uc.logger.Warn("CreateBooking: lesson id=%d not found", req.LessonID)
			return nil, ErrLessonNotFound
		}
		uc.logger.Error("CreateBooking: failed to get lesson id=%d: %v", req.LessonID, err)
		return nil, fmt.Errorf("%w: failed to get lesson: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем настройки занятия
		settings, err := uc.settingsRepo.GetByLesson(txCtx, req.LessonID)
		if err != nil {
			if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
				uc.logger.Error("CreateBooking: failed to get settings: %v", err)
				return fmt.Errorf("%w: failed to get settings: %w", ErrInternal, err)
			}
			settings = domain.DefaultLessonSettings(req.LessonID, uc.limits)
			uc.logger.Info("CreateBooking: using default settings for lesson=%d", req.LessonID)
		}

		duration := req.DurationMinutes
		if duration == 0 {
			duration = settings.SlotDurationMinutes
		}
		if err := validateDuration(duration, uc.limits); err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return err
		}

		// 4.2. Валидация даты с учетом настроек
		if err := validateDate(req.Date, now, settings); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		candidate := domain.NewCandidateSlot(req.StartTime.On(dateOnly(req.Date)), duration)

		// 4.3. Валидация времени бронирования (minBookingNoticeMinutes)
		if err := validateBookingTime(candidate.Start, now, settings); err != nil {
			uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
			return err
		}

		// 4.4. Загружаем окна занятия
		windows, err := uc.windowRepo.ListByLesson(txCtx, req.LessonID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list windows: %v", err)
			return fmt.Errorf("%w: failed to list windows: %w", ErrInternal, err)
		}

		set, err := availability.NewCanonicalSet(windows...)
		if err != nil {
			uc.logger.Error("CreateBooking: stored windows of lesson=%d are invalid: %v", req.LessonID, err)
			return fmt.Errorf("%w: stored windows are invalid: %v", ErrInternal, err)
		}

		// 4.5. Получаем пересекающиеся активные бронирования с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListActiveByLesson(txCtx, req.LessonID, &candidate.Start, &candidate.End)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 4.6. Проверяем слот
		if err := availability.Validate(candidate, set, domain.ActiveSlots(bookings)); err != nil {
			uc.logger.Warn("CreateBooking: slot %s-%s rejected: %v", candidate.Start.Format(time.RFC3339),
				candidate.End.Format(time.RFC3339), err)
			uc.metrics.RecordSlotDecision(metricsOperation, string(domain.ReasonOf(err)))
			return err
		}

		window, _ := set.Find(candidate.Interval)

		// 4.7. Создаем бронирование с ценой окна
		booking := &domain.Booking{
			LessonID: req.LessonID,
			UserID:   req.UserID,
			Interval: candidate.Interval,
			Status:   domain.StatusConfirmed,
			Price:    window.Price,
			Notes:    req.Notes,
		}
		if window.ID != "" {
			booking.WindowID = &window.ID
		}

		// 4.8. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serialization failure for lesson=%d: %v", req.LessonID, err)
			uc.metrics.RecordSlotDecision(metricsOperation, string(domain.ReasonConflict))
			return nil, fmt.Errorf("%w: %v", ErrConcurrentBooking, err)
		}
		return nil, err
	}

	uc.metrics.RecordSlotDecision(metricsOperation, "accept")
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		LessonID:  result.LessonID,
		WindowID:  result.WindowID,
		Start:     result.Start,
		End:       result.End,
		Status:    string(result.Status),
		Price:     result.Price,
		Notes:     result.Notes,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
