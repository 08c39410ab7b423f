package pick_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	lessonClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
)

const metricsOperation = "pick"

// UseCase use case выбора слота кликом по шкале дня
type UseCase struct {
	windowRepo   WindowRepository
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	lessonClient LessonServiceClient
	metrics      Metrics
	limits       domain.EngineLimits
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	windowRepo WindowRepository,
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	lessonClient LessonServiceClient,
	metrics Metrics,
	limits domain.EngineLimits,
	logger Logger,
) *UseCase {
	return &UseCase{
		windowRepo:   windowRepo,
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		lessonClient: lessonClient,
		metrics:      metrics,
		limits:       limits,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case выбора слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PickSlot: lesson=%d, date=%s, click=%.4f, duration=%d",
		req.LessonID, req.Date.Format(domain.DateFormat), req.ClickFraction, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PickSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что занятие опубликовано
	if _, err := uc.lessonClient.GetPublishedLesson(ctx, req.LessonID); err != nil {
		if errors.Is(err, lessonClient.ErrLessonNotFound) {
			uc.logger.Warn("PickSlot: lesson id=%d not found", req.LessonID)
			return nil, ErrLessonNotFound
		}
		uc.logger.Error("PickSlot: failed to get lesson id=%d: %v", req.LessonID, err)
		return nil, fmt.Errorf("%w: failed to get lesson: %v", ErrInternal, err)
	}

	// 3. Получаем настройки занятия
	settings, err := uc.settingsRepo.GetByLesson(ctx, req.LessonID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("PickSlot: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultLessonSettings(req.LessonID, uc.limits)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = settings.SlotDurationMinutes
	}
	if !uc.limits.DurationAllowed(duration) {
		err := fmt.Errorf("%w: %d minutes, allowed %d..%d", domain.ErrInvalidDuration,
			duration, uc.limits.MinDurationMinutes, uc.limits.MaxDurationMinutes)
		uc.logger.Warn("PickSlot: %v", err)
		return nil, err
	}

	// 4. Загружаем окна и бронирования дня
	windows, err := uc.windowRepo.ListByLesson(ctx, req.LessonID)
	if err != nil {
		uc.logger.Error("PickSlot: failed to list windows: %v", err)
		return nil, fmt.Errorf("%w: failed to list windows: %v", ErrInternal, err)
	}

	set, err := availability.NewCanonicalSet(windows...)
	if err != nil {
		uc.logger.Error("PickSlot: stored windows of lesson=%d are invalid: %v", req.LessonID, err)
		return nil, fmt.Errorf("%w: stored windows are invalid: %v", ErrInternal, err)
	}

	// слот может заканчиваться уже на следующий день
	y, m, d := req.Date.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1).Add(time.Duration(duration) * time.Minute)
	bookings, err := uc.bookingRepo.ListActiveByLesson(ctx, req.LessonID, &from, &to)
	if err != nil {
		uc.logger.Error("PickSlot: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Переводим клик в слот и проверяем его
	picker := availability.NewPicker(settings.PickGranularityMinutes)
	slot, err := picker.PickFromClick(req.ClickFraction, from, duration, set, domain.ActiveSlots(bookings))
	if err != nil && domain.IsCallerBug(err) {
		uc.logger.Warn("PickSlot: %v", err)
		return nil, err
	}

	response := &Response{
		LessonID: req.LessonID,
		Slot:     slot,
		Accepted: err == nil,
		Reason:   domain.ReasonOf(err),
	}

	if response.Accepted {
		w, _ := set.Find(slot.Interval)
		response.WindowID = w.ID
		response.Price = w.Price

		if slot.Start.Before(settings.EarliestStart(uc.timeProvider.Now())) {
			response.Accepted = false
			response.Reason = domain.ReasonTooSoon
		}
	}

	result := "accept"
	if !response.Accepted {
		result = string(response.Reason)
	}
	uc.metrics.RecordSlotDecision(metricsOperation, result)

	uc.logger.Info("PickSlot: lesson=%d, slot=%s-%s, result=%s", req.LessonID,
		slot.Start.Format(domain.TimeFormat), slot.End.Format(domain.TimeFormat), result)

	return response, nil
}
