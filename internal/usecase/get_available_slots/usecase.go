package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	lessonClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
)

const metricsOperation = "available_slots"

// UseCase use case получения слотов занятия на дату
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
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: lesson=%d, date=%s, duration=%d",
		req.LessonID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что занятие опубликовано
	if _, err := uc.lessonClient.GetPublishedLesson(ctx, req.LessonID); err != nil {
		if errors.Is(err, lessonClient.ErrLessonNotFound) {
			uc.logger.Warn("GetAvailableSlots: lesson id=%d not found", req.LessonID)
			return nil, ErrLessonNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get lesson id=%d: %v", req.LessonID, err)
		return nil, fmt.Errorf("%w: failed to get lesson: %v", ErrInternal, err)
	}

	// 4. Получаем настройки занятия
	settings, err := uc.settingsRepo.GetByLesson(ctx, req.LessonID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultLessonSettings(req.LessonID, uc.limits)
		uc.logger.Info("GetAvailableSlots: using default settings for lesson=%d", req.LessonID)
	}

	// 5. Определяем длительность слота
	duration := req.DurationMinutes
	if duration == 0 {
		duration = settings.SlotDurationMinutes
	}
	if err := validateDuration(duration, uc.limits); err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	response := &Response{
		LessonID:        req.LessonID,
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           []domain.AvailableSlot{},
	}

	// 6. Прошедшая дата: слотов нет
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 7. Ограничение на бронирование заранее
	if latest := settings.LatestDate(now.UTC()); !latest.IsZero() {
		dayStart, _ := dayBounds(req.Date)
		if dayStart.After(latest) {
			uc.logger.Warn("GetAvailableSlots: date %s is beyond %d days", req.Date.Format(domain.DateFormat), settings.AdvanceBookingDays)
			return nil, fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, settings.AdvanceBookingDays)
		}
	}

	// 8. Получаем окна занятия
	windows, err := uc.windowRepo.ListByLesson(ctx, req.LessonID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list windows: %v", err)
		return nil, fmt.Errorf("%w: failed to list windows: %v", ErrInternal, err)
	}

	set, err := availability.NewCanonicalSet(windows...)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: stored windows of lesson=%d are invalid: %v", req.LessonID, err)
		return nil, fmt.Errorf("%w: stored windows are invalid: %v", ErrInternal, err)
	}

	dayWindows := set.OnDay(req.Date)
	if len(dayWindows) == 0 {
		uc.logger.Info("GetAvailableSlots: no windows on %s", req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 9. Получаем бронирования, пересекающиеся с окнами дня
	from := dayWindows[0].Start
	to := dayWindows[len(dayWindows)-1].End
	bookings, err := uc.bookingRepo.ListActiveByLesson(ctx, req.LessonID, &from, &to)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 10. Нарезаем и проверяем слоты
	response.Slots = buildSlots(set, req.Date, duration, domain.ActiveSlots(bookings), settings.EarliestStart(now))

	available := 0
	for _, slot := range response.Slots {
		uc.metrics.RecordSlotDecision(metricsOperation, decision(slot))
		if slot.Available {
			available++
		}
	}

	uc.logger.Info("GetAvailableSlots: lesson=%d, date=%s, slots=%d, available=%d",
		req.LessonID, req.Date.Format(domain.DateFormat), len(response.Slots), available)

	return response, nil
}
