package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	lessonClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings/models"
)

// Service сервис для работы с настройками бронирования занятий
type Service struct {
	settingsRepo SettingsRepository
	lessonClient LessonServiceClient
	limits       domain.EngineLimits
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	lessonClient LessonServiceClient,
	limits domain.EngineLimits,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		lessonClient: lessonClient,
		limits:       limits,
		logger:       logger,
	}
}

// Get получает настройки занятия.
// Если настройки не сохранены, возвращает значения по умолчанию с IsDefault=true.
func (s *Service) Get(ctx context.Context, lessonID int64) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for lesson=%d", lessonID)

	if _, err := s.getLesson(ctx, "Get", lessonID); err != nil {
		return nil, err
	}

	settings, isDefault, err := s.load(ctx, "Get", lessonID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Get: successfully fetched settings for lesson=%d, default=%t", lessonID, isDefault)
	return models.FromDomainSettings(settings, isDefault), nil
}

// Update обновляет настройки занятия
// Доступно только ментору занятия; непереданные поля сохраняют текущие значения
func (s *Service) Update(ctx context.Context, lessonID int64, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for lesson=%d by user=%d", lessonID, req.UserID)

	// 1. Проверяем, что есть что обновлять
	if req.IsEmpty() {
		s.logger.Warn("Update: no fields to update for lesson=%d", lessonID)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	// 2. Получаем занятие и проверяем права доступа
	lesson, err := s.getLesson(ctx, "Update", lessonID)
	if err != nil {
		return nil, err
	}
	if lesson.MentorID != req.UserID {
		s.logger.Warn("Update: user=%d is not the mentor of lesson=%d", req.UserID, lessonID)
		return nil, ErrAccessDenied
	}

	// 3. Накладываем изменения на текущие настройки
	settings, _, err := s.load(ctx, "Update", lessonID)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(settings)

	// 4. Валидируем результат
	if err := validateSettings(settings, s.limits); err != nil {
		s.logger.Warn("Update: validation failed for lesson=%d: %v", lessonID, err)
		return nil, err
	}

	// 5. Сохраняем
	saved, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("Update: repository error for lesson=%d: %v", lessonID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated settings for lesson=%d", lessonID)
	return models.FromDomainSettings(saved, false), nil
}

func (s *Service) getLesson(ctx context.Context, op string, lessonID int64) (*lessonClient.Lesson, error) {
	lesson, err := s.lessonClient.GetLesson(ctx, lessonID)
	if err != nil {
		if errors.Is(err, lessonClient.ErrLessonNotFound) {
			s.logger.Warn("%s: lesson id=%d not found", op, lessonID)
			return nil, ErrLessonNotFound
		}
		s.logger.Error("%s: failed to get lesson id=%d: %v", op, lessonID, err)
		return nil, fmt.Errorf("%w: %s - failed to get lesson: %v", ErrInternal, op, err)
	}
	return lesson, nil
}

func (s *Service) load(ctx context.Context, op string, lessonID int64) (*domain.LessonSettings, bool, error) {
	settings, err := s.settingsRepo.GetByLesson(ctx, lessonID)
	if err == nil {
		return settings, false, nil
	}
	if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		return domain.DefaultLessonSettings(lessonID, s.limits), true, nil
	}
	s.logger.Error("%s: repository error for lesson=%d: %v", op, lessonID, err)
	return nil, false, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
