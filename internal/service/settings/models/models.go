package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек занятия
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	UserID                  int64 `json:"userId"`
	SlotDurationMinutes     *int  `json:"slotDurationMinutes,omitempty"`
	PickGranularityMinutes  *int  `json:"pickGranularityMinutes,omitempty"`
	AdvanceBookingDays      *int  `json:"advanceBookingDays,omitempty"`      // 0 = без ограничений
	MinBookingNoticeMinutes *int  `json:"minBookingNoticeMinutes,omitempty"` // Минимальное время до начала
}

// IsEmpty возвращает true, если ни одно поле не передано
func (r *UpdateSettingsRequest) IsEmpty() bool {
	return r.SlotDurationMinutes == nil &&
		r.PickGranularityMinutes == nil &&
		r.AdvanceBookingDays == nil &&
		r.MinBookingNoticeMinutes == nil
}

// ApplyTo переносит переданные поля в настройки
func (r *UpdateSettingsRequest) ApplyTo(s *domain.LessonSettings) {
	if r.SlotDurationMinutes != nil {
		s.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.PickGranularityMinutes != nil {
		s.PickGranularityMinutes = *r.PickGranularityMinutes
	}
	if r.AdvanceBookingDays != nil {
		s.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MinBookingNoticeMinutes != nil {
		s.MinBookingNoticeMinutes = *r.MinBookingNoticeMinutes
	}
}

// Response модели

// SettingsResponse ответ с настройками занятия
type SettingsResponse struct {
	LessonID                int64      `json:"lessonId"`
	SlotDurationMinutes     int        `json:"slotDurationMinutes"`
	PickGranularityMinutes  int        `json:"pickGranularityMinutes"`
	AdvanceBookingDays      int        `json:"advanceBookingDays"`
	MinBookingNoticeMinutes int        `json:"minBookingNoticeMinutes"`
	IsDefault               bool       `json:"isDefault"` // настройки не сохранены, действуют значения по умолчанию
	CreatedAt               *time.Time `json:"createdAt,omitempty"`
	UpdatedAt               *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.LessonSettings, isDefault bool) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{
		LessonID:                s.LessonID,
		SlotDurationMinutes:     s.SlotDurationMinutes,
		PickGranularityMinutes:  s.PickGranularityMinutes,
		AdvanceBookingDays:      s.AdvanceBookingDays,
		MinBookingNoticeMinutes: s.MinBookingNoticeMinutes,
		IsDefault:               isDefault,
	}

	if !isDefault {
		createdAt, updatedAt := s.CreatedAt, s.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
