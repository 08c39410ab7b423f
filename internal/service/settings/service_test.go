package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

const mentorID = int64(7)

type fakeRepo struct {
	stored *domain.LessonSettings
	saved  *domain.LessonSettings
	err    error
}

func (r *fakeRepo) GetByLesson(ctx context.Context, lessonID int64) (*domain.LessonSettings, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.stored == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	copied := *r.stored
	return &copied, nil
}

func (r *fakeRepo) Upsert(ctx context.Context, s *domain.LessonSettings) (*domain.LessonSettings, error) {
	s.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.UpdatedAt = time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	r.saved = s
	return s, nil
}

type fakeLessonClient struct {
	err error
}

func (c *fakeLessonClient) GetLesson(ctx context.Context, lessonID int64) (*lessonservice.Lesson, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &lessonservice.Lesson{ID: lessonID, MentorID: mentorID}, nil
}

func intPtr(v int) *int {
	return &v
}

func newService(repo *fakeRepo, lessons *fakeLessonClient) *Service {
	return NewService(repo, lessons, domain.DefaultEngineLimits(), logger.Nop())
}

func TestGet_Defaults(t *testing.T) {
	svc := newService(&fakeRepo{}, &fakeLessonClient{})

	resp, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	assert.Equal(t, int64(3), resp.LessonID)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
	assert.Equal(t, domain.DefaultPickGranularityMinutes, resp.PickGranularityMinutes)
	assert.Nil(t, resp.CreatedAt)
}

func TestGet_Stored(t *testing.T) {
	repo := &fakeRepo{stored: &domain.LessonSettings{LessonID: 3, SlotDurationMinutes: 45, PickGranularityMinutes: 15}}
	svc := newService(repo, &fakeLessonClient{})

	resp, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, resp.IsDefault)
	assert.Equal(t, 45, resp.SlotDurationMinutes)
	assert.NotNil(t, resp.CreatedAt)
}

func TestGet_Errors(t *testing.T) {
	_, err := newService(&fakeRepo{}, &fakeLessonClient{err: lessonservice.ErrLessonNotFound}).Get(context.Background(), 3)
	assert.ErrorIs(t, err, ErrLessonNotFound)

	_, err = newService(&fakeRepo{err: errors.New("db down")}, &fakeLessonClient{}).Get(context.Background(), 3)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdate_MergesOverCurrent(t *testing.T) {
	repo := &fakeRepo{stored: &domain.LessonSettings{LessonID: 3, SlotDurationMinutes: 45, PickGranularityMinutes: 15, AdvanceBookingDays: 30}}
	svc := newService(repo, &fakeLessonClient{})

	resp, err := svc.Update(context.Background(), 3, &models.UpdateSettingsRequest{
		UserID:                  mentorID,
		MinBookingNoticeMinutes: intPtr(120),
	})
	require.NoError(t, err)

	assert.Equal(t, 45, resp.SlotDurationMinutes)
	assert.Equal(t, 15, resp.PickGranularityMinutes)
	assert.Equal(t, 30, resp.AdvanceBookingDays)
	assert.Equal(t, 120, resp.MinBookingNoticeMinutes)
	assert.False(t, resp.IsDefault)
	require.NotNil(t, repo.saved)
	assert.Equal(t, int64(3), repo.saved.LessonID)
}

func TestUpdate_StartsFromDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, &fakeLessonClient{})

	resp, err := svc.Update(context.Background(), 3, &models.UpdateSettingsRequest{
		UserID:              mentorID,
		SlotDurationMinutes: intPtr(90),
	})
	require.NoError(t, err)
	assert.Equal(t, 90, resp.SlotDurationMinutes)
	assert.Equal(t, domain.DefaultPickGranularityMinutes, resp.PickGranularityMinutes)
}

func TestUpdate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		req     models.UpdateSettingsRequest
		wantErr error
	}{
		{"empty request", models.UpdateSettingsRequest{UserID: mentorID}, ErrInvalidInput},
		{"not the mentor", models.UpdateSettingsRequest{UserID: 99, SlotDurationMinutes: intPtr(30)}, ErrAccessDenied},
		{"duration too short", models.UpdateSettingsRequest{UserID: mentorID, SlotDurationMinutes: intPtr(5)}, ErrInvalidInput},
		{"granularity does not divide the day", models.UpdateSettingsRequest{UserID: mentorID, PickGranularityMinutes: intPtr(7)}, ErrInvalidInput},
		{"granularity zero", models.UpdateSettingsRequest{UserID: mentorID, PickGranularityMinutes: intPtr(0)}, ErrInvalidInput},
		{"negative advance", models.UpdateSettingsRequest{UserID: mentorID, AdvanceBookingDays: intPtr(-1)}, ErrInvalidInput},
		{"notice too long", models.UpdateSettingsRequest{UserID: mentorID, MinBookingNoticeMinutes: intPtr(20000)}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := newService(repo, &fakeLessonClient{})

			_, err := svc.Update(context.Background(), 3, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.saved)
		})
	}
}
