package get_available_slots

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
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeWindowRepo struct {
	windows []domain.Window
	err     error
}

func (r *fakeWindowRepo) ListByLesson(ctx context.Context, lessonID int64) ([]domain.Window, error) {
	return r.windows, r.err
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	from, to *time.Time
	err      error
}

func (r *fakeBookingRepo) ListActiveByLesson(ctx context.Context, lessonID int64, from, to *time.Time) ([]*domain.Booking, error) {
	r.from, r.to = from, to
	return r.bookings, r.err
}

type fakeSettingsRepo struct {
	settings *domain.LessonSettings
	err      error
}

func (r *fakeSettingsRepo) GetByLesson(ctx context.Context, lessonID int64) (*domain.LessonSettings, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.settings == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return r.settings, nil
}

type fakeLessonClient struct {
	err error
}

func (c *fakeLessonClient) GetPublishedLesson(ctx context.Context, lessonID int64) (*lessonservice.Lesson, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &lessonservice.Lesson{ID: lessonID, IsPublished: true}, nil
}

type fakeMetrics struct {
	decisions map[string]int
}

func (m *fakeMetrics) RecordSlotDecision(operation, result string) {
	if m.decisions == nil {
		m.decisions = map[string]int{}
	}
	m.decisions[result]++
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func at(day, hour, min int) time.Time {
	return time.Date(2025, 1, day, hour, min, 0, 0, time.UTC)
}

type fixture struct {
	windows  *fakeWindowRepo
	bookings *fakeBookingRepo
	settings *fakeSettingsRepo
	lessons  *fakeLessonClient
	metrics  *fakeMetrics
}

func newFixture() *fixture {
	return &fixture{
		windows: &fakeWindowRepo{windows: []domain.Window{
			{ID: "w1", LessonID: 1, Interval: domain.Interval{Start: at(10, 9, 0), End: at(10, 12, 0)}, Price: 1500, Capacity: 1},
			{ID: "w2", LessonID: 1, Interval: domain.Interval{Start: at(11, 9, 0), End: at(11, 10, 0)}, Price: 1500, Capacity: 1},
		}},
		bookings: &fakeBookingRepo{bookings: []*domain.Booking{
			{ID: 1, LessonID: 1, Interval: domain.Interval{Start: at(10, 10, 0), End: at(10, 11, 0)}, Status: domain.StatusConfirmed},
			{ID: 2, LessonID: 1, Interval: domain.Interval{Start: at(10, 11, 0), End: at(10, 12, 0)}, Status: domain.StatusCancelledByUser},
		}},
		settings: &fakeSettingsRepo{},
		lessons:  &fakeLessonClient{},
		metrics:  &fakeMetrics{},
	}
}

func (f *fixture) useCase(now time.Time) *UseCase {
	uc := NewUseCase(f.windows, f.bookings, f.settings, f.lessons, f.metrics, domain.DefaultEngineLimits(), logger.Nop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute_MarksBookedSlots(t *testing.T) {
	f := newFixture()
	uc := f.useCase(at(9, 12, 0))

	resp, err := uc.Execute(context.Background(), &Request{LessonID: 1, Date: at(10, 0, 0)})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.DurationMinutes)
	require.Len(t, resp.Slots, 3)

	assert.True(t, resp.Slots[0].Start.Equal(at(10, 9, 0)))
	assert.True(t, resp.Slots[0].Available)
	assert.Equal(t, "w1", resp.Slots[0].WindowID)
	assert.Equal(t, domain.Money(1500), resp.Slots[0].Price)

	assert.True(t, resp.Slots[1].Start.Equal(at(10, 10, 0)))
	assert.False(t, resp.Slots[1].Available)
	assert.Equal(t, domain.ReasonConflict, resp.Slots[1].Reason)

	// отменённое бронирование слот не занимает
	assert.True(t, resp.Slots[2].Available)

	assert.True(t, f.bookings.from.Equal(at(10, 9, 0)))
	assert.True(t, f.bookings.to.Equal(at(10, 12, 0)))
	assert.Equal(t, 2, f.metrics.decisions["accept"])
	assert.Equal(t, 1, f.metrics.decisions["conflict"])
}

func TestExecute_CustomDuration(t *testing.T) {
	f := newFixture()
	uc := f.useCase(at(9, 12, 0))

	resp, err := uc.Execute(context.Background(), &Request{LessonID: 1, Date: at(10, 0, 0), DurationMinutes: 90})
	require.NoError(t, err)

	// 09:00-10:30 пересекается с бронированием, 10:30-12:00 тоже
	require.Len(t, resp.Slots, 2)
	assert.False(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available)
}

func TestExecute_UsesStoredSettings(t *testing.T) {
	f := newFixture()
	f.settings.settings = &domain.LessonSettings{LessonID: 1, SlotDurationMinutes: 30, MinBookingNoticeMinutes: 30}
	uc := f.useCase(at(10, 9, 40))

	resp, err := uc.Execute(context.Background(), &Request{LessonID: 1, Date: at(10, 0, 0)})
	require.NoError(t, err)

	// earliest start = 10:10, первый слот с 10:30
	require.Len(t, resp.Slots, 3)
	assert.True(t, resp.Slots[0].Start.Equal(at(10, 10, 30)))
	assert.False(t, resp.Slots[0].Available)
	assert.True(t, resp.Slots[1].Available)
	assert.True(t, resp.Slots[2].Available)
}

func TestExecute_NoWindowsOnDay(t *testing.T) {
	f := newFixture()
	uc := f.useCase(at(9, 12, 0))

	resp, err := uc.Execute(context.Background(), &Request{LessonID: 1, Date: at(12, 0, 0)})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Nil(t, f.bookings.from)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture()
	uc := f.useCase(at(11, 8, 0))

	resp, err := uc.Execute(context.Background(), &Request{LessonID: 1, Date: at(10, 0, 0)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_AdvanceBookingLimit(t *testing.T) {
	f := newFixture()
	f.settings.settings = &domain.LessonSettings{LessonID: 1, SlotDurationMinutes: 60, AdvanceBookingDays: 1}
	uc := f.useCase(at(9, 12, 0))

	_, err := uc.Execute(context.Background(), &Request{LessonID: 1, Date: at(10, 0, 0)})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{LessonID: 1, Date: at(11, 0, 0)})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(f *fixture)
		req     Request
		wantErr error
	}{
		{
			name:    "invalid lesson id",
			req:     Request{LessonID: 0, Date: at(10, 0, 0)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			req:     Request{LessonID: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duration below limit",
			req:     Request{LessonID: 1, Date: at(10, 0, 0), DurationMinutes: 5},
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name:    "negative duration",
			req:     Request{LessonID: 1, Date: at(10, 0, 0), DurationMinutes: -30},
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name:    "lesson not found",
			prepare: func(f *fixture) { f.lessons.err = lessonservice.ErrLessonNotFound },
			req:     Request{LessonID: 1, Date: at(10, 0, 0)},
			wantErr: ErrLessonNotFound,
		},
		{
			name:    "lesson service down",
			prepare: func(f *fixture) { f.lessons.err = lessonservice.ErrInternal },
			req:     Request{LessonID: 1, Date: at(10, 0, 0)},
			wantErr: ErrInternal,
		},
		{
			name:    "settings storage failure",
			prepare: func(f *fixture) { f.settings.err = errors.New("db down") },
			req:     Request{LessonID: 1, Date: at(10, 0, 0)},
			wantErr: ErrInternal,
		},
		{
			name:    "bookings storage failure",
			prepare: func(f *fixture) { f.bookings.err = errors.New("db down") },
			req:     Request{LessonID: 1, Date: at(10, 0, 0)},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.prepare != nil {
				tt.prepare(f)
			}
			uc := f.useCase(at(9, 12, 0))

			resp, err := uc.Execute(context.Background(), &tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
