package pick_slot

import (
	"context"
	"errors"
	"math"
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
	err      error
}

func (r *fakeBookingRepo) ListActiveByLesson(ctx context.Context, lessonID int64, from, to *time.Time) ([]*domain.Booking, error) {
	return r.bookings, r.err
}

type fakeSettingsRepo struct {
	settings *domain.LessonSettings
}

func (r *fakeSettingsRepo) GetByLesson(ctx context.Context, lessonID int64) (*domain.LessonSettings, error) {
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
	results []string
}

func (m *fakeMetrics) RecordSlotDecision(operation, result string) {
	m.results = append(m.results, operation+":"+result)
}

type fixedTime time.Time

func (f fixedTime) Now() time.Time {
	return time.Time(f)
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
			{ID: "w1", LessonID: 1, Interval: domain.Interval{Start: at(10, 9, 0), End: at(10, 12, 0)}, Price: 2000, Capacity: 1},
		}},
		bookings: &fakeBookingRepo{bookings: []*domain.Booking{
			{ID: 1, LessonID: 1, Interval: domain.Interval{Start: at(10, 10, 0), End: at(10, 11, 0)}, Status: domain.StatusConfirmed},
		}},
		settings: &fakeSettingsRepo{},
		lessons:  &fakeLessonClient{},
		metrics:  &fakeMetrics{},
	}
}

func (f *fixture) useCase(now time.Time) *UseCase {
	uc := NewUseCase(f.windows, f.bookings, f.settings, f.lessons, f.metrics, domain.DefaultEngineLimits(), logger.Nop())
	uc.timeProvider = fixedTime(now)
	return uc
}

func TestExecute_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		click      float64
		wantStart  time.Time
		wantOK     bool
		wantReason domain.RejectReason
	}{
		{"accepted at window start", 0.375, at(10, 9, 0), true, domain.ReasonNone},
		{"overlaps booking", 0.4, at(10, 9, 30), false, domain.ReasonConflict},
		{"outside windows", 0.9, at(10, 21, 30), false, domain.ReasonOutOfRange},
		{"end of day", 1.0, at(10, 23, 50), false, domain.ReasonOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			uc := f.useCase(at(9, 12, 0))

			resp, err := uc.Execute(context.Background(), &Request{LessonID: 1, ClickFraction: tt.click, Date: at(10, 0, 0)})
			require.NoError(t, err)

			assert.True(t, resp.Slot.Start.Equal(tt.wantStart), "start %s", resp.Slot.Start)
			assert.Equal(t, 60, int(resp.Slot.Duration().Minutes()))
			assert.Equal(t, tt.wantOK, resp.Accepted)
			assert.Equal(t, tt.wantReason, resp.Reason)
			require.Len(t, f.metrics.results, 1)
		})
	}
}

func TestExecute_AcceptedCarriesWindow(t *testing.T) {
	f := newFixture()
	uc := f.useCase(at(9, 12, 0))

	resp, err := uc.Execute(context.Background(), &Request{LessonID: 1, ClickFraction: 0.375, Date: at(10, 0, 0)})
	require.NoError(t, err)

	assert.Equal(t, "w1", resp.WindowID)
	assert.Equal(t, domain.Money(2000), resp.Price)
	assert.Equal(t, []string{"pick:accept"}, f.metrics.results)
}

func TestExecute_SettingsGranularityAndNotice(t *testing.T) {
	f := newFixture()
	f.settings.settings = &domain.LessonSettings{
		LessonID:                1,
		SlotDurationMinutes:     30,
		PickGranularityMinutes:  30,
		MinBookingNoticeMinutes: 60,
	}
	uc := f.useCase(at(10, 8, 30))

	// 09:20 округляется до 09:00, но это раньше 09:30
	resp, err := uc.Execute(context.Background(), &Request{LessonID: 1, ClickFraction: 560.0 / 1440, Date: at(10, 0, 0)})
	require.NoError(t, err)

	assert.True(t, resp.Slot.Start.Equal(at(10, 9, 0)))
	assert.True(t, resp.Slot.End.Equal(at(10, 9, 30)))
	assert.False(t, resp.Accepted)
	assert.Equal(t, domain.ReasonTooSoon, resp.Reason)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(f *fixture)
		req     Request
		wantErr error
	}{
		{"click above one", nil, Request{LessonID: 1, ClickFraction: 1.5, Date: at(10, 0, 0)}, domain.ErrInvalidClick},
		{"click NaN", nil, Request{LessonID: 1, ClickFraction: math.NaN(), Date: at(10, 0, 0)}, domain.ErrInvalidClick},
		{"duration too long", nil, Request{LessonID: 1, Date: at(10, 0, 0), DurationMinutes: 600}, domain.ErrInvalidDuration},
		{"missing date", nil, Request{LessonID: 1}, ErrInvalidInput},
		{"lesson not found", func(f *fixture) { f.lessons.err = lessonservice.ErrLessonNotFound }, Request{LessonID: 1, Date: at(10, 0, 0)}, ErrLessonNotFound},
		{"windows storage failure", func(f *fixture) { f.windows.err = errors.New("db down") }, Request{LessonID: 1, Date: at(10, 0, 0)}, ErrInternal},
		{"bookings storage failure", func(f *fixture) { f.bookings.err = errors.New("db down") }, Request{LessonID: 1, Date: at(10, 0, 0)}, ErrInternal},
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
			assert.Empty(t, f.metrics.results)
		})
	}
}
