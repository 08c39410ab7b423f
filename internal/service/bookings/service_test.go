package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

const (
	studentID = int64(5)
	mentorID  = int64(7)
)

type fakeRepo struct {
	bookings     map[int64]*domain.Booking
	lastStatus   *domain.BookingStatus
	lastFilter   bookingRepo.UserFilter
	cancelled    domain.BookingStatus
	cancelReason string
	updated      domain.BookingStatus
	err          error
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeRepo) ListByLesson(ctx context.Context, lessonID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	r.lastStatus = status
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.LessonID == lessonID {
			result = append(result, b)
		}
	}
	return result, r.err
}

func (r *fakeRepo) ListByUser(ctx context.Context, userID int64, filter bookingRepo.UserFilter) ([]*domain.Booking, error) {
	r.lastStatus = filter.Status
	r.lastFilter = filter
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, r.err
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	r.updated = status
	return nil
}

func (r *fakeRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	r.cancelled = status
	r.cancelReason = reason
	return nil
}

type fakeLessonClient struct {
	err error
}

func (c *fakeLessonClient) GetLesson(ctx context.Context, lessonID int64) (*lessonservice.Lesson, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &lessonservice.Lesson{ID: lessonID, MentorID: mentorID, IsPublished: true}, nil
}

func newBooking(id int64, status domain.BookingStatus) *domain.Booking {
	start := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:       id,
		LessonID: 1,
		UserID:   studentID,
		Interval: domain.Interval{Start: start, End: start.Add(90 * time.Minute)},
		Status:   status,
		Price:    1500,
	}
}

func newService(repo *fakeRepo, lessons *fakeLessonClient) *Service {
	return NewService(repo, lessons, logger.Nop())
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{1: newBooking(1, domain.StatusConfirmed)}}
	svc := newService(repo, &fakeLessonClient{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, int64(1500), resp.Price)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	repo.err = errors.New("db down")
	_, err = svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetLessonBookings_StatusFilter(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{1: newBooking(1, domain.StatusConfirmed)}}
	svc := newService(repo, &fakeLessonClient{})

	status := "confirmed"
	resp, err := svc.GetLessonBookings(context.Background(), &models.GetLessonBookingsRequest{LessonID: 1, Status: &status})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	require.NotNil(t, repo.lastStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastStatus)

	bad := "no_show"
	_, err = svc.GetLessonBookings(context.Background(), &models.GetLessonBookingsRequest{LessonID: 1, Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_Empty(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{}}
	svc := newService(repo, &fakeLessonClient{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: studentID})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
	assert.Nil(t, repo.lastStatus)
}

func TestGetUserBookings_Filter(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{}}
	svc := newService(repo, &fakeLessonClient{})
	from := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	status := "confirmed"

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: studentID, Status: &status, From: &from, To: &to, Limit: 20, Offset: 40,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
	assert.Equal(t, &from, repo.lastFilter.From)
	assert.Equal(t, &to, repo.lastFilter.To)
	assert.Equal(t, uint64(20), repo.lastFilter.Limit)
	assert.Equal(t, uint64(40), repo.lastFilter.Offset)
}

func TestGetUserBookings_InvalidFilter(t *testing.T) {
	from := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	before := from.Add(-time.Hour)

	tests := []struct {
		name string
		req  *models.GetUserBookingsRequest
	}{
		{"reversed range", &models.GetUserBookingsRequest{UserID: studentID, From: &from, To: &before}},
		{"empty range", &models.GetUserBookingsRequest{UserID: studentID, From: &from, To: &from}},
		{"limit too big", &models.GetUserBookingsRequest{UserID: studentID, Limit: MaxUserBookingsLimit + 1}},
		{"negative offset", &models.GetUserBookingsRequest{UserID: studentID, Offset: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(&fakeRepo{bookings: map[int64]*domain.Booking{}}, &fakeLessonClient{})
			_, err := svc.GetUserBookings(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.BookingStatus
		userID     int64
		lessonErr  error
		wantStatus domain.BookingStatus
		wantErr    error
	}{
		{name: "student cancels own", status: domain.StatusConfirmed, userID: studentID, wantStatus: domain.StatusCancelledByUser},
		{name: "mentor cancels", status: domain.StatusPending, userID: mentorID, wantStatus: domain.StatusCancelledByMentor},
		{name: "stranger", status: domain.StatusConfirmed, userID: 99, wantErr: ErrAccessDenied},
		{name: "already cancelled", status: domain.StatusCancelledByUser, userID: studentID, wantErr: ErrCannotCancel},
		{name: "completed", status: domain.StatusCompleted, userID: studentID, wantErr: ErrCannotCancel},
		{name: "lesson gone", status: domain.StatusConfirmed, userID: mentorID, lessonErr: lessonservice.ErrLessonNotFound, wantErr: ErrLessonNotFound},
		{name: "missing user", status: domain.StatusConfirmed, userID: 0, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{bookings: map[int64]*domain.Booking{1: newBooking(1, tt.status)}}
			svc := newService(repo, &fakeLessonClient{err: tt.lessonErr})

			err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: tt.userID, CancellationReason: "заболел"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.cancelled)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, repo.cancelled)
			assert.Equal(t, "заболел", repo.cancelReason)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		userID  int64
		wantErr error
	}{
		{name: "confirm pending", from: domain.StatusPending, to: "confirmed", userID: mentorID},
		{name: "complete confirmed", from: domain.StatusConfirmed, to: "completed", userID: mentorID},
		{name: "student cannot complete", from: domain.StatusConfirmed, to: "completed", userID: studentID, wantErr: ErrAccessDenied},
		{name: "backwards", from: domain.StatusCompleted, to: "confirmed", userID: mentorID, wantErr: ErrInvalidTransition},
		{name: "cancel via status", from: domain.StatusConfirmed, to: "cancelled_by_mentor", userID: mentorID, wantErr: ErrInvalidTransition},
		{name: "unknown status", from: domain.StatusConfirmed, to: "in_progress", userID: mentorID, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{bookings: map[int64]*domain.Booking{1: newBooking(1, tt.from)}}
			svc := newService(repo, &fakeLessonClient{})

			err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: tt.userID, Status: tt.to})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.updated)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatus(tt.to), repo.updated)
		})
	}
}
