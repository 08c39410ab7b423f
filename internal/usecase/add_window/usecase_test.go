package add_window

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/lessonservice"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeWindowRepo struct {
	windows  []domain.Window
	saved    []domain.Window
	listErr  error
	saveErr  error
	replaced bool
}

func (r *fakeWindowRepo) ListByLesson(ctx context.Context, lessonID int64) ([]domain.Window, error) {
	return r.windows, r.listErr
}

func (r *fakeWindowRepo) ReplaceForLesson(ctx context.Context, lessonID int64, windows []domain.Window) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.replaced = true
	r.saved = windows
	return nil
}

type fakeLessonClient struct {
	err error
}

func (c *fakeLessonClient) GetLesson(ctx context.Context, lessonID int64) (*lessonservice.Lesson, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &lessonservice.Lesson{ID: lessonID, MentorID: 7, IsPublished: true}, nil
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func at(hour, min int) time.Time {
	return time.Date(2025, 1, 10, hour, min, 0, 0, time.UTC)
}

func newUseCase(repo *fakeWindowRepo, lessons *fakeLessonClient) (*UseCase, *fakeTxManager) {
	tx := &fakeTxManager{}
	uc := NewUseCase(repo, lessons, tx, logger.Nop())
	uc.newID = func() string { return "new-window" }
	return uc, tx
}

func TestExecute_MergesWithStoredWindows(t *testing.T) {
	repo := &fakeWindowRepo{windows: []domain.Window{
		{ID: "w1", LessonID: 1, Interval: domain.Interval{Start: at(9, 0), End: at(10, 0)}, Price: 100, Capacity: 1},
		{ID: "w2", LessonID: 1, Interval: domain.Interval{Start: at(14, 0), End: at(15, 0)}, Price: 100, Capacity: 1},
	}}
	uc, tx := newUseCase(repo, &fakeLessonClient{})

	resp, err := uc.Execute(context.Background(), &Request{LessonID: 1, Start: at(10, 0), End: at(12, 0), Price: 200})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	require.Len(t, resp.Windows, 2)
	assert.Equal(t, "w1", resp.Windows[0].ID)
	assert.True(t, resp.Windows[0].End.Equal(at(12, 0)))
	assert.Equal(t, "w2", resp.Windows[1].ID)
	assert.Equal(t, resp.Windows, repo.saved)
}

func TestExecute_NewDisjointWindow(t *testing.T) {
	repo := &fakeWindowRepo{}
	uc, _ := newUseCase(repo, &fakeLessonClient{})

	resp, err := uc.Execute(context.Background(), &Request{LessonID: 1, Start: at(9, 0), End: at(10, 0)})
	require.NoError(t, err)

	require.Len(t, resp.Windows, 1)
	assert.Equal(t, "new-window", resp.Windows[0].ID)
	assert.Equal(t, domain.DefaultWindowCapacity, resp.Windows[0].Capacity)
	assert.Equal(t, int64(1), resp.Windows[0].LessonID)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc, tx := newUseCase(&fakeWindowRepo{}, &fakeLessonClient{})

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"lesson id", &Request{LessonID: 0, Start: at(9, 0), End: at(10, 0)}, ErrInvalidInput},
		{"missing end", &Request{LessonID: 1, Start: at(9, 0)}, ErrInvalidInput},
		{"empty window", &Request{LessonID: 1, Start: at(9, 0), End: at(9, 0)}, domain.ErrInvalidWindow},
		{"reversed window", &Request{LessonID: 1, Start: at(10, 0), End: at(9, 0)}, domain.ErrInvalidWindow},
		{"negative price", &Request{LessonID: 1, Start: at(9, 0), End: at(10, 0), Price: -1}, ErrInvalidInput},
		{"negative capacity", &Request{LessonID: 1, Start: at(9, 0), End: at(10, 0), Capacity: -2}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Zero(t, tx.calls)
}

func TestExecute_LessonErrors(t *testing.T) {
	uc, _ := newUseCase(&fakeWindowRepo{}, &fakeLessonClient{err: lessonservice.ErrLessonNotFound})
	_, err := uc.Execute(context.Background(), &Request{LessonID: 1, Start: at(9, 0), End: at(10, 0)})
	assert.ErrorIs(t, err, ErrLessonNotFound)

	uc, _ = newUseCase(&fakeWindowRepo{}, &fakeLessonClient{err: lessonservice.ErrInternal})
	_, err = uc.Execute(context.Background(), &Request{LessonID: 1, Start: at(9, 0), End: at(10, 0)})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_RepositoryErrors(t *testing.T) {
	repo := &fakeWindowRepo{listErr: errors.New("db down")}
	uc, _ := newUseCase(repo, &fakeLessonClient{})
	_, err := uc.Execute(context.Background(), &Request{LessonID: 1, Start: at(9, 0), End: at(10, 0)})
	assert.ErrorIs(t, err, ErrInternal)

	repo = &fakeWindowRepo{saveErr: errors.New("db down")}
	uc, _ = newUseCase(repo, &fakeLessonClient{})
	_, err = uc.Execute(context.Background(), &Request{LessonID: 1, Start: at(9, 0), End: at(10, 0)})
	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, repo.replaced)
}

func TestExecute_SerializationFailure(t *testing.T) {
	serializeErr := fmt.Errorf("window: failed to execute query: %w", &pq.Error{Code: "40001"})

	repo := &fakeWindowRepo{listErr: serializeErr}
	uc, _ := newUseCase(repo, &fakeLessonClient{})
	_, err := uc.Execute(context.Background(), &Request{LessonID: 1, Start: at(9, 0), End: at(10, 0)})
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.NotErrorIs(t, err, ErrInternal)

	repo = &fakeWindowRepo{saveErr: serializeErr}
	uc, _ = newUseCase(repo, &fakeLessonClient{})
	_, err = uc.Execute(context.Background(), &Request{LessonID: 1, Start: at(9, 0), End: at(10, 0)})
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
}
