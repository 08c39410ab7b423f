package lessonservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/internal/lessons/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"mentorId":7,"title":"Go basics","durationMinutes":60,"price":1500,"isPublished":true}`))
	})
	mux.HandleFunc("/internal/lessons/2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":2,"mentorId":7,"title":"Draft","durationMinutes":30,"isPublished":false}`))
	})
	mux.HandleFunc("/internal/lessons/3", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})
	mux.HandleFunc("/internal/lessons/4", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GetLesson(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL, time.Second, logger.Nop())

	lesson, err := c.GetLesson(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), lesson.MentorID)
	assert.Equal(t, 60, lesson.DurationMinutes)

	_, err = c.GetLesson(context.Background(), 99)
	assert.ErrorIs(t, err, ErrLessonNotFound)

	_, err = c.GetLesson(context.Background(), 3)
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = c.GetLesson(context.Background(), 4)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GetPublishedLesson(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL, time.Second, logger.Nop())

	_, err := c.GetPublishedLesson(context.Background(), 1)
	assert.NoError(t, err)

	_, err = c.GetPublishedLesson(context.Background(), 2)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestClient_Unreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, logger.Nop())

	_, err := c.GetLesson(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}
