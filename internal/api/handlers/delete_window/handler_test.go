package delete_window

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/windows"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

const windowID = "6f1c2a4e-8a7b-4d3c-9e21-0b5f6a7c8d9e"

type fakeService struct {
	calls int
	err   error
}

func (s *fakeService) Delete(ctx context.Context, lessonID int64, windowID string) error {
	s.calls++
	return s.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/lessons/{lessonId}/windows/{windowId}", NewHandler(svc, logger.Nop()).Handle).
		Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		err       error
		want      int
		wantCalls int
	}{
		{"deleted", "/api/v1/lessons/3/windows/" + windowID, nil, http.StatusNoContent, 1},
		{"bad window id", "/api/v1/lessons/3/windows/not-a-uuid", nil, http.StatusBadRequest, 0},
		{"bad lesson id", "/api/v1/lessons/0/windows/" + windowID, nil, http.StatusBadRequest, 0},
		{"not found", "/api/v1/lessons/3/windows/" + windowID, windows.ErrWindowNotFound, http.StatusNotFound, 1},
		{"has bookings", "/api/v1/lessons/3/windows/" + windowID,
			fmt.Errorf("%w: 2 active bookings", windows.ErrWindowHasBookings), http.StatusConflict, 1},
		{"internal", "/api/v1/lessons/3/windows/" + windowID, windows.ErrInternal, http.StatusInternalServerError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := serve(svc, tt.target)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}
