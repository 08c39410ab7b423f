package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeService struct {
	bookingID int64
	got       *models.CancelBookingRequest
	err       error
}

func (s *fakeService) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.bookingID = bookingID
	s.got = req
	return s.err
}

func serve(svc *fakeService, target, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/cancel", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, target, strings.NewReader(body)))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/bookings/9/cancel", `{"userId": 7, "cancellationReason": "заболел"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), svc.bookingID)
	assert.Equal(t, int64(7), svc.got.UserID)
	assert.Equal(t, "заболел", svc.got.CancellationReason)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{"bad id", "/api/v1/bookings/-1/cancel", nil, http.StatusBadRequest},
		{"not found", "/api/v1/bookings/9/cancel", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"lesson", "/api/v1/bookings/9/cancel", bookings.ErrLessonNotFound, http.StatusNotFound},
		{"stranger", "/api/v1/bookings/9/cancel", bookings.ErrAccessDenied, http.StatusForbidden},
		{"already cancelled", "/api/v1/bookings/9/cancel", bookings.ErrCannotCancel, http.StatusBadRequest},
		{"internal", "/api/v1/bookings/9/cancel", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.target, `{"userId": 7}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
