package get_user_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeService struct {
	got *models.GetUserBookingsRequest
	err error
}

func (s *fakeService) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/users/{userId}/bookings", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Filters(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/users/5/bookings?status=confirmed&from=2025-01-10T00:00:00Z&to=2025-01-17T00:00:00%2B03:00&limit=20&offset=40")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	require.NotNil(t, svc.got)
	assert.Equal(t, int64(5), svc.got.UserID)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "confirmed", *svc.got.Status)
	require.NotNil(t, svc.got.From)
	assert.True(t, svc.got.From.Equal(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, svc.got.To)
	assert.True(t, svc.got.To.Equal(time.Date(2025, 1, 16, 21, 0, 0, 0, time.UTC)))
	assert.Equal(t, 20, svc.got.Limit)
	assert.Equal(t, 40, svc.got.Offset)
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/api/v1/users/5/bookings")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.Status)
	assert.Nil(t, svc.got.From)
	assert.Nil(t, svc.got.To)
	assert.Zero(t, svc.got.Limit)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{"bad id", "/api/v1/users/abc/bookings", nil, http.StatusBadRequest},
		{"bad from", "/api/v1/users/5/bookings?from=yesterday", nil, http.StatusBadRequest},
		{"bad limit", "/api/v1/users/5/bookings?limit=ten", nil, http.StatusBadRequest},
		{"invalid input", "/api/v1/users/5/bookings?status=unknown", bookings.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "/api/v1/users/5/bookings", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := serve(svc, tt.target)
			assert.Equal(t, tt.want, rec.Code)
			if tt.err == nil {
				assert.Nil(t, svc.got)
			}
		})
	}
}
