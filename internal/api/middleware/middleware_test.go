package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfficeBooking/pkg/logger"
)

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.Called(method, route, status, duration)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &mockMetrics{}
	m.On("ObserveHTTP", http.MethodGet, "/api/v1/bookings/{bookingId}/form", http.StatusNotFound, mock.Anything).Once()

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/bookings/{bookingId}/form", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/b-42/form", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	m.AssertExpectations(t)
}

func TestRequestID(t *testing.T) {
	var seen string
	r := mux.NewRouter()
	r.Use(RequestID(logger.NewNop()))
	r.HandleFunc("/ping", func(w http.ResponseWriter, req *http.Request) {
		seen, _ = GetRequestID(req.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := rec.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("keeps client id", func(t *testing.T) {
		clientID := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, clientID)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, clientID, rec.Header().Get(RequestIDHeader))
		assert.Equal(t, clientID, seen)
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
	})
}
