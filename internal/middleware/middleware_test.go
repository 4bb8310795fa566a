package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline-ops/seatcrew/internal/common"
	"airline-ops/seatcrew/internal/constants"
	"airline-ops/seatcrew/internal/metrics"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = common.RequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get(constants.HeaderRequestID))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(constants.HeaderRequestID, "upstream-42")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "upstream-42", seen)
}

func TestRateLimiter_OnlyMutationsAreLimited(t *testing.T) {
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	h := NewRateLimiter(0.001, 1, reg).Middleware(http.HandlerFunc(okHandler))

	send := func(method string) int {
		req := httptest.NewRequest(method, "/api/v1/flights/AB1234/seats/auto-assign", nil)
		req.RemoteAddr = "203.0.113.9:5000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send(http.MethodPost))
	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost))
	assert.Equal(t, http.StatusOK, send(http.MethodGet))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.RateLimitedTotal.WithLabelValues(http.MethodPost)))
}

func TestRateLimiter_LocalhostWhitelisted(t *testing.T) {
	h := NewRateLimiter(0.001, 1, nil).Middleware(http.HandlerFunc(okHandler))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPut, "/", nil)
		req.RemoteAddr = "127.0.0.1:5000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestRateLimiter_IdleClientsAreForgotten(t *testing.T) {
	rl := newRateLimiter(0.001, 1, 20*time.Millisecond, nil)
	h := rl.Middleware(http.HandlerFunc(okHandler))

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "198.51.100.7:6000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
	assert.Equal(t, 1, rl.limiters.ItemCount())

	assert.Eventually(t, func() bool { return rl.limiters.ItemCount() == 0 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, http.StatusOK, send())
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(reg))
	r.Get("/flights/{flightNumber}/seats", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/flights/AB1234/seats", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.HTTPRequestsTotal.WithLabelValues("/flights/{flightNumber}/seats", "GET", "404")))
}
