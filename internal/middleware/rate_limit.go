package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"airline-ops/seatcrew/internal/common"
	"airline-ops/seatcrew/internal/constants"
	"airline-ops/seatcrew/internal/metrics"
)

// limiterIdleTTL drops a client's bucket after this long without a mutation
const limiterIdleTTL = 10 * time.Minute

var whitelistedIPs = map[string]bool{
	"127.0.0.1": true,
	"::1":       true,
}

// RateLimiter throttles seat and crew mutations per client IP. Reads pass through.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	rps      rate.Limit
	burst    int
	metrics  *metrics.MetricsRegistry
}

func NewRateLimiter(rps float64, burst int, metricsReg *metrics.MetricsRegistry) *RateLimiter {
	return newRateLimiter(rps, burst, limiterIdleTTL, metricsReg)
}

func newRateLimiter(rps float64, burst int, idle time.Duration, metricsReg *metrics.MetricsRegistry) *RateLimiter {
	return &RateLimiter{
		limiters: cache.New(idle, idle),
		rps:      rate.Limit(rps),
		burst:    burst,
		metrics:  metricsReg,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(rl.rps, rl.burst)
	}
	// every hit pushes the expiry out again
	rl.limiters.Set(ip, limiter, cache.DefaultExpiration)
	return limiter.(*rate.Limiter)
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isMutation(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if whitelistedIPs[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(ip).Allow() {
			if rl.metrics != nil {
				rl.metrics.RateLimitedTotal.WithLabelValues(r.Method).Inc()
			}
			common.RespondError(w, time.Now(), nil, constants.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
