package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the seat and crew service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec
	RateLimitedTotal     *prometheus.CounterVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	SeatsAutoAssignedTotal    prometheus.Counter
	PassengersLeftUnseated    prometheus.Counter
	AutoAssignDuration        prometheus.Histogram
	ManualAssignmentsTotal    *prometheus.CounterVec
	SeatConflictsTotal        prometheus.Counter
	CrewAssignmentsSavedTotal prometheus.Counter
}

// NewMetricsRegistry registers every metric on reg. The server passes
// prometheus.DefaultRegisterer, tests pass a fresh prometheus.NewRegistry().
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	f := promauto.With(reg)

	return &MetricsRegistry{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seatcrew_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "seatcrew_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "seatcrew_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),
		RateLimitedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seatcrew_http_rate_limited_total",
				Help: "Requests rejected by the per-client rate limiter",
			},
			[]string{"method"},
		),

		CacheHitsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seatcrew_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seatcrew_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		SeatsAutoAssignedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "seatcrew_seats_auto_assigned_total",
				Help: "Seats given to passengers by auto-assignment",
			},
		),
		PassengersLeftUnseated: f.NewCounter(
			prometheus.CounterOpts{
				Name: "seatcrew_passengers_left_unseated_total",
				Help: "Passengers an auto-assignment run could not seat",
			},
		),
		AutoAssignDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "seatcrew_auto_assign_duration_seconds",
				Help:    "Auto-assignment transaction time in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
		),
		ManualAssignmentsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seatcrew_manual_seat_assignments_total",
				Help: "Manual seat assignments by outcome",
			},
			[]string{"outcome"},
		),
		SeatConflictsTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "seatcrew_seat_conflicts_total",
				Help: "Manual assignments rejected because another passenger holds the seat",
			},
		),
		CrewAssignmentsSavedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "seatcrew_crew_assignments_saved_total",
				Help: "Crew roster upserts",
			},
		),
	}
}
