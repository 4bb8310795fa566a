package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"airline-ops/seatcrew/internal/models/entities"
)

// Pinger is satisfied by *sqlx.DB and by the Redis ping adapter
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(checks map[string]Pinger, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		services := make(map[string]entities.ServiceStatus, len(checks))
		overallStatus := "ok"

		for name, check := range checks {
			status := entities.ServiceStatus{Status: "ok", Details: "connected"}
			if err := check.PingContext(ctx); err != nil {
				status = entities.ServiceStatus{Status: "down", Details: err.Error()}
				overallStatus = "down"
			}
			services[name] = status
		}

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}

		code := http.StatusOK
		if overallStatus != "ok" {
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
