package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"airline-ops/seatcrew/internal/api"
	"airline-ops/seatcrew/internal/config"
	"airline-ops/seatcrew/internal/logging"
	"airline-ops/seatcrew/internal/middleware"
)

// RegisterRoutes builds the chi router. checks feeds the health endpoint.
func RegisterRoutes(cfg *config.Config, deps *api.Dependencies, checks map[string]api.Pinger, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-Response-Time"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/healthCheck", api.HealthCheckHandler(checks, upSince))

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, deps.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(limiter.Middleware)
		RegisterAPIRoutes(r, deps)
	})

	logging.Info("Router initialized", "cors_origins", cfg.CORSAllowedOrigins)
	return r
}

func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	seats := deps.Services.Seats
	crew := deps.Services.Crew
	rels := deps.Services.Relationships

	r.Route("/flights/{flightNumber}", func(r chi.Router) {
		r.Post("/seats/auto-assign", api.AutoAssignSeatsHandler(seats))
		r.Put("/seats/assign", api.AssignSeatHandler(seats))
		r.Get("/seats", api.SeatMapHandler(seats))

		r.Post("/crew", api.SaveCrewHandler(crew))
		r.Get("/crew", api.GetCrewHandler(crew))

		r.Post("/affiliated-seating", api.CreateAffiliatedSeatingHandler(rels))
		r.Get("/affiliated-seating", api.ListAffiliatedSeatingHandler(rels))

		r.Post("/infant-parent", api.CreateInfantParentHandler(rels))
		r.Get("/infant-parent", api.ListInfantParentHandler(rels))
	})

	r.Delete("/affiliated-seating/{id}", api.DeleteAffiliatedSeatingHandler(rels))
	r.Delete("/infant-parent/{id}", api.DeleteInfantParentHandler(rels))
}
