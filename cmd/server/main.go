package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"airline-ops/seatcrew/internal/api"
	"airline-ops/seatcrew/internal/common"
	"airline-ops/seatcrew/internal/config"
	"airline-ops/seatcrew/internal/db"
	"airline-ops/seatcrew/internal/logging"
	"airline-ops/seatcrew/internal/metrics"
	"airline-ops/seatcrew/internal/routes"
	"airline-ops/seatcrew/internal/workers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	if err := run(cfg); err != nil {
		logging.Fatal("Server stopped with error", "error", err.Error())
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("Seat & crew service starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	sqlDB, err := db.InitPostgres(ctx, cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("postgres (sqlx): %w", err)
	}
	defer sqlDB.Close()
	logging.Info("Connected to Postgres (sqlx)")

	orm, err := db.InitPostgresORM(cfg.Postgres.DSN(), cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("postgres (gorm): %w", err)
	}

	checks := map[string]api.Pinger{"postgres": sqlDB}

	var redisClient *redis.Client
	if cfg.CacheBackend == config.CacheBackendRedis {
		redisClient = common.NewRedisClient(cfg.Redis)
		defer redisClient.Close()
		checks["redis"] = api.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	deps, err := api.InitDependencies(cfg, orm, sqlDB, redisClient, metricsReg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	go workers.StartCacheRefresher(ctx, "seat_types", deps.Services.SeatTypes, cfg.SeatTypeRefresh)

	router := routes.RegisterRoutes(cfg, deps, checks, time.Now())

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.APIPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("Server starting", "port", cfg.APIPort, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
