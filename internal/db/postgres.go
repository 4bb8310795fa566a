package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"airline-ops/seatcrew/internal/logging"
)

const connectAttempts = 10

// InitPostgres opens the sqlx pool used by read models and the health check.
// Postgres often comes up after the service in compose setups, so connecting is retried.
func InitPostgres(ctx context.Context, dsn string) (*sqlx.DB, error) {
	var (
		conn *sqlx.DB
		err  error
	)

	for i := 0; i < connectAttempts; i++ {
		conn, err = sqlx.ConnectContext(ctx, "postgres", dsn)
		if err == nil {
			conn.SetMaxOpenConns(20)
			conn.SetMaxIdleConns(5)
			conn.SetConnMaxLifetime(30 * time.Minute)
			return conn, nil
		}

		logging.Warn("Postgres not ready, retrying", "attempt", i+1, "error", err.Error())
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(500 * time.Millisecond):
		}
	}
	return nil, fmt.Errorf("failed to connect to postgres after %d attempts: %w", connectAttempts, err)
}
