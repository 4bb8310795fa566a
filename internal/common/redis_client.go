package common

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"airline-ops/seatcrew/internal/config"
	"airline-ops/seatcrew/internal/logging"
)

// NewRedisClient builds a pooled client. A failed ping is logged, not fatal:
// the pool keeps reconnecting and cache reads fall through to Postgres meanwhile.
func NewRedisClient(cfg config.Redis) *redis.Client {
	addr := cfg.Addr()
	logging.Info("Initializing Redis client", "addr", addr, "db", cfg.DB)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Error("Failed to ping Redis", "addr", addr, "error", err.Error())
		return client
	}

	logging.Info("Connected to Redis", "addr", addr)
	return client
}
