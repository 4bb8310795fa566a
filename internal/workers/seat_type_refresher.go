package workers

import (
	"context"
	"time"

	"airline-ops/seatcrew/internal/logging"
)

// Refresher reloads a cached reference table
type Refresher interface {
	Refresh(ctx context.Context) error
}

// StartCacheRefresher primes the cache once, then refreshes it every interval until ctx is done.
// A failed refresh keeps the previous entry; callers fall back to a read-through on expiry.
func StartCacheRefresher(ctx context.Context, name string, r Refresher, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	refreshTask(ctx, name, r)

	for {
		select {
		case <-ctx.Done():
			logging.Debug("Cache refresher stopped", "cache", name)
			return
		case <-ticker.C:
			refreshTask(ctx, name, r)
		}
	}
}

func refreshTask(ctx context.Context, name string, r Refresher) {
	if err := r.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		logging.Warn("Cache refresh failed", "cache", name, "error", err.Error())
	}
}
