package cache

import (
	"context"
	"time"
)

// Counter is the contract for the fixed-window counters backing the rate
// limiter. Implementations must make Increment atomic so concurrent requests
// against the same key never under-count.
type Counter interface {
	// Increment adds one to key and returns the new value. ttl is applied
	// when the increment creates the key, starting the window.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// Ping checks the backing store is reachable.
	Ping(ctx context.Context) error
}
