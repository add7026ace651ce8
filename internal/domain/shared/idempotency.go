package shared

import (
	"context"
	"time"
)

// IdempotencyStore guards operations that must not run concurrently or
// repeatedly for the same key. Reserve atomically claims a key for the
// given TTL; Release frees it early so a failed operation can be retried
// without waiting for expiry.
type IdempotencyStore interface {
	// Reserve claims the key. Returns true if the key was newly claimed,
	// false if another reservation is still active.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release frees a previously claimed key.
	Release(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
