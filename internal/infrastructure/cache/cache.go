// Package cache provides the short-lived read cache used by the analytics
// fetch layer. Implementations must treat a miss as (nil, nil), never an error.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache with per-entry TTL.
type Cache interface {
	// Get returns the cached value, or nil when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
