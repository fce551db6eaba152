// Package cache provides pluggable caching for rendered artifacts.
//
// Stylesheet and diagram rendering is deterministic, so a cached
// artifact never goes stale for a given configuration; TTLs exist to
// bound storage, not correctness. Three backends are provided:
//
//   - FileCache: directory-based, for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching
//
// Keys are built through a [Keyer] so every artifact kind has a stable,
// collision-free key derived from its full input set.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends. Values are
// opaque byte slices; a zero ttl means no expiration.
type Cache interface {
	// Get retrieves a value. The boolean reports a hit; a miss is not
	// an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
