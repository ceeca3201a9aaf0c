// Package cache provides pluggable cache backends for HTTP response caching.
//
// The Met Collection API returns stable data, so muse caches responses with
// endpoint-specific TTLs (departments change rarely, search results briefly).
// Three backends are provided:
//   - FileCache: file-based storage for CLI usage (~/.cache/muse)
//   - RedisCache: Redis-backed storage for server deployments
//   - NullCache: no-op cache for --no-cache and tests
//
// All backends store opaque byte payloads with a per-entry TTL. Callers are
// responsible for serialization; clients in pkg/met store JSON.
package cache

import (
	"context"
	"time"
)

// Cache is the interface implemented by all cache backends.
//
// Get returns (data, true, nil) on a hit, (nil, false, nil) on a miss
// (including expired entries), and a non-nil error only for backend failures.
// A ttl of 0 passed to Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
