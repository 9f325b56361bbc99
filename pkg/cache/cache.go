// Package cache stores rendered fallback graphs.
//
// Rendering a large catalog through Graphviz is the slowest thing the CLI
// and the HTTP service do, so output is cached by the hash of the DOT source
// and the output format. Three backends implement [Cache]:
//
//   - [FileCache]: one JSON entry per key under the XDG cache directory
//   - [RedisCache]: shared cache for several service instances
//   - [NullCache]: disables caching
//
// Backends report misses as (nil, false, nil). Errors are reserved for
// backend failures, and callers are expected to treat them as misses.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value under key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Scoped prefixes every key passed to inner with prefix, so that several
// users of one backend do not collide.
func Scoped(inner Cache, prefix string) Cache {
	if inner == nil {
		inner = NewNullCache()
	}
	return &scopedCache{inner: inner, prefix: prefix}
}

type scopedCache struct {
	inner  Cache
	prefix string
}

func (s *scopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

func (s *scopedCache) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

func (s *scopedCache) Close() error { return s.inner.Close() }
