package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/fontroute/pkg/observability"
)

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	// Addr is the Redis server address (host:port).
	Addr string
	// Password is the Redis password (optional).
	Password string
	// DB is the Redis database number.
	DB int
	// Prefix is prepended to every key.
	Prefix string
	// DefaultTTL applies when Set is called with a zero ttl.
	DefaultTTL time.Duration
	// PingAttempts is how often the initial ping is tried. Defaults to 3.
	PingAttempts int
	// PingDelay is the wait before the first ping retry. Defaults to 200ms.
	PingDelay time.Duration
}

// DefaultRedisConfig returns a configuration for a local Redis server.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:         "localhost:6379",
		Prefix:       "fontroute:",
		DefaultTTL:   24 * time.Hour,
		PingAttempts: 3,
		PingDelay:    200 * time.Millisecond,
	}
}

// RedisCache implements a Redis-backed cache.
type RedisCache struct {
	client *redis.Client
	config RedisConfig
}

// NewRedisCache connects to Redis and pings it, retrying with backoff.
func NewRedisCache(ctx context.Context, config RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	attempts := config.PingAttempts
	if attempts == 0 {
		attempts = 3
	}
	delay := config.PingDelay
	if delay == 0 {
		delay = 200 * time.Millisecond
	}

	err := Retry(ctx, attempts, delay, func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return Retryable(client.Ping(pingCtx).Err())
	})
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisCache{client: client, config: config}, nil
}

// NewRedisCacheWithClient wraps an existing client.
func NewRedisCacheWithClient(client *redis.Client, config RedisConfig) *RedisCache {
	return &RedisCache{client: client, config: config}
}

// Get retrieves a value from the cache.
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, r.config.Prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			observability.Cache().OnCacheMiss(ctx, "redis")
			return nil, false, nil
		}
		return nil, false, err
	}
	observability.Cache().OnCacheHit(ctx, "redis")
	return value, true, nil
}

// Set stores a value in the cache with a TTL.
func (r *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = r.config.DefaultTTL
	}
	if err := r.client.Set(ctx, r.config.Prefix+key, data, ttl).Err(); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, "redis", len(data))
	return nil
}

// Delete removes a value from the cache.
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.config.Prefix+key).Err()
}

// Clear removes every key under the configured prefix and returns how many
// were removed.
func (r *RedisCache) Clear(ctx context.Context) (int, error) {
	count := 0
	iter := r.client.Scan(ctx, 0, r.config.Prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		n, err := r.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return count, err
		}
		count += int(n)
	}
	return count, iter.Err()
}

// Close closes the Redis connection.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// Ensure RedisCache implements Cache.
var _ Cache = (*RedisCache)(nil)
