package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cfg := DefaultRedisConfig()
	c := NewRedisCacheWithClient(client, cfg)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestNewRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := DefaultRedisConfig()
	cfg.Addr = mr.Addr()
	c, err := NewRedisCache(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, c)
	defer c.Close()
}

func TestNewRedisCache_ConnectionError(t *testing.T) {
	cfg := DefaultRedisConfig()
	cfg.Addr = "localhost:99999"
	cfg.PingAttempts = 2
	cfg.PingDelay = time.Millisecond

	_, err := NewRedisCache(context.Background(), cfg)
	assert.Error(t, err)
}

func TestRedisCache_SetAndGet(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "render:abc", []byte("<svg/>"), time.Minute))

	data, hit, err := c.Get(ctx, "render:abc")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("<svg/>"), data)

	assert.True(t, mr.Exists("fontroute:render:abc"))
	assert.Equal(t, time.Minute, mr.TTL("fontroute:render:abc"))
}

func TestRedisCache_GetMiss(t *testing.T) {
	c, _ := setupTestRedis(t)

	data, hit, err := c.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, data)
}

func TestRedisCache_DefaultTTL(t *testing.T) {
	c, mr := setupTestRedis(t)

	require.NoError(t, c.Set(context.Background(), "k", []byte("v"), 0))
	assert.Equal(t, 24*time.Hour, mr.TTL("fontroute:k"))
}

func TestRedisCache_Expiry(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	mr.FastForward(2 * time.Second)

	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCache_Delete(t *testing.T) {
	c, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	_, hit, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, c.Delete(ctx, "never-set"))
}

func TestRedisCache_Clear(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, c.Set(ctx, k, []byte(k), time.Minute))
	}
	require.NoError(t, mr.Set("other:key", "kept"))

	n, err := c.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, mr.Exists("other:key"))
	assert.False(t, mr.Exists("fontroute:a"))
}
