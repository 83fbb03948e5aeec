package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopscout/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return NewRedisCacheFromClient(client), server
}

func TestRedisCache_SetAndGet(t *testing.T) {
	cache, _ := newTestRedisCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "search:laptop", []byte(`[{"name":"x"}]`), 1*time.Minute)
	require.NoError(t, err)

	got, err := cache.Get(ctx, "search:laptop")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"name":"x"}]`), got)
}

func TestRedisCache_GetMiss(t *testing.T) {
	cache, _ := newTestRedisCache(t)

	_, err := cache.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrCacheMiss), "got error %v", err)
}

func TestRedisCache_TTLExpiry(t *testing.T) {
	cache, server := newTestRedisCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "short", []byte("v"), 30*time.Second)
	require.NoError(t, err)

	// miniredis only expires keys when the clock is advanced explicitly
	server.FastForward(31 * time.Second)

	_, err = cache.Get(ctx, "short")
	assert.True(t, errors.Is(err, domain.ErrCacheMiss), "got error %v", err)
}

func TestRedisCache_Delete(t *testing.T) {
	cache, _ := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), 1*time.Minute))
	require.NoError(t, cache.Delete(ctx, "k"))

	_, err := cache.Get(ctx, "k")
	assert.True(t, errors.Is(err, domain.ErrCacheMiss), "got error %v", err)
}

func TestRedisCache_Exists(t *testing.T) {
	cache, _ := newTestRedisCache(t)
	ctx := context.Background()

	exists, err := cache.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), 1*time.Minute))

	exists, err = cache.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRedisCache_ServerDown(t *testing.T) {
	cache, server := newTestRedisCache(t)
	ctx := context.Background()

	server.Close()

	_, err := cache.Get(ctx, "k")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheUnavailable), "got error %v", err)

	err = cache.Set(ctx, "k", []byte("v"), 1*time.Minute)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheUnavailable), "got error %v", err)
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	_, err := NewRedisCache("127.0.0.1:1", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCacheUnavailable), "got error %v", err)
}
