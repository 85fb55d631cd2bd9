package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	require.NoError(t, cache.Set(ctx, "k1", "v1", 0))

	got, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	exists, err := cache.Exists(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryCacheMissReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	got, err := cache.Get(ctx, "absent")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryCacheTTLExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	require.NoError(t, cache.Set(ctx, "k1", "v1", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	got, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Empty(t, got, "expired entry must read as a miss")

	exists, err := cache.Exists(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	require.NoError(t, cache.Set(ctx, "k1", "v1", 0))
	require.NoError(t, cache.Delete(ctx, "k1"))

	got, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryCacheSweep(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	require.NoError(t, cache.Set(ctx, "stale", "v", time.Millisecond))
	require.NoError(t, cache.Set(ctx, "fresh", "v", time.Minute))
	require.NoError(t, cache.Set(ctx, "forever", "v", 0))
	time.Sleep(5 * time.Millisecond)

	assert.Equal(t, 1, cache.Sweep())

	got, err := cache.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
