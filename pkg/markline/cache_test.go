package markline_test

import (
	"context"
	"testing"
	"time"

	"github.com/markline-io/markline/pkg/markline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := markline.NewMemoryCache(10)
	ctx := context.Background()

	entry := &markline.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	retrieved, err := cache.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
}

func TestMemoryCache_GetNonExistent(t *testing.T) {
	t.Parallel()

	cache := markline.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, markline.ErrCacheKeyNotFound)
}

func TestMemoryCache_GetExpired(t *testing.T) {
	t.Parallel()

	cache := markline.NewMemoryCache(10)
	ctx := context.Background()

	entry := &markline.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	}

	err := cache.Set(ctx, "key1", entry)
	require.NoError(t, err)

	_, err = cache.Get(ctx, "key1")
	require.Error(t, err)
	assert.ErrorIs(t, err, markline.ErrCacheEntryExpired)
	assert.False(t, cache.Has(ctx, "key1"))
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	t.Parallel()

	cache := markline.NewMemoryCache(10)
	ctx := context.Background()

	entry := &markline.CacheEntry{
		Data:      []byte("test data"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	require.NoError(t, cache.Set(ctx, "key1", entry))
	require.NoError(t, cache.Set(ctx, "key2", entry))
	assert.True(t, cache.Has(ctx, "key1"))

	require.NoError(t, cache.Delete(ctx, "key1"))
	assert.False(t, cache.Has(ctx, "key1"))
	assert.True(t, cache.Has(ctx, "key2"))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "key2"))
}

func TestMemoryCache_EvictsWhenFull(t *testing.T) {
	t.Parallel()

	cache := markline.NewMemoryCache(2)
	ctx := context.Background()

	entry := &markline.CacheEntry{
		Data:      []byte("x"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	require.NoError(t, cache.Set(ctx, "a", entry))
	require.NoError(t, cache.Set(ctx, "b", entry))
	require.NoError(t, cache.Set(ctx, "c", entry))

	held := 0

	for _, key := range []string{"a", "b", "c"} {
		if cache.Has(ctx, key) {
			held++
		}
	}

	assert.Equal(t, 2, held)
	assert.True(t, cache.Has(ctx, "c"))
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := markline.NewNoOpCache()
	ctx := context.Background()

	entry := &markline.CacheEntry{
		Data:      []byte("x"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	require.NoError(t, cache.Set(ctx, "key", entry))
	assert.False(t, cache.Has(ctx, "key"))

	_, err := cache.Get(ctx, "key")
	assert.ErrorIs(t, err, markline.ErrCacheDisabled)
	assert.NoError(t, cache.Delete(ctx, "key"))
	assert.NoError(t, cache.Clear(ctx))
}
