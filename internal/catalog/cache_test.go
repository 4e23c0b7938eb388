package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	t.Parallel()
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()

	_, ok := c.Get(ctx, "search:cotton")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "search:cotton", []byte(`[{"id":"1"}]`)))

	got, ok := c.Get(ctx, "search:cotton")
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"1"}]`), got)
}

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()
	c := NewMemoryCache(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	time.Sleep(25 * time.Millisecond)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCache_Overwrite(t *testing.T) {
	t.Parallel()
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("one")))
	require.NoError(t, c.Set(ctx, "k", []byte("two")))

	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("two"), got)
}

func TestNewCache_FallsBackToMemory(t *testing.T) {
	t.Parallel()

	_, isMemory := NewCache("", time.Minute).(*MemoryCache)
	assert.True(t, isMemory)

	_, isRedis := NewCache("localhost:6379", time.Minute).(*RedisCache)
	assert.True(t, isRedis)
}
