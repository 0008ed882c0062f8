package storage_test

import (
	"context"
	"testing"
	"time"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_GetPut(t *testing.T) {
	stack, client, ns := setup(t)
	cache := storage.NewRedisCache(client, ns, 0)
	ctx := context.Background()

	assert.Equal(t, storage.DefaultCacheTTL, cache.TTL)

	_, err := cache.Get(ctx, "r1")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, cache.Put(ctx, "r1", `{"temp":21}`, 0))

	val, err := cache.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, `{"temp":21}`, val)
	assert.Equal(t, time.Hour, stack.TTL(ns.Weather("r1")))
}

func TestRedisCache_Expiry(t *testing.T) {
	stack, client, ns := setup(t)
	cache := storage.NewRedisCache(client, ns, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "short", "a", 10*time.Second))
	require.NoError(t, cache.Put(ctx, "default", "b", 0))

	stack.FastForward(11 * time.Second)

	_, err := cache.Get(ctx, "short")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	val, err := cache.Get(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, "b", val)

	stack.FastForward(time.Minute)
	_, err = cache.Get(ctx, "default")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestRedisCache_UpstreamFailure(t *testing.T) {
	stack, client, ns := setup(t)
	cache := storage.NewRedisCache(client, ns, 0)
	stack.Close()

	_, err := cache.Get(context.Background(), "r1")
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
