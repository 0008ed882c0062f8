package storage_test

import (
	"context"
	"testing"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityStore_Key(t *testing.T) {
	_, client, ns := setup(t)
	store := storage.NewEntityStore(client, ns)

	assert.Equal(t, ns.Restaurant("x"), store.Key(storage.KindRestaurant, "x"))
	assert.Equal(t, ns.ReviewDetails("x"), store.Key(storage.KindReview, "x"))
	assert.Equal(t, "restaurant", storage.KindRestaurant.String())
	assert.Equal(t, "review", storage.KindReview.String())
	assert.Equal(t, "kind(7)", storage.Kind(7).String())
}

func TestEntityStore_CreateAndGet(t *testing.T) {
	stack, client, ns := setup(t)
	store := storage.NewEntityStore(client, ns)
	ctx := context.Background()

	id, err := store.Create(ctx, storage.KindRestaurant, map[string]interface{}{
		"name":     "Luigi",
		"location": "-73.98,40.75",
	})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	fields, err := store.Get(ctx, storage.KindRestaurant, id)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": id, "name": "Luigi", "location": "-73.98,40.75"}, fields)
	assert.True(t, stack.Exists(ns.Restaurant(id)))

	second, err := store.Create(ctx, storage.KindRestaurant, map[string]interface{}{"name": "Luigi"})
	require.NoError(t, err)
	assert.NotEqual(t, id, second)
}

func TestEntityStore_GetMissing(t *testing.T) {
	_, client, ns := setup(t)
	store := storage.NewEntityStore(client, ns)
	ctx := context.Background()

	_, err := store.Get(ctx, storage.KindRestaurant, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.GetField(ctx, storage.KindReview, "nope", "text")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEntityStore_Fields(t *testing.T) {
	_, client, ns := setup(t)
	store := storage.NewEntityStore(client, ns)
	ctx := context.Background()

	require.NoError(t, store.CreateWithID(ctx, storage.KindRestaurant, "r1", map[string]interface{}{"name": "Luigi"}))

	views, err := store.IncrementField(ctx, storage.KindRestaurant, "r1", "viewCount", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), views)
	views, err = store.IncrementField(ctx, storage.KindRestaurant, "r1", "viewCount", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), views)

	total, err := store.IncrementFloatField(ctx, storage.KindRestaurant, "r1", "totalStars", 4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, total)

	require.NoError(t, store.SetField(ctx, storage.KindRestaurant, "r1", "avgStars", 4))
	val, err := store.GetField(ctx, storage.KindRestaurant, "r1", "avgStars")
	require.NoError(t, err)
	assert.Equal(t, "4", val)
}

func TestEntityStore_ExistsDelete(t *testing.T) {
	_, client, ns := setup(t)
	store := storage.NewEntityStore(client, ns)
	ctx := context.Background()

	ok, err := store.Exists(ctx, storage.KindReview, "v1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.CreateWithID(ctx, storage.KindReview, "v1", map[string]interface{}{"text": "ok"}))
	ok, err = store.Exists(ctx, storage.KindReview, "v1")
	require.NoError(t, err)
	assert.True(t, ok)

	deleted, err := store.Delete(ctx, storage.KindReview, "v1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Delete(ctx, storage.KindReview, "v1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
