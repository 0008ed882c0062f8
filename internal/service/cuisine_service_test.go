package service_test

import (
	"context"
	"testing"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/mocks"
	"restaurant-directory/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuisineService(t *testing.T) {
	f := newFixture(t)
	restaurants := service.NewRestaurantService(f.stores, mocks.NewQRGenerator(t), f.opts)
	svc := service.NewCuisineService(f.stores)
	ctx := context.Background()

	luigi, err := restaurants.Create(ctx, domain.NewRestaurant{Name: "Luigi", Location: "1,1", Cuisines: []string{"italian", "pizza"}})
	require.NoError(t, err)
	alfredo, err := restaurants.Create(ctx, domain.NewRestaurant{Name: "Alfredo", Location: "2,2", Cuisines: []string{"italian"}})
	require.NoError(t, err)
	_, err = restaurants.Create(ctx, domain.NewRestaurant{Name: "Bangkok", Location: "3,3", Cuisines: []string{"thai"}})
	require.NoError(t, err)

	cuisines, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"italian", "pizza", "thai"}, cuisines)

	refs, err := svc.Restaurants(ctx, "italian")
	require.NoError(t, err)
	assert.Equal(t, []domain.RestaurantRef{
		{ID: alfredo.ID, Name: "Alfredo"},
		{ID: luigi.ID, Name: "Luigi"},
	}, refs)

	refs, err = svc.Restaurants(ctx, "french")
	require.NoError(t, err)
	assert.Empty(t, refs)
}
