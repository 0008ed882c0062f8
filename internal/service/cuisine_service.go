package service

import (
	"context"
	"errors"
	"sort"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/storage"

	"golang.org/x/sync/errgroup"
)

type CuisineService struct {
	stores Stores
}

func NewCuisineService(stores Stores) *CuisineService {
	return &CuisineService{stores: stores}
}

func (s *CuisineService) List(ctx context.Context) ([]string, error) {
	cuisines, err := s.stores.Sets.Members(ctx, s.stores.Keys.Cuisines())
	if err != nil {
		return nil, err
	}
	sort.Strings(cuisines)
	return cuisines, nil
}

// Restaurants lists the restaurants serving cuisine, sorted by name.
func (s *CuisineService) Restaurants(ctx context.Context, cuisine string) ([]domain.RestaurantRef, error) {
	ids, err := s.stores.Sets.Members(ctx, s.stores.Keys.Cuisine(cuisine))
	if err != nil {
		return nil, err
	}

	refs := make([]domain.RestaurantRef, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			name, err := s.stores.Entities.GetField(gctx, storage.KindRestaurant, id, fieldName)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			refs[i] = domain.RestaurantRef{ID: id, Name: name}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Name == refs[j].Name {
			return refs[i].ID < refs[j].ID
		}
		return refs[i].Name < refs[j].Name
	})
	return refs, nil
}
