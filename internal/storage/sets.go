package storage

import (
	"context"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/keys"

	"github.com/redis/go-redis/v9"
)

// SetIndex maintains unordered membership indices.
type SetIndex struct {
	Client redis.Cmdable
	Keys   keys.Namespace
}

func NewSetIndex(client redis.Cmdable, ns keys.Namespace) *SetIndex {
	return &SetIndex{Client: client, Keys: ns}
}

func (s *SetIndex) AddMembership(ctx context.Context, setKey, member string) error {
	if err := s.Client.SAdd(ctx, setKey, member).Err(); err != nil {
		return domain.Upstream("SADD", err)
	}
	return nil
}

// Members returns the set in no particular order.
func (s *SetIndex) Members(ctx context.Context, setKey string) ([]string, error) {
	members, err := s.Client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, domain.Upstream("SMEMBERS", err)
	}
	return members, nil
}

// AddCuisine queues the three coupled memberships of one declared cuisine:
// the global catalog, cuisine -> restaurants and restaurant -> cuisines.
func (s *SetIndex) AddCuisine(b *Batch, restaurantID, cuisine string) {
	b.Add("sadd:cuisines", func(ctx context.Context) error {
		return s.AddMembership(ctx, s.Keys.Cuisines(), cuisine)
	})
	b.Add("sadd:cuisine", func(ctx context.Context) error {
		return s.AddMembership(ctx, s.Keys.Cuisine(cuisine), restaurantID)
	})
	b.Add("sadd:restaurant_cuisines", func(ctx context.Context) error {
		return s.AddMembership(ctx, s.Keys.RestaurantCuisines(restaurantID), cuisine)
	})
}
