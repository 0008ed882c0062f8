package storage

import (
	"context"
	"errors"
	"fmt"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/keys"

	"github.com/redis/go-redis/v9"
)

// RankIndex orders restaurants by an additive score. Each review adds its
// rating; the score is never recomputed as a mean.
type RankIndex struct {
	Client redis.Cmdable
	Keys   keys.Namespace
}

func NewRankIndex(client redis.Cmdable, ns keys.Namespace) *RankIndex {
	return &RankIndex{Client: client, Keys: ns}
}

// Seed inserts id at score 0 and leaves an existing score untouched.
func (r *RankIndex) Seed(ctx context.Context, id string) error {
	err := r.Client.ZAddNX(ctx, r.Keys.RestaurantsByRating(), redis.Z{Score: 0, Member: id}).Err()
	if err != nil {
		return domain.Upstream("ZADD rank", err)
	}
	return nil
}

func (r *RankIndex) IncrementScore(ctx context.Context, id string, delta float64) (float64, error) {
	score, err := r.Client.ZIncrBy(ctx, r.Keys.RestaurantsByRating(), delta, id).Result()
	if err != nil {
		return 0, domain.Upstream("ZINCRBY rank", err)
	}
	return score, nil
}

func (r *RankIndex) Score(ctx context.Context, id string) (float64, error) {
	score, err := r.Client.ZScore(ctx, r.Keys.RestaurantsByRating(), id).Result()
	if errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("rank of %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return 0, domain.Upstream("ZSCORE rank", err)
	}
	return score, nil
}

// RangeDescending returns up to count ids by descending score starting at the
// zero-based offset. Each call is independent; scores may move between pages.
func (r *RankIndex) RangeDescending(ctx context.Context, offset, count int64) ([]string, error) {
	page := domain.Page{Offset: offset, Count: count}
	if page.Empty() {
		return []string{}, nil
	}
	ids, err := r.Client.ZRevRange(ctx, r.Keys.RestaurantsByRating(), page.Offset, page.Stop()).Result()
	if err != nil {
		return nil, domain.Upstream("ZREVRANGE rank", err)
	}
	return ids, nil
}

func (r *RankIndex) RangeDescendingWithScores(ctx context.Context, offset, count int64) ([]redis.Z, error) {
	page := domain.Page{Offset: offset, Count: count}
	if page.Empty() {
		return []redis.Z{}, nil
	}
	members, err := r.Client.ZRevRangeWithScores(ctx, r.Keys.RestaurantsByRating(), page.Offset, page.Stop()).Result()
	if err != nil {
		return nil, domain.Upstream("ZREVRANGE rank", err)
	}
	return members, nil
}
