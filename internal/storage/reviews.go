package storage

import (
	"context"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/keys"

	"github.com/redis/go-redis/v9"
)

// ReviewList keeps review ids per restaurant in submission order.
type ReviewList struct {
	Client redis.Cmdable
	Keys   keys.Namespace
}

func NewReviewList(client redis.Cmdable, ns keys.Namespace) *ReviewList {
	return &ReviewList{Client: client, Keys: ns}
}

// Push appends reviewID and returns the new list length.
func (l *ReviewList) Push(ctx context.Context, restaurantID, reviewID string) (int64, error) {
	n, err := l.Client.RPush(ctx, l.Keys.Reviews(restaurantID), reviewID).Result()
	if err != nil {
		return 0, domain.Upstream("RPUSH reviews", err)
	}
	return n, nil
}

func (l *ReviewList) Range(ctx context.Context, restaurantID string, page domain.Page) ([]string, error) {
	if page.Empty() {
		return []string{}, nil
	}
	ids, err := l.Client.LRange(ctx, l.Keys.Reviews(restaurantID), page.Offset, page.Stop()).Result()
	if err != nil {
		return nil, domain.Upstream("LRANGE reviews", err)
	}
	return ids, nil
}

func (l *ReviewList) Len(ctx context.Context, restaurantID string) (int64, error) {
	n, err := l.Client.LLen(ctx, l.Keys.Reviews(restaurantID)).Result()
	if err != nil {
		return 0, domain.Upstream("LLEN reviews", err)
	}
	return n, nil
}

// Remove drops every occurrence of reviewID and returns how many were removed.
func (l *ReviewList) Remove(ctx context.Context, restaurantID, reviewID string) (int64, error) {
	n, err := l.Client.LRem(ctx, l.Keys.Reviews(restaurantID), 0, reviewID).Result()
	if err != nil {
		return 0, domain.Upstream("LREM reviews", err)
	}
	return n, nil
}
