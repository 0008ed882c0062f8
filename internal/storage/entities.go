package storage

import (
	"context"
	"errors"
	"fmt"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/keys"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Kind int

const (
	KindRestaurant Kind = iota
	KindReview
)

func (k Kind) String() string {
	switch k {
	case KindRestaurant:
		return "restaurant"
	case KindReview:
		return "review"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// EntityStore keeps flat entity records as hashes.
type EntityStore struct {
	Client redis.Cmdable
	Keys   keys.Namespace
}

func NewEntityStore(client redis.Cmdable, ns keys.Namespace) *EntityStore {
	return &EntityStore{Client: client, Keys: ns}
}

func (s *EntityStore) Key(kind Kind, id string) string {
	if kind == KindReview {
		return s.Keys.ReviewDetails(id)
	}
	return s.Keys.Restaurant(id)
}

func NewID() string {
	return uuid.NewString()
}

// Create writes fields under a fresh id. Business-key uniqueness is not checked here.
func (s *EntityStore) Create(ctx context.Context, kind Kind, fields map[string]interface{}) (string, error) {
	id := NewID()
	if err := s.CreateWithID(ctx, kind, id, fields); err != nil {
		return "", err
	}
	return id, nil
}

func (s *EntityStore) CreateWithID(ctx context.Context, kind Kind, id string, fields map[string]interface{}) error {
	values := make(map[string]interface{}, len(fields)+1)
	for field, value := range fields {
		values[field] = value
	}
	values["id"] = id

	if err := s.Client.HSet(ctx, s.Key(kind, id), values).Err(); err != nil {
		return domain.Upstream("HSET "+kind.String(), err)
	}
	return nil
}

func (s *EntityStore) Get(ctx context.Context, kind Kind, id string) (map[string]string, error) {
	fields, err := s.Client.HGetAll(ctx, s.Key(kind, id)).Result()
	if err != nil {
		return nil, domain.Upstream("HGETALL "+kind.String(), err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return fields, nil
}

func (s *EntityStore) GetField(ctx context.Context, kind Kind, id, field string) (string, error) {
	val, err := s.Client.HGet(ctx, s.Key(kind, id), field).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%s %s field %s: %w", kind, id, field, domain.ErrNotFound)
	}
	if err != nil {
		return "", domain.Upstream("HGET "+kind.String(), err)
	}
	return val, nil
}

func (s *EntityStore) SetField(ctx context.Context, kind Kind, id, field string, value interface{}) error {
	if err := s.Client.HSet(ctx, s.Key(kind, id), field, value).Err(); err != nil {
		return domain.Upstream("HSET "+kind.String(), err)
	}
	return nil
}

func (s *EntityStore) IncrementField(ctx context.Context, kind Kind, id, field string, delta int64) (int64, error) {
	val, err := s.Client.HIncrBy(ctx, s.Key(kind, id), field, delta).Result()
	if err != nil {
		return 0, domain.Upstream("HINCRBY "+kind.String(), err)
	}
	return val, nil
}

func (s *EntityStore) IncrementFloatField(ctx context.Context, kind Kind, id, field string, delta float64) (float64, error) {
	val, err := s.Client.HIncrByFloat(ctx, s.Key(kind, id), field, delta).Result()
	if err != nil {
		return 0, domain.Upstream("HINCRBYFLOAT "+kind.String(), err)
	}
	return val, nil
}

// Exists is the existence check used by the entity guard.
func (s *EntityStore) Exists(ctx context.Context, kind Kind, id string) (bool, error) {
	n, err := s.Client.Exists(ctx, s.Key(kind, id)).Result()
	if err != nil {
		return false, domain.Upstream("EXISTS "+kind.String(), err)
	}
	return n > 0, nil
}

func (s *EntityStore) Delete(ctx context.Context, kind Kind, id string) (bool, error) {
	n, err := s.Client.Del(ctx, s.Key(kind, id)).Result()
	if err != nil {
		return false, domain.Upstream("DEL "+kind.String(), err)
	}
	return n > 0, nil
}
