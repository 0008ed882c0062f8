package storage

import (
	"context"
	"errors"
	"time"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/keys"

	"github.com/redis/go-redis/v9"
)

const DefaultCacheTTL = time.Hour

// RedisCache memoizes third-party lookups per restaurant. Expiry is left to Redis.
type RedisCache struct {
	Client redis.Cmdable
	Keys   keys.Namespace
	TTL    time.Duration
}

func NewRedisCache(client redis.Cmdable, ns keys.Namespace, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisCache{Client: client, Keys: ns, TTL: ttl}
}

func (c *RedisCache) Get(ctx context.Context, id string) (string, error) {
	val, err := c.Client.Get(ctx, c.Keys.Weather(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrCacheMiss
	}
	if err != nil {
		return "", domain.Upstream("GET weather", err)
	}
	return val, nil
}

// Put stores value for ttl, or for the cache default when ttl is not positive.
func (c *RedisCache) Put(ctx context.Context, id, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.TTL
	}
	if err := c.Client.Set(ctx, c.Keys.Weather(id), value, ttl).Err(); err != nil {
		return domain.Upstream("SET weather", err)
	}
	return nil
}
