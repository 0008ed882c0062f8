package storage

import (
	"context"
	"strings"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/keys"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultBloomCapacity  int64   = 1000000
	DefaultBloomErrorRate float64 = 0.0001
)

// DedupFilter is a probabilistic set: false positives are possible at the
// reserved rate, false negatives are not. Entries are never removed.
type DedupFilter interface {
	Reserve(ctx context.Context, capacity int64, errorRate float64) error
	Exists(ctx context.Context, fingerprint string) (bool, error)
	Add(ctx context.Context, fingerprint string) error
}

// Fingerprint derives the dedup entry of a restaurant from its business key.
func Fingerprint(name, location string) string {
	return normalize(name) + ":" + normalize(location)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RedisBloomFilter is backed by a RedisBloom filter key.
type RedisBloomFilter struct {
	Client redis.Cmdable
	Keys   keys.Namespace
}

func NewRedisBloomFilter(client redis.Cmdable, ns keys.Namespace) *RedisBloomFilter {
	return &RedisBloomFilter{Client: client, Keys: ns}
}

// Reserve drops the current filter, if any, and creates an empty one.
func (f *RedisBloomFilter) Reserve(ctx context.Context, capacity int64, errorRate float64) error {
	key := f.Keys.BloomRestaurants()
	if err := f.Client.Del(ctx, key).Err(); err != nil {
		return domain.Upstream("DEL bloom", err)
	}
	if err := f.Client.BFReserve(ctx, key, errorRate, capacity).Err(); err != nil {
		return domain.Upstream("BF.RESERVE", err)
	}
	return nil
}

func (f *RedisBloomFilter) Exists(ctx context.Context, fingerprint string) (bool, error) {
	seen, err := f.Client.BFExists(ctx, f.Keys.BloomRestaurants(), fingerprint).Result()
	if err != nil {
		return false, domain.Upstream("BF.EXISTS", err)
	}
	return seen, nil
}

func (f *RedisBloomFilter) Add(ctx context.Context, fingerprint string) error {
	if err := f.Client.BFAdd(ctx, f.Keys.BloomRestaurants(), fingerprint).Err(); err != nil {
		return domain.Upstream("BF.ADD", err)
	}
	return nil
}

var _ DedupFilter = (*RedisBloomFilter)(nil)
