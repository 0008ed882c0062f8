package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"restaurant-directory/internal/domain"

	"github.com/willf/bloom"
)

var errFilterNotReserved = fmt.Errorf("dedup filter used before Reserve: %w", domain.ErrInvalidPrecondition)

// LocalBloomFilter keeps the dedup filter in process memory, for Redis
// deployments without the RedisBloom module. Its state is lost on restart and
// is not shared between replicas.
type LocalBloomFilter struct {
	mu     sync.RWMutex
	filter *bloom.BloomFilter
}

func NewLocalBloomFilter() *LocalBloomFilter {
	return &LocalBloomFilter{}
}

func (f *LocalBloomFilter) Reserve(_ context.Context, capacity int64, errorRate float64) error {
	if capacity <= 0 || errorRate <= 0 || errorRate >= 1 {
		return errors.New("bloom filter needs a positive capacity and an error rate in (0,1)")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter = bloom.NewWithEstimates(uint(capacity), errorRate)
	return nil
}

func (f *LocalBloomFilter) Exists(_ context.Context, fingerprint string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.filter == nil {
		return false, errFilterNotReserved
	}
	return f.filter.TestString(fingerprint), nil
}

func (f *LocalBloomFilter) Add(_ context.Context, fingerprint string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.filter == nil {
		return errFilterNotReserved
	}
	f.filter.AddString(fingerprint)
	return nil
}

var _ DedupFilter = (*LocalBloomFilter)(nil)
