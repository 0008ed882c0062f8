package storage_test

import (
	"context"
	"testing"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	assert.Equal(t, "luigi:-73.98,40.75", storage.Fingerprint("  Luigi ", "-73.98,40.75"))
	assert.Equal(t, storage.Fingerprint("LUIGI", "Rome"), storage.Fingerprint("luigi", " rome"))
	assert.NotEqual(t, storage.Fingerprint("a", "bc"), storage.Fingerprint("ab", "c"))
}

func TestDedupFilters(t *testing.T) {
	_, client, ns := setup(t)

	filters := map[string]storage.DedupFilter{
		"redis": storage.NewRedisBloomFilter(client, ns),
		"local": storage.NewLocalBloomFilter(),
	}

	for name, filter := range filters {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, filter.Reserve(ctx, storage.DefaultBloomCapacity, storage.DefaultBloomErrorRate))

			fp := storage.Fingerprint("Luigi", "Rome")
			seen, err := filter.Exists(ctx, fp)
			require.NoError(t, err)
			assert.False(t, seen)

			require.NoError(t, filter.Add(ctx, fp))
			seen, err = filter.Exists(ctx, fp)
			require.NoError(t, err)
			assert.True(t, seen)

			// Reserving again starts from an empty filter.
			require.NoError(t, filter.Reserve(ctx, 1000, 0.01))
			seen, err = filter.Exists(ctx, fp)
			require.NoError(t, err)
			assert.False(t, seen)
		})
	}
}

func TestLocalBloomFilter_NotReserved(t *testing.T) {
	filter := storage.NewLocalBloomFilter()
	ctx := context.Background()

	_, err := filter.Exists(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidPrecondition)
	assert.ErrorIs(t, filter.Add(ctx, "x"), domain.ErrInvalidPrecondition)

	assert.Error(t, filter.Reserve(ctx, 0, 0.01))
	assert.Error(t, filter.Reserve(ctx, 10, 1))
}
