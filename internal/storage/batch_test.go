package storage_test

import (
	"context"
	"errors"
	"testing"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/metrics"
	"restaurant-directory/internal/storage"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_AllSucceed(t *testing.T) {
	batch := storage.NewBatch(nil, nil)
	for _, label := range []string{"b", "a", "c"} {
		batch.Add(label, func(context.Context) error { return nil })
	}

	result := batch.Run(context.Background())
	assert.NoError(t, result.Err())
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, []string{"a", "b", "c"}, result.Succeeded)
	assert.Empty(t, result.Failed)
}

func TestBatch_PartialFailure(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	m := metrics.New()
	boom := errors.New("connection reset")

	batch := storage.NewBatch(logger, m)
	batch.Add("hset:restaurant", func(context.Context) error { return nil })
	batch.Add("sadd:cuisine", func(context.Context) error { return boom })
	batch.Add("zadd:rank", func(context.Context) error { return nil })

	result := batch.Run(context.Background())

	err := result.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.ErrorIs(t, err, boom)

	var batchErr *storage.BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, []string{"sadd:cuisine"}, batchErr.Failed)
	assert.Contains(t, err.Error(), "sadd:cuisine")

	// Successful writes are reported, not rolled back.
	assert.Equal(t, []string{"hset:restaurant", "zadd:rank"}, result.Succeeded)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BatchOpFailures.WithLabelValues("sadd:cuisine")))
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestBatch_Empty(t *testing.T) {
	result := storage.NewBatch(nil, nil).Run(context.Background())
	assert.NoError(t, result.Err())
	assert.Zero(t, result.Total)
}
