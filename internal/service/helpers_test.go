package service_test

import (
	"context"
	"testing"

	"restaurant-directory/internal/keys"
	"restaurant-directory/internal/metrics"
	"restaurant-directory/internal/service"
	"restaurant-directory/internal/storage"
	"restaurant-directory/internal/storage/storetest"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	stack   *storetest.Stack
	stores  service.Stores
	ns      keys.Namespace
	metrics *metrics.Metrics
	opts    service.Options
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	stack := storetest.Run(t)
	client := stack.Client(t)
	ns := keys.New("test-directory")
	logger, _ := logtest.NewNullLogger()

	dedup := storage.NewRedisBloomFilter(client, ns)
	require.NoError(t, dedup.Reserve(context.Background(), 1000, 0.001))

	m := metrics.New()
	return &fixture{
		stack:   stack,
		stores:  service.NewRedisStores(client, ns, dedup, logger),
		ns:      ns,
		metrics: m,
		opts:    service.Options{Logger: logger, Metrics: m},
	}
}
