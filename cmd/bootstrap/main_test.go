package main

import (
	"context"
	"errors"
	"testing"

	"restaurant-directory/config"
	"restaurant-directory/internal/keys"
	"restaurant-directory/internal/storage"
	"restaurant-directory/internal/storage/storetest"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

type brokenIndex struct{}

func (brokenIndex) Rebuild(context.Context) error { return errors.New("ERR unknown command 'FT.CREATE'") }

func setupJobs(t *testing.T) (*storetest.Stack, keys.Namespace, connectFunc) {
	stack := storetest.Run(t)
	client := stack.Client(t)
	ns := keys.New("test-directory")
	logger, _ := logtest.NewNullLogger()

	connect := func(*cli.Context) (*jobs, func(), error) {
		return &jobs{
			filter: storage.NewRedisBloomFilter(client, ns),
			index:  storage.NewSearchIndex(client, ns, logger),
			logger: logger,
		}, func() {}, nil
	}
	return stack, ns, connect
}

func TestBootstrap_All(t *testing.T) {
	stack, ns, connect := setupJobs(t)
	cfg := &config.Config{BloomCapacity: 1000, BloomErrorRate: 0.01}
	ctx := context.Background()

	require.NoError(t, newApp(cfg, connect).Run([]string{"bootstrap", "all"}))
	assert.True(t, stack.HasIndex(ns.SearchIndex()))

	// Running again is safe: the index is dropped and recreated.
	require.NoError(t, newApp(cfg, connect).Run([]string{"bootstrap", "rebuild-index"}))
	assert.True(t, stack.HasIndex(ns.SearchIndex()))

	j, _, err := connect(nil)
	require.NoError(t, err)
	require.NoError(t, j.filter.Add(ctx, "luigi:rome"))

	require.NoError(t, newApp(cfg, connect).Run([]string{"bootstrap", "--capacity", "50", "reserve-filter"}))
	seen, err := j.filter.Exists(ctx, "luigi:rome")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestBootstrap_AllReportsEveryFailure(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	connect := func(*cli.Context) (*jobs, func(), error) {
		return &jobs{
			filter: storage.NewLocalBloomFilter(),
			index:  brokenIndex{},
			logger: logger,
		}, func() {}, nil
	}

	err := newApp(&config.Config{}, connect).Run([]string{"bootstrap", "all"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Contains(t, err.Error(), "FT.CREATE")
}
