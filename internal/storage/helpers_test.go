package storage_test

import (
	"testing"

	"restaurant-directory/internal/keys"
	"restaurant-directory/internal/storage/storetest"

	"github.com/redis/go-redis/v9"
)

const testRoot = "test-directory"

func setup(t *testing.T) (*storetest.Stack, *redis.Client, keys.Namespace) {
	t.Helper()
	stack := storetest.Run(t)
	return stack, stack.Client(t), keys.New(testRoot)
}
