package storage_test

import (
	"context"
	"testing"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankIndex_SeedAndIncrement(t *testing.T) {
	_, client, ns := setup(t)
	rank := storage.NewRankIndex(client, ns)
	ctx := context.Background()

	_, err := rank.Score(ctx, "r1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, rank.Seed(ctx, "r1"))
	score, err := rank.Score(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)

	// Running sum, not an average.
	for _, rating := range []float64{4, 2} {
		_, err = rank.IncrementScore(ctx, "r1", rating)
		require.NoError(t, err)
	}
	score, err = rank.Score(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 6.0, score)

	// Seeding again leaves the score alone.
	require.NoError(t, rank.Seed(ctx, "r1"))
	score, err = rank.Score(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 6.0, score)
}

func TestRankIndex_RangeDescending(t *testing.T) {
	_, client, ns := setup(t)
	rank := storage.NewRankIndex(client, ns)
	ctx := context.Background()

	scores := map[string]float64{"a": 3, "b": 9, "c": 5, "d": 1}
	for id, s := range scores {
		require.NoError(t, rank.Seed(ctx, id))
		_, err := rank.IncrementScore(ctx, id, s)
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		offset   int64
		count    int64
		expected []string
	}{
		{name: "first_page", offset: 0, count: 2, expected: []string{"b", "c"}},
		{name: "second_page", offset: 2, count: 2, expected: []string{"a", "d"}},
		{name: "short_last_page", offset: 3, count: 2, expected: []string{"d"}},
		{name: "past_the_end", offset: 4, count: 2, expected: []string{}},
		{name: "zero_count", offset: 0, count: 0, expected: []string{}},
		{name: "negative_offset", offset: -1, count: 2, expected: []string{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ids, err := rank.RangeDescending(ctx, testCase.offset, testCase.count)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, ids)
		})
	}

	withScores, err := rank.RangeDescendingWithScores(ctx, 0, 1)
	require.NoError(t, err)
	require.Len(t, withScores, 1)
	assert.Equal(t, "b", withScores[0].Member)
	assert.Equal(t, 9.0, withScores[0].Score)
}
