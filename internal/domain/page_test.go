package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		limit    int
		expected Page
	}{
		{"first page", 1, 10, Page{Offset: 0, Count: 10}},
		{"third page", 3, 5, Page{Offset: 10, Count: 5}},
		{"zero page falls back", 0, 5, Page{Offset: 0, Count: 5}},
		{"zero limit falls back", 2, 0, Page{Offset: 10, Count: 10}},
		{"limit capped", 1, 1000, Page{Offset: 0, Count: MaxPageSize}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, PageFromQuery(testCase.page, testCase.limit))
		})
	}
}

func TestPage_Stop(t *testing.T) {
	assert.Equal(t, int64(14), Page{Offset: 10, Count: 5}.Stop())
	assert.True(t, Page{Offset: 0, Count: 0}.Empty())
	assert.True(t, Page{Offset: -1, Count: 3}.Empty())
}

func TestErrorTaxonomy(t *testing.T) {
	assert.True(t, errors.Is(ErrCacheMiss, ErrNotFound))
	assert.True(t, errors.Is(ErrInvalidCoordinates, ErrInvalidPrecondition))
	assert.True(t, errors.Is(ErrInvalidRating, ErrInvalidPrecondition))

	err := Upstream("HGETALL", errors.New("connection refused"))
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.Contains(t, err.Error(), "connection refused")
	assert.NoError(t, Upstream("noop", nil))
}
