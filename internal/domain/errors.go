package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("already exists")
	ErrInvalidPrecondition = errors.New("invalid precondition")
	ErrUpstream            = errors.New("upstream failure")

	ErrCacheMiss          = fmt.Errorf("cache miss: %w", ErrNotFound)
	ErrInvalidCoordinates = fmt.Errorf("location is not a \"lng,lat\" pair: %w", ErrInvalidPrecondition)
	ErrInvalidRating      = fmt.Errorf("rating must be between %d and %d: %w", MinRating, MaxRating, ErrInvalidPrecondition)
)

// Upstream wraps a store or third-party failure so callers can match ErrUpstream.
func Upstream(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %v", ErrUpstream, op, err)
}
