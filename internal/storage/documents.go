package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"restaurant-directory/internal/domain"

	"github.com/redis/go-redis/v9"
)

const rootPath = "$"

// DocumentStore keeps nested documents with RedisJSON.
type DocumentStore struct {
	Client redis.Cmdable
}

func NewDocumentStore(client redis.Cmdable) *DocumentStore {
	return &DocumentStore{Client: client}
}

// SetDocument replaces the whole document at key.
func (s *DocumentStore) SetDocument(ctx context.Context, key string, doc interface{}) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := s.Client.JSONSet(ctx, key, rootPath, string(payload)).Err(); err != nil {
		return domain.Upstream("JSON.SET", err)
	}
	return nil
}

// GetDocument decodes the document at key into out.
func (s *DocumentStore) GetDocument(ctx context.Context, key string, out interface{}) error {
	raw, err := s.Client.JSONGet(ctx, key).Result()
	if errors.Is(err, redis.Nil) || (err == nil && raw == "") {
		return fmt.Errorf("document %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Upstream("JSON.GET", err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", key, err)
	}
	return nil
}

// AppendToList appends element to the array listField of the document at key.
// A missing document is created holding just that array; an existing one
// keeps its other fields.
func (s *DocumentStore) AppendToList(ctx context.Context, key, listField string, element interface{}) error {
	elem, err := json.Marshal(element)
	if err != nil {
		return fmt.Errorf("failed to encode list element: %w", err)
	}

	seed, err := json.Marshal(map[string][]json.RawMessage{listField: {elem}})
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	err = s.Client.JSONSetMode(ctx, key, rootPath, string(seed), "NX").Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, redis.Nil) {
		return domain.Upstream("JSON.SET NX", err)
	}

	// NX was not applied: the document exists. A missing or non-array field
	// answers [nil], which go-redis reports as redis.Nil.
	lengths, err := s.Client.JSONArrAppend(ctx, key, listPath(listField), string(elem)).Result()
	if errors.Is(err, redis.Nil) || (err == nil && len(lengths) == 0) {
		return fmt.Errorf("document %s has no %q array: %w", key, listField, domain.ErrInvalidPrecondition)
	}
	if err != nil {
		return domain.Upstream("JSON.ARRAPPEND", err)
	}
	return nil
}

// RemoveFromList deletes the elements of listField whose "id" equals id and
// returns how many were removed.
func (s *DocumentStore) RemoveFromList(ctx context.Context, key, listField, id string) (int64, error) {
	path := fmt.Sprintf("%s[?(@.id==%s)]", listPath(listField), strconv.Quote(id))
	n, err := s.Client.JSONDel(ctx, key, path).Result()
	if err != nil {
		return 0, domain.Upstream("JSON.DEL", err)
	}
	return n, nil
}

func listPath(field string) string {
	return rootPath + "." + field
}
