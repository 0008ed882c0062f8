package storage

import (
	"context"
	"fmt"
	"strings"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/keys"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Fields of the restaurant hash covered by the search index.
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldAvgStars = "avgStars"
)

// SearchIndex is a RediSearch index over restaurant hashes. RediSearch keeps
// it in sync with hash writes once created, so the request path only reads;
// Rebuild belongs to the bootstrap job.
type SearchIndex struct {
	Client redis.Cmdable
	Keys   keys.Namespace
	Logger logrus.FieldLogger
}

func NewSearchIndex(client redis.Cmdable, ns keys.Namespace, logger logrus.FieldLogger) *SearchIndex {
	return &SearchIndex{Client: client, Keys: ns, Logger: logger}
}

func (s *SearchIndex) schema() []*redis.FieldSchema {
	return []*redis.FieldSchema{
		{FieldName: FieldID, FieldType: redis.SearchFieldTypeText},
		{FieldName: FieldName, FieldType: redis.SearchFieldTypeText},
		// Holds the running rating sum, mirrored from the rank score.
		{FieldName: FieldAvgStars, FieldType: redis.SearchFieldTypeNumeric, Sortable: true},
	}
}

// Rebuild drops the index if present and creates it again. Existing hashes
// are picked up by the initial scan. Documents are not deleted.
func (s *SearchIndex) Rebuild(ctx context.Context) error {
	index := s.Keys.SearchIndex()

	if err := s.Client.FTDropIndex(ctx, index).Err(); err != nil {
		if !isUnknownIndex(err) {
			return domain.Upstream("FT.DROPINDEX", err)
		}
		s.Logger.WithField("index", index).Info("search index absent, nothing to drop")
	}

	opts := &redis.FTCreateOptions{
		OnHash: true,
		Prefix: []interface{}{s.Keys.RestaurantPrefix()},
	}
	if err := s.Client.FTCreate(ctx, index, opts, s.schema()...).Err(); err != nil {
		return domain.Upstream("FT.CREATE", err)
	}
	s.Logger.WithField("index", index).Info("search index created")
	return nil
}

type SearchOptions struct {
	SortByRating bool
	Offset       int
	Limit        int
}

// Search runs query as-is in the native RediSearch grammar.
func (s *SearchIndex) Search(ctx context.Context, query string, opts SearchOptions) ([]domain.SearchHit, error) {
	args := &redis.FTSearchOptions{
		LimitOffset: opts.Offset,
		Limit:       opts.Limit,
	}
	if opts.SortByRating {
		args.SortBy = []redis.FTSearchSortBy{{FieldName: FieldAvgStars, Desc: true}}
	}

	res, err := s.Client.FTSearchWithArgs(ctx, s.Keys.SearchIndex(), query, args).Result()
	if err != nil {
		return nil, domain.Upstream("FT.SEARCH", err)
	}

	hits := make([]domain.SearchHit, 0, len(res.Docs))
	for _, doc := range res.Docs {
		hits = append(hits, domain.SearchHit{Key: doc.ID, Fields: doc.Fields})
	}
	return hits, nil
}

// NameQuery matches term against the name field. Every token of a
// multi-word term is scoped to the field.
func NameQuery(term string) string {
	return fmt.Sprintf("@%s:(%s)", FieldName, strings.TrimSpace(term))
}

func isUnknownIndex(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unknown index") || strings.Contains(msg, "no such index")
}
