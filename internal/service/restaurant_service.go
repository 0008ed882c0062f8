package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/metrics"
	"restaurant-directory/internal/storage"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Restaurant hash fields.
const (
	fieldName        = storage.FieldName
	fieldLocation    = "location"
	fieldViewCount   = "viewCount"
	fieldReviewCount = "reviewCount"
	fieldTotalStars  = "totalStars"
	// avgStars carries the running rating sum, the same value as the rank
	// score. The name is what the search index sorts on.
	fieldAvgStars = storage.FieldAvgStars
)

type RestaurantService struct {
	stores  Stores
	qr      QRGenerator
	logger  logrus.FieldLogger
	metrics *metrics.Metrics
	opts    Options
}

func NewRestaurantService(stores Stores, qr QRGenerator, opts Options) *RestaurantService {
	return &RestaurantService{
		stores:  stores,
		qr:      qr,
		logger:  opts.logger(),
		metrics: opts.Metrics,
		opts:    opts,
	}
}

// Create rejects a name and location pair the dedup filter has seen, then
// writes the record, rank entry, filter entry and cuisine memberships
// concurrently. The check and the writes are not atomic: two concurrent
// creations of the same pair can both pass the check.
func (s *RestaurantService) Create(ctx context.Context, in domain.NewRestaurant) (*domain.Restaurant, error) {
	name, location := strings.TrimSpace(in.Name), strings.TrimSpace(in.Location)
	if name == "" || location == "" {
		return nil, fmt.Errorf("name and location are required: %w", domain.ErrInvalidPrecondition)
	}

	fingerprint := storage.Fingerprint(name, location)
	seen, err := s.stores.Dedup.Exists(ctx, fingerprint)
	if err != nil {
		return nil, err
	}
	if seen {
		s.metrics.DedupConflict()
		return nil, fmt.Errorf("restaurant %q at %q: %w", name, location, domain.ErrConflict)
	}

	restaurant := &domain.Restaurant{
		ID:       storage.NewID(),
		Name:     name,
		Location: location,
		Cuisines: uniqueCuisines(in.Cuisines),
	}
	id := restaurant.ID

	batch := s.opts.batch()
	batch.Add("hset:restaurant", func(ctx context.Context) error {
		return s.stores.Entities.CreateWithID(ctx, storage.KindRestaurant, id, map[string]interface{}{
			fieldName:        name,
			fieldLocation:    location,
			fieldViewCount:   0,
			fieldReviewCount: 0,
			fieldTotalStars:  0,
			fieldAvgStars:    0,
		})
	})
	batch.Add("zadd:rank", func(ctx context.Context) error {
		return s.stores.Rank.Seed(ctx, id)
	})
	batch.Add("bf.add:restaurant", func(ctx context.Context) error {
		return s.stores.Dedup.Add(ctx, fingerprint)
	})
	for _, cuisine := range restaurant.Cuisines {
		s.stores.Sets.AddCuisine(batch, id, cuisine)
	}

	if err := batch.Run(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to create restaurant %s: %w", id, err)
	}

	s.logger.WithFields(logrus.Fields{
		"restaurant_id": id,
		"cuisines":      len(restaurant.Cuisines),
	}).Info("restaurant created")
	return restaurant, nil
}

func (s *RestaurantService) Exists(ctx context.Context, id string) (bool, error) {
	return s.stores.Entities.Exists(ctx, storage.KindRestaurant, id)
}

// Get counts a view and reads the restaurant with its cuisines and score.
func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	ok, err := s.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("restaurant %s: %w", id, domain.ErrNotFound)
	}

	var (
		views    int64
		fields   map[string]string
		cuisines []string
		score    float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		views, err = s.stores.Entities.IncrementField(gctx, storage.KindRestaurant, id, fieldViewCount, 1)
		return err
	})
	g.Go(func() error {
		var err error
		fields, err = s.stores.Entities.Get(gctx, storage.KindRestaurant, id)
		return err
	})
	g.Go(func() error {
		var err error
		cuisines, err = s.stores.Sets.Members(gctx, s.stores.Keys.RestaurantCuisines(id))
		return err
	})
	g.Go(func() error {
		var err error
		score, err = s.stores.Rank.Score(gctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	restaurant := restaurantFromFields(id, fields)
	restaurant.ViewCount = views
	restaurant.Cuisines = cuisines
	restaurant.RatingScore = score
	return restaurant, nil
}

// ListByRating returns one page of restaurants ordered by descending rank
// score. Ids whose record is gone are skipped.
func (s *RestaurantService) ListByRating(ctx context.Context, page domain.Page) ([]domain.Restaurant, error) {
	members, err := s.stores.Rank.RangeDescendingWithScores(ctx, page.Offset, page.Count)
	if err != nil {
		return nil, err
	}

	found := make([]*domain.Restaurant, len(members))
	g, gctx := errgroup.WithContext(ctx)
	for i, member := range members {
		id, score := fmt.Sprint(member.Member), member.Score
		g.Go(func() error {
			fields, err := s.stores.Entities.Get(gctx, storage.KindRestaurant, id)
			if errors.Is(err, domain.ErrNotFound) {
				s.logger.WithField("restaurant_id", id).Warn("ranked restaurant has no record")
				return nil
			}
			if err != nil {
				return err
			}
			r := restaurantFromFields(id, fields)
			r.RatingScore = score
			found[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.Restaurant, 0, len(found))
	for _, r := range found {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

// Search matches term against restaurant names, best rated first.
func (s *RestaurantService) Search(ctx context.Context, term string, page domain.Page) ([]domain.SearchHit, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("search term is required: %w", domain.ErrInvalidPrecondition)
	}
	return s.stores.Search.Search(ctx, storage.NameQuery(term), storage.SearchOptions{
		SortByRating: true,
		Offset:       int(page.Offset),
		Limit:        int(page.Count),
	})
}

func (s *RestaurantService) SetDetails(ctx context.Context, id string, details domain.RestaurantDetails) error {
	if details == nil {
		return fmt.Errorf("details document is empty: %w", domain.ErrInvalidPrecondition)
	}
	return s.stores.Documents.SetDocument(ctx, s.stores.Keys.RestaurantDetails(id), details)
}

func (s *RestaurantService) GetDetails(ctx context.Context, id string) (domain.RestaurantDetails, error) {
	var details domain.RestaurantDetails
	if err := s.stores.Documents.GetDocument(ctx, s.stores.Keys.RestaurantDetails(id), &details); err != nil {
		return nil, err
	}
	return details, nil
}

// QRCode renders a PNG pointing at the restaurant's review page.
func (s *RestaurantService) QRCode(ctx context.Context, id string) ([]byte, error) {
	ok, err := s.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("restaurant %s: %w", id, domain.ErrNotFound)
	}
	png, err := s.qr.Generate(id)
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}
	return png, nil
}

func restaurantFromFields(id string, fields map[string]string) *domain.Restaurant {
	r := &domain.Restaurant{
		ID:       id,
		Name:     fields[fieldName],
		Location: fields[fieldLocation],
	}
	r.ViewCount, _ = strconv.ParseInt(fields[fieldViewCount], 10, 64)
	r.ReviewCount, _ = strconv.ParseInt(fields[fieldReviewCount], 10, 64)
	total, _ := strconv.ParseFloat(fields[fieldTotalStars], 64)
	if r.ReviewCount > 0 {
		r.AverageRating = total / float64(r.ReviewCount)
	}
	return r
}

// uniqueCuisines trims, drops empties and keeps the first occurrence of each name.
func uniqueCuisines(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
