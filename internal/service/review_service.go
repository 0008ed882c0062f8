package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/metrics"
	"restaurant-directory/internal/storage"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Review hash fields.
const (
	fieldRestaurantID = "restaurantId"
	fieldText         = "text"
	fieldRating       = "rating"
	fieldCreatedAt    = "createdAt"
)

// reviewsListField is the array inside the per-restaurant review document.
const reviewsListField = "reviews"

type ReviewService struct {
	stores    Stores
	publisher ReviewPublisher
	logger    logrus.FieldLogger
	metrics   *metrics.Metrics
	opts      Options
	now       func() time.Time
}

func NewReviewService(stores Stores, publisher ReviewPublisher, opts Options) *ReviewService {
	return &ReviewService{
		stores:    stores,
		publisher: publisher,
		logger:    opts.logger(),
		metrics:   opts.Metrics,
		opts:      opts,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create stores the review record, then appends it to the restaurant's id
// list and review document and adds its rating to the rank score. The rank
// score is a running sum of ratings; avgStars is incremented alongside it.
func (s *ReviewService) Create(ctx context.Context, restaurantID string, in domain.NewReview) (*domain.Review, error) {
	if in.Rating < domain.MinRating || in.Rating > domain.MaxRating {
		return nil, domain.ErrInvalidRating
	}
	if err := s.requireRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:           storage.NewID(),
		RestaurantID: restaurantID,
		Text:         in.Text,
		Rating:       in.Rating,
		CreatedAt:    s.now(),
	}

	err := s.stores.Entities.CreateWithID(ctx, storage.KindReview, review.ID, map[string]interface{}{
		fieldRestaurantID: restaurantID,
		fieldText:         review.Text,
		fieldRating:       review.Rating,
		fieldCreatedAt:    review.CreatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}

	var score float64
	batch := s.opts.batch()
	batch.Add("rpush:reviews", func(ctx context.Context) error {
		_, err := s.stores.Reviews.Push(ctx, restaurantID, review.ID)
		return err
	})
	batch.Add("json.arrappend:reviews", func(ctx context.Context) error {
		return s.stores.Documents.AppendToList(ctx, s.stores.Keys.RestaurantReviews(restaurantID), reviewsListField, review)
	})
	batch.Add("zincrby:rank", func(ctx context.Context) error {
		var err error
		score, err = s.stores.Rank.IncrementScore(ctx, restaurantID, float64(review.Rating))
		return err
	})
	batch.Add("hincrby:reviewCount", func(ctx context.Context) error {
		_, err := s.stores.Entities.IncrementField(ctx, storage.KindRestaurant, restaurantID, fieldReviewCount, 1)
		return err
	})
	batch.Add("hincrbyfloat:totalStars", func(ctx context.Context) error {
		_, err := s.stores.Entities.IncrementFloatField(ctx, storage.KindRestaurant, restaurantID, fieldTotalStars, float64(review.Rating))
		return err
	})
	// Incremented by the same rating as the rank score so concurrent reviews
	// cannot leave it behind.
	batch.Add("hincrbyfloat:avgStars", func(ctx context.Context) error {
		_, err := s.stores.Entities.IncrementFloatField(ctx, storage.KindRestaurant, restaurantID, fieldAvgStars, float64(review.Rating))
		return err
	})
	if err := batch.Run(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to record review %s: %w", review.ID, err)
	}

	s.metrics.ReviewSubmitted()
	s.publish(ctx, domain.EventReviewCreated, review, score)
	s.logger.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"review_id":     review.ID,
		"rating_score":  score,
	}).Info("review created")
	return review, nil
}

// List returns one page of reviews in submission order. Ids whose record is
// gone are skipped.
func (s *ReviewService) List(ctx context.Context, restaurantID string, page domain.Page) ([]domain.Review, error) {
	ids, err := s.stores.Reviews.Range(ctx, restaurantID, page)
	if err != nil {
		return nil, err
	}

	found := make([]*domain.Review, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			fields, err := s.stores.Entities.Get(gctx, storage.KindReview, id)
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			found[i] = reviewFromFields(id, fields)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.Review, 0, len(found))
	for _, r := range found {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

// Delete removes the review from the id list, the flat record and the review
// document, and takes it out of the review count and star total. The rank
// score keeps the rating: it only ever grows. Only the caller whose DEL
// removed the record touches the counters.
func (s *ReviewService) Delete(ctx context.Context, restaurantID, reviewID string) error {
	fields, err := s.stores.Entities.Get(ctx, storage.KindReview, reviewID)
	if err != nil {
		return err
	}
	if fields[fieldRestaurantID] != restaurantID {
		return fmt.Errorf("review %s of restaurant %s: %w", reviewID, restaurantID, domain.ErrNotFound)
	}
	review := reviewFromFields(reviewID, fields)

	removed, err := s.stores.Entities.Delete(ctx, storage.KindReview, reviewID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("review %s already deleted: %w", reviewID, domain.ErrNotFound)
	}

	batch := s.opts.batch()
	batch.Add("lrem:reviews", func(ctx context.Context) error {
		_, err := s.stores.Reviews.Remove(ctx, restaurantID, reviewID)
		return err
	})
	batch.Add("json.del:reviews", func(ctx context.Context) error {
		_, err := s.stores.Documents.RemoveFromList(ctx, s.stores.Keys.RestaurantReviews(restaurantID), reviewsListField, reviewID)
		return err
	})
	batch.Add("hincrby:reviewCount", func(ctx context.Context) error {
		_, err := s.stores.Entities.IncrementField(ctx, storage.KindRestaurant, restaurantID, fieldReviewCount, -1)
		return err
	})
	batch.Add("hincrbyfloat:totalStars", func(ctx context.Context) error {
		_, err := s.stores.Entities.IncrementFloatField(ctx, storage.KindRestaurant, restaurantID, fieldTotalStars, -float64(review.Rating))
		return err
	})
	if err := batch.Run(ctx).Err(); err != nil {
		return fmt.Errorf("failed to delete review %s: %w", reviewID, err)
	}

	score, err := s.stores.Rank.Score(ctx, restaurantID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.WithError(err).WithField("restaurant_id", restaurantID).Warn("failed to read rank score")
	}
	s.publish(ctx, domain.EventReviewDeleted, review, score)
	s.logger.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"review_id":     reviewID,
	}).Info("review deleted")
	return nil
}

func (s *ReviewService) requireRestaurant(ctx context.Context, id string) error {
	ok, err := s.stores.Entities.Exists(ctx, storage.KindRestaurant, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("restaurant %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// publish is best effort: the review is already stored.
func (s *ReviewService) publish(ctx context.Context, eventType string, review *domain.Review, score float64) {
	if s.publisher == nil {
		return
	}
	event := domain.ReviewEvent{
		Type:         eventType,
		ReviewID:     review.ID,
		RestaurantID: review.RestaurantID,
		Rating:       review.Rating,
		RatingScore:  score,
		Timestamp:    s.now(),
	}
	if err := s.publisher.PublishReview(ctx, event); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"review_id": review.ID,
			"event":     eventType,
		}).Warn("failed to publish review event")
	}
}

func reviewFromFields(id string, fields map[string]string) *domain.Review {
	r := &domain.Review{
		ID:           id,
		RestaurantID: fields[fieldRestaurantID],
		Text:         fields[fieldText],
	}
	r.Rating, _ = strconv.Atoi(fields[fieldRating])
	r.CreatedAt, _ = time.Parse(time.RFC3339Nano, fields[fieldCreatedAt])
	return r
}
