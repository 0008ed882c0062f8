package service

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/storage"
	"restaurant-directory/internal/weather"

	"github.com/redis/go-redis/v9"
)

type RestaurantServiceInterface interface {
	Create(ctx context.Context, in domain.NewRestaurant) (*domain.Restaurant, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	Exists(ctx context.Context, id string) (bool, error)
	ListByRating(ctx context.Context, page domain.Page) ([]domain.Restaurant, error)
	Search(ctx context.Context, term string, page domain.Page) ([]domain.SearchHit, error)
	SetDetails(ctx context.Context, id string, details domain.RestaurantDetails) error
	GetDetails(ctx context.Context, id string) (domain.RestaurantDetails, error)
	QRCode(ctx context.Context, id string) ([]byte, error)
}

type ReviewServiceInterface interface {
	Create(ctx context.Context, restaurantID string, in domain.NewReview) (*domain.Review, error)
	List(ctx context.Context, restaurantID string, page domain.Page) ([]domain.Review, error)
	Delete(ctx context.Context, restaurantID, reviewID string) error
}

type CuisineServiceInterface interface {
	List(ctx context.Context) ([]string, error)
	Restaurants(ctx context.Context, cuisine string) ([]domain.RestaurantRef, error)
}

type WeatherServiceInterface interface {
	Lookup(ctx context.Context, restaurantID string) (domain.Weather, error)
}

type EntityStore interface {
	CreateWithID(ctx context.Context, kind storage.Kind, id string, fields map[string]interface{}) error
	Get(ctx context.Context, kind storage.Kind, id string) (map[string]string, error)
	GetField(ctx context.Context, kind storage.Kind, id, field string) (string, error)
	IncrementField(ctx context.Context, kind storage.Kind, id, field string, delta int64) (int64, error)
	IncrementFloatField(ctx context.Context, kind storage.Kind, id, field string, delta float64) (float64, error)
	Exists(ctx context.Context, kind storage.Kind, id string) (bool, error)
	Delete(ctx context.Context, kind storage.Kind, id string) (bool, error)
}

type MembershipIndex interface {
	AddCuisine(b *storage.Batch, restaurantID, cuisine string)
	Members(ctx context.Context, setKey string) ([]string, error)
}

type RatingIndex interface {
	Seed(ctx context.Context, id string) error
	IncrementScore(ctx context.Context, id string, delta float64) (float64, error)
	Score(ctx context.Context, id string) (float64, error)
	RangeDescendingWithScores(ctx context.Context, offset, count int64) ([]redis.Z, error)
}

type ReviewIDList interface {
	Push(ctx context.Context, restaurantID, reviewID string) (int64, error)
	Range(ctx context.Context, restaurantID string, page domain.Page) ([]string, error)
	Remove(ctx context.Context, restaurantID, reviewID string) (int64, error)
}

type DocumentStore interface {
	SetDocument(ctx context.Context, key string, doc interface{}) error
	GetDocument(ctx context.Context, key string, out interface{}) error
	AppendToList(ctx context.Context, key, listField string, element interface{}) error
	RemoveFromList(ctx context.Context, key, listField, id string) (int64, error)
}

type Searcher interface {
	Search(ctx context.Context, query string, opts storage.SearchOptions) ([]domain.SearchHit, error)
}

type WeatherCache interface {
	Get(ctx context.Context, id string) (string, error)
	Put(ctx context.Context, id, value string, ttl time.Duration) error
}

type WeatherProvider interface {
	Current(ctx context.Context, at weather.Coordinates) (json.RawMessage, error)
}

type ReviewPublisher interface {
	PublishReview(ctx context.Context, event domain.ReviewEvent) error
}

var (
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ ReviewServiceInterface     = (*ReviewService)(nil)
	_ CuisineServiceInterface    = (*CuisineService)(nil)
	_ WeatherServiceInterface    = (*WeatherService)(nil)
)
