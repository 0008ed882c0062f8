package service

import (
	"context"
	"errors"
	"time"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/metrics"
	"restaurant-directory/internal/storage"
	"restaurant-directory/internal/weather"

	"github.com/sirupsen/logrus"
)

// WeatherService wraps the weather provider with a per-restaurant cache.
// Failed lookups are never cached.
type WeatherService struct {
	entities EntityStore
	cache    WeatherCache
	provider WeatherProvider
	ttl      time.Duration
	logger   logrus.FieldLogger
	metrics  *metrics.Metrics
}

func NewWeatherService(entities EntityStore, cache WeatherCache, provider WeatherProvider, ttl time.Duration, opts Options) *WeatherService {
	if ttl <= 0 {
		ttl = storage.DefaultCacheTTL
	}
	return &WeatherService{
		entities: entities,
		cache:    cache,
		provider: provider,
		ttl:      ttl,
		logger:   opts.logger(),
		metrics:  opts.Metrics,
	}
}

func (s *WeatherService) Lookup(ctx context.Context, restaurantID string) (domain.Weather, error) {
	cached, err := s.cache.Get(ctx, restaurantID)
	if err == nil {
		s.metrics.CacheHit()
		return domain.Weather(cached), nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		return nil, err
	}
	s.metrics.CacheMiss()

	location, err := s.entities.GetField(ctx, storage.KindRestaurant, restaurantID, fieldLocation)
	if err != nil {
		return nil, err
	}
	at, err := weather.ParseCoordinates(location)
	if err != nil {
		return nil, err
	}

	payload, err := s.provider.Current(ctx, at)
	if err != nil {
		s.metrics.UpstreamError()
		return nil, domain.Upstream("weather lookup", err)
	}

	if err := s.cache.Put(ctx, restaurantID, string(payload), s.ttl); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"restaurant_id": restaurantID,
			"coordinates":   at.String(),
		}).Warn("failed to cache weather")
	}
	return domain.Weather(payload), nil
}
