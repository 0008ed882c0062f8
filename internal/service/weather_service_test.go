package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/mocks"
	"restaurant-directory/internal/service"
	"restaurant-directory/internal/storage"
	"restaurant-directory/internal/weather"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWeatherService(t *testing.T, f *fixture, provider service.WeatherProvider) *service.WeatherService {
	t.Helper()
	cache := storage.NewRedisCache(f.stack.Client(t), f.ns, time.Hour)
	return service.NewWeatherService(f.stores.Entities, cache, provider, time.Hour, f.opts)
}

func seedLocation(t *testing.T, f *fixture, id, location string) {
	t.Helper()
	require.NoError(t, f.stores.Entities.CreateWithID(context.Background(), storage.KindRestaurant, id,
		map[string]interface{}{"name": "Luigi", "location": location}))
}

func TestWeatherService_CachesWithinTTL(t *testing.T) {
	f := newFixture(t)
	provider := mocks.NewWeatherProvider(t)
	svc := newWeatherService(t, f, provider)
	ctx := context.Background()
	seedLocation(t, f, "r1", "-73.98,40.75")

	payload := json.RawMessage(`{"main":{"temp":293.1}}`)
	at := weather.Coordinates{Lng: -73.98, Lat: 40.75}
	provider.On("Current", ctx, at).Return(payload, nil).Once()

	first, err := svc.Lookup(ctx, "r1")
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(first))
	assert.Equal(t, time.Hour, f.stack.TTL(f.ns.Weather("r1")))

	// Within the TTL the provider is not called again.
	f.stack.FastForward(59 * time.Minute)
	second, err := svc.Lookup(ctx, "r1")
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(second))

	// After expiry it is.
	f.stack.FastForward(2 * time.Minute)
	provider.On("Current", ctx, at).Return(json.RawMessage(`{"main":{"temp":280}}`), nil).Once()
	third, err := svc.Lookup(ctx, "r1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"main":{"temp":280}}`, string(third))

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.WeatherCacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.WeatherCacheLookups.WithLabelValues("miss")))
}

func TestWeatherService_Rejected(t *testing.T) {
	f := newFixture(t)
	// No expectations: any provider call fails the test.
	provider := mocks.NewWeatherProvider(t)
	svc := newWeatherService(t, f, provider)
	ctx := context.Background()

	seedLocation(t, f, "empty", "")
	seedLocation(t, f, "city", "Rome")
	seedLocation(t, f, "triple", "1,2,3")

	tests := []struct {
		name          string
		restaurantID  string
		expectedError error
	}{
		{name: "empty_location", restaurantID: "empty", expectedError: domain.ErrInvalidPrecondition},
		{name: "not_numeric", restaurantID: "city", expectedError: domain.ErrInvalidCoordinates},
		{name: "three_tokens", restaurantID: "triple", expectedError: domain.ErrInvalidCoordinates},
		{name: "unknown_restaurant", restaurantID: "ghost", expectedError: domain.ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := svc.Lookup(ctx, testCase.restaurantID)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestWeatherService_UpstreamFailureIsNotCached(t *testing.T) {
	f := newFixture(t)
	provider := mocks.NewWeatherProvider(t)
	svc := newWeatherService(t, f, provider)
	ctx := context.Background()
	seedLocation(t, f, "r1", "1,1")

	provider.On("Current", ctx, mock.Anything).Return(nil, errors.New("503 Service Unavailable")).Once()
	_, err := svc.Lookup(ctx, "r1")
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.False(t, f.stack.Exists(f.ns.Weather("r1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.WeatherUpstreamErrs))

	provider.On("Current", ctx, mock.Anything).Return(json.RawMessage(`{}`), nil).Once()
	_, err = svc.Lookup(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, f.stack.Exists(f.ns.Weather("r1")))
}
