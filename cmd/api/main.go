package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"restaurant-directory/config"
	httpapi "restaurant-directory/internal/api/http"
	"restaurant-directory/internal/events"
	"restaurant-directory/internal/keys"
	"restaurant-directory/internal/metrics"
	"restaurant-directory/internal/service"
	"restaurant-directory/internal/storage"
	"restaurant-directory/internal/weather"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logger := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis(cfg, logger)
	defer rdb.Close()

	ns := keys.New(cfg.KeyRoot)
	dedup, err := newDedupFilter(ctx, cfg, rdb, ns, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to set up dedup filter")
	}

	kafkaWriter := config.NewKafkaWriter(cfg)
	if kafkaWriter == nil {
		logger.Info("KAFKA_BROKER not set, review events are not published")
	} else {
		defer kafkaWriter.Close()
	}

	reg := prometheus.NewRegistry()
	m := metrics.New()
	m.MustRegister(reg)

	opts := service.Options{Logger: logger, Metrics: m}
	stores := service.NewRedisStores(rdb, ns, dedup, logger)

	restaurants := service.NewRestaurantService(stores, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}, opts)
	reviews := service.NewReviewService(stores, events.NewKafkaPublisher(kafkaWriter), opts)
	cuisines := service.NewCuisineService(stores)
	weatherSvc := service.NewWeatherService(
		stores.Entities,
		storage.NewRedisCache(rdb, ns, cfg.WeatherCacheTTL),
		weather.New(cfg.WeatherAPIURL, cfg.WeatherAPIKey, cfg.WeatherTimeout, logger),
		cfg.WeatherCacheTTL,
		opts,
	)

	handler := httpapi.NewHandler(restaurants, reviews, cuisines, weatherSvc, logger)
	server := httpapi.NewServer(cfg.HTTPAddr, httpapi.NewRouter(handler, reg))

	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("restaurant directory starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("http server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}

// newDedupFilter picks the filter backend. The RedisBloom filter is reserved
// by the bootstrap job; the in-process one is reserved here on every start.
func newDedupFilter(ctx context.Context, cfg *config.Config, rdb redis.Cmdable, ns keys.Namespace, logger logrus.FieldLogger) (storage.DedupFilter, error) {
	switch cfg.DedupBackend {
	case "redis":
		return storage.NewRedisBloomFilter(rdb, ns), nil
	case "local":
		filter := storage.NewLocalBloomFilter()
		if err := filter.Reserve(ctx, cfg.BloomCapacity, cfg.BloomErrorRate); err != nil {
			return nil, err
		}
		logger.WithField("capacity", cfg.BloomCapacity).Warn("using in-process dedup filter, state is not shared between replicas")
		return filter, nil
	default:
		return nil, fmt.Errorf("unknown DEDUP_BACKEND %q", cfg.DedupBackend)
	}
}
