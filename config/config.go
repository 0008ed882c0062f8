package config

import (
	"context"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	HTTPAddr      string
	PublicBaseURL string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	KeyRoot       string

	DedupBackend   string
	BloomCapacity  int64
	BloomErrorRate float64

	WeatherAPIURL   string
	WeatherAPIKey   string
	WeatherCacheTTL time.Duration
	WeatherTimeout  time.Duration

	KafkaBroker       string
	KafkaReviewsTopic string

	LogLevel  string
	LogFormat string
}

// Load reads the .env file, if any, and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, falling back to system env vars")
	}

	return &Config{
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		KeyRoot:       getEnv("KEY_ROOT", "restaurant-directory"),

		DedupBackend:   getEnv("DEDUP_BACKEND", "redis"),
		BloomCapacity:  int64(getEnvInt("BLOOM_CAPACITY", 1000000)),
		BloomErrorRate: getEnvFloat("BLOOM_ERROR_RATE", 0.0001),

		WeatherAPIURL:   getEnv("WEATHER_API_URL", "https://api.openweathermap.org/data/2.5/weather"),
		WeatherAPIKey:   getEnv("WEATHER_API_KEY", ""),
		WeatherCacheTTL: getEnvDuration("WEATHER_CACHE_TTL", time.Hour),
		WeatherTimeout:  getEnvDuration("WEATHER_TIMEOUT", 10*time.Second),

		KafkaBroker:       getEnv("KAFKA_BROKER", ""),
		KafkaReviewsTopic: getEnv("KAFKA_REVIEWS_TOPIC", "restaurant-reviews"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, c.RedisPort)
}

// NewLogger builds the process logger from the configured level and format.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logger.WithField("level", c.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// NewRedisClient builds the shared client without connecting.
// RESP2 is forced: go-redis only parses RediSearch replies reliably over RESP2.
func NewRedisClient(c *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr(),
		Password: c.RedisPassword,
		DB:       c.RedisDB,
		Protocol: 2,
	})
}

func MustInitRedis(c *Config, logger logrus.FieldLogger) *redis.Client {
	client := NewRedisClient(c)

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.WithError(err).Fatal("failed to connect to Redis")
	}

	return client
}

// NewKafkaWriter returns nil when no broker is configured; publishing is then skipped.
func NewKafkaWriter(c *Config) *kafka.Writer {
	if c.KafkaBroker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(c.KafkaBroker),
		Topic:    c.KafkaReviewsTopic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err == nil {
			return d
		}
	}
	return fallback
}
