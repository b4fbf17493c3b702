package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve in minimal containers

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"

	"github.com/couchcryptid/ferry-risk-service/internal/domain"
)

// DefaultForecastURL is the NDBC mirror of the KBOX coastal waters forecast.
const DefaultForecastURL = "https://www.ndbc.noaa.gov/data/Forecasts/FZUS51.KBOX.html"

// Config holds all service settings, populated from environment variables.
type Config struct {
	ForecastURL       string
	ForecastZone      string
	ForecastBoundary  *regexp.Regexp
	ForecastTimeout   time.Duration
	ForecastCacheTTL  time.Duration
	ForecastCacheSize int
	ForecastRateLimit float64 // requests per second; 0 disables limiting
	Location          *time.Location

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Assessment publishing.
	KafkaEnabled   bool
	KafkaBrokers   []string
	KafkaSinkTopic string

	Model domain.ModelConfig
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	forecastTimeout, err := parsePositiveDuration("FORECAST_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cacheTTL, err := time.ParseDuration(sharedcfg.EnvOrDefault("FORECAST_CACHE_TTL", "5m"))
	if err != nil || cacheTTL < 0 {
		return nil, errors.New("invalid FORECAST_CACHE_TTL")
	}

	rateLimit, err := strconv.ParseFloat(sharedcfg.EnvOrDefault("FORECAST_RATE_LIMIT", "1"), 64)
	if err != nil || rateLimit < 0 {
		return nil, errors.New("invalid FORECAST_RATE_LIMIT")
	}

	boundary, err := regexp.Compile(sharedcfg.EnvOrDefault("FORECAST_BOUNDARY", domain.DefaultBoundary.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid FORECAST_BOUNDARY: %w", err)
	}

	loc, err := time.LoadLocation(sharedcfg.EnvOrDefault("TIMEZONE", "America/New_York"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	model, err := loadModel()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ForecastURL:       sharedcfg.EnvOrDefault("FORECAST_URL", DefaultForecastURL),
		ForecastZone:      sharedcfg.EnvOrDefault("FORECAST_ZONE", "Nantucket Sound"),
		ForecastBoundary:  boundary,
		ForecastTimeout:   forecastTimeout,
		ForecastCacheTTL:  cacheTTL,
		ForecastCacheSize: parseCacheSize(),
		ForecastRateLimit: rateLimit,
		Location:          loc,

		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaEnabled:   os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:   sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic: sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "ferry-risk-assessments"),

		Model: model,
	}

	if cfg.ForecastURL == "" {
		return nil, errors.New("FORECAST_URL is required")
	}
	if strings.TrimSpace(cfg.ForecastZone) == "" {
		return nil, errors.New("FORECAST_ZONE is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.KafkaEnabled && cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_SINK_TOPIC is empty")
	}

	return cfg, nil
}

func parsePositiveDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseCacheSize() int {
	if s := os.Getenv("FORECAST_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 16
}
