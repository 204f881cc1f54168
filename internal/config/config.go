package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	NASAAPIKey  string
	NASABaseURL string
	NASATimeout time.Duration

	// TopN limits how many of the largest objects are visualized.
	TopN int

	// FetchInterval re-runs the pipeline periodically; zero means one-shot.
	FetchInterval time.Duration

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Kafka overlay sink, feature-flagged via KAFKA_ENABLED.
	KafkaEnabled   bool
	KafkaBrokers   []string
	KafkaSinkTopic string

	// GeoJSONOut writes the overlay FeatureCollection to a boundary file
	// for the render collaborator; empty disables the file sink.
	GeoJSONOut string
}

// Load reads configuration from the environment, applying defaults where
// unset. A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	nasaTimeout, err := envDuration("NASA_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	fetchInterval, err := envDuration("FETCH_INTERVAL", 0)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := envDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	topN, err := envInt("TOP_N", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		NASAAPIKey:      envOrDefault("NASA_API_KEY", "DEMO_KEY"),
		NASABaseURL:     envOrDefault("NASA_BASE_URL", "https://api.nasa.gov/neo/rest/v1/feed"),
		NASATimeout:     nasaTimeout,
		TopN:            topN,
		FetchInterval:   fetchInterval,
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		KafkaEnabled:    os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:    splitList(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic:  envOrDefault("KAFKA_SINK_TOPIC", "neo-impact-overlays"),
		GeoJSONOut:      os.Getenv("GEOJSON_OUT"),
	}

	if cfg.NASAAPIKey == "" {
		return nil, errors.New("NASA_API_KEY must not be empty")
	}
	if cfg.NASABaseURL == "" {
		return nil, errors.New("NASA_BASE_URL must not be empty")
	}
	if cfg.NASATimeout <= 0 {
		return nil, errors.New("NASA_TIMEOUT must be positive")
	}
	if cfg.TopN <= 0 {
		return nil, errors.New("TOP_N must be positive")
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
		}
		if cfg.KafkaSinkTopic == "" {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_SINK_TOPIC is empty")
		}
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
