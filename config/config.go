package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration, read from the environment. Feed
// policy knobs (recency window, page size) live here so tests can shrink
// them instead of fighting hardcoded literals.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string

	// RecencyWindow bounds the viewer's own-activity stream on the home
	// timeline.
	RecencyWindow time.Duration
	// DefaultPageSize is the page size when the request carries none.
	DefaultPageSize int
	// FanoutConcurrency caps concurrent per-author post lookups.
	FanoutConcurrency int

	// Per-IP request rate limit.
	RateLimitPerSec float64
	RateLimitBurst  int
}

// Load reads configuration from the environment, with an optional .env
// file for local runs.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:              envString("PORT", "8080"),
		MongoURI:          envString("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		DBName:            envString("DB_NAME", "chirp"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		RecencyWindow:     envDuration("FEED_RECENCY_WINDOW", 2*time.Hour),
		DefaultPageSize:   envInt("FEED_PAGE_SIZE", 10),
		FanoutConcurrency: envInt("FEED_FANOUT_CONCURRENCY", 8),
		RateLimitPerSec:   envFloat("RATE_LIMIT_PER_SEC", 10),
		RateLimitBurst:    envInt("RATE_LIMIT_BURST", 30),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
