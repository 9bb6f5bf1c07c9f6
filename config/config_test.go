package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"chirp/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_NAME", "")
	t.Setenv("FEED_RECENCY_WINDOW", "")
	t.Setenv("FEED_PAGE_SIZE", "")
	t.Setenv("FEED_FANOUT_CONCURRENCY", "")

	cfg := config.Load()

	assert.Equal(t, "chirp", cfg.DBName)
	assert.Equal(t, 2*time.Hour, cfg.RecencyWindow)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 8, cfg.FanoutConcurrency)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FEED_RECENCY_WINDOW", "15m")
	t.Setenv("FEED_PAGE_SIZE", "25")
	t.Setenv("DB_NAME", "chirp_test")

	cfg := config.Load()

	assert.Equal(t, 15*time.Minute, cfg.RecencyWindow)
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, "chirp_test", cfg.DBName)
}

func TestLoadIgnoresMalformed(t *testing.T) {
	t.Setenv("FEED_PAGE_SIZE", "lots")
	t.Setenv("FEED_RECENCY_WINDOW", "soon")

	cfg := config.Load()

	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 2*time.Hour, cfg.RecencyWindow)
}
