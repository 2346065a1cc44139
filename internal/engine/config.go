package engine

import (
	"context"
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	FetchTimeout         time.Duration
	DefaultLanguages     []string // preference list used when a tool passes none
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	YouTubeRateLimit     float64 // requests/second against youtube.com; 0 = unlimited
	YouTubeRateBurst     int
	HTTPClient           *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources, toolutil).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	cfg = c
	Cfg = &cfg
	initYouTubeLimiter(c.YouTubeRateLimit, c.YouTubeRateBurst)
}

// FetchContext derives a context bounded by the configured fetch timeout.
// With no timeout configured the parent context is returned unchanged.
func FetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if cfg.FetchTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, cfg.FetchTimeout)
}
