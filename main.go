// youtube-transcript-mcp-server — YouTube transcript MCP server.
//
// Exposes three MCP tools: extract_video_id, get_video_transcript,
// list_transcripts. Runs as HTTP MCP server or stdio transport.
//
// Transcripts are fetched straight from YouTube (watch page scrape with an
// ANDROID Innertube fallback) and rendered by internal/transcript into
// text, JSON, SRT, or WebVTT.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/engine"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/transcriptserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8894")
)

func main() {
	initEngine()

	slog.Info("starting youtube-transcript-mcp-server",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "youtube-transcript",
		Version: version,
	}, nil)

	transcriptserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 3))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "youtube-transcript",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 10*time.Second),
		DefaultLanguages:     env.List("DEFAULT_LANGUAGES", "en"),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		YouTubeRateLimit:     env.Float("YOUTUBE_RATE_LIMIT", 2),
		YouTubeRateBurst:     env.Int("YOUTUBE_RATE_BURST", 4),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
	engine.Init(c)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
