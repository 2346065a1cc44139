package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ExtractRequests    atomic.Int64
	TranscriptRequests atomic.Int64
	ListRequests       atomic.Int64
	WatchPageRequests  atomic.Int64
	PlayerRequests     atomic.Int64
	TimedTextRequests  atomic.Int64
	FetchErrors        atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"extract_requests":    metrics.ExtractRequests.Load(),
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"list_requests":       metrics.ListRequests.Load(),
		"watch_page_requests": metrics.WatchPageRequests.Load(),
		"player_requests":     metrics.PlayerRequests.Load(),
		"timedtext_requests":  metrics.TimedTextRequests.Load(),
		"fetch_errors":        metrics.FetchErrors.Load(),
		"cache_hits":          hits,
		"cache_misses":        misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"extract_requests", "transcript_requests", "list_requests",
		"watch_page_requests", "player_requests", "timedtext_requests",
		"fetch_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the transcriptserver package.
func IncrExtractRequests()    { metrics.ExtractRequests.Add(1) }
func IncrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func IncrListRequests()       { metrics.ListRequests.Add(1) }

// Incrementors for the sources/ sub-package.
func IncrWatchPageRequests() { metrics.WatchPageRequests.Add(1) }
func IncrPlayerRequests()    { metrics.PlayerRequests.Add(1) }
func IncrTimedTextRequests() { metrics.TimedTextRequests.Add(1) }
func IncrFetchErrors()       { metrics.FetchErrors.Add(1) }
