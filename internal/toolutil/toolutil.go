// Package toolutil provides shared helper functions for the MCP tools:
// language preference normalization and typed cache access on top of the
// engine's byte-level cache.
package toolutil

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/engine"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/transcript"
)

// NormLanguages returns the language preference list for a request: the input
// if given, else the configured default, else just English. Every code must
// pass transcript.IsValidLanguageCode; the first invalid one fails the call.
func NormLanguages(langs []string) ([]string, error) {
	if len(langs) == 0 {
		langs = engine.Cfg.DefaultLanguages
	}
	if len(langs) == 0 {
		return []string{"en"}, nil
	}
	for _, l := range langs {
		if !transcript.IsValidLanguageCode(l) {
			return nil, fmt.Errorf("invalid language code: %q", l)
		}
	}
	return langs, nil
}

// CacheLoadJSON tries to load a cached value of type T from the engine cache.
// Returns the decoded value and true on hit; zero value and false on miss or
// decode error.
func CacheLoadJSON[T any](ctx context.Context, key string) (T, bool) {
	data, ok := engine.CacheGet(ctx, key)
	if !ok {
		var zero T
		return zero, false
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// CacheStoreJSON marshals v and stores it in the engine cache.
func CacheStoreJSON[T any](ctx context.Context, key string, v T) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	engine.CacheSet(ctx, key, data)
}
