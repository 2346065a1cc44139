package toolutil

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/engine"
)

func TestNormLanguages(t *testing.T) {
	engine.Init(engine.Config{DefaultLanguages: []string{"de", "en"}})

	tests := []struct {
		name    string
		langs   []string
		want    []string
		wantErr bool
	}{
		{
			name:  "explicit list kept",
			langs: []string{"en", "zh-TW"},
			want:  []string{"en", "zh-TW"},
		},
		{
			name:  "empty falls back to configured default",
			langs: nil,
			want:  []string{"de", "en"},
		},
		{
			name:    "invalid code rejected",
			langs:   []string{"en", "invalid"},
			wantErr: true,
		},
		{
			name:    "empty string rejected",
			langs:   []string{""},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormLanguages(tt.langs)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormLanguages(%v) = %v, want %v", tt.langs, got, tt.want)
			}
		})
	}

	t.Run("english when nothing configured", func(t *testing.T) {
		engine.Init(engine.Config{})
		got, err := NormLanguages(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, []string{"en"}) {
			t.Errorf("got %v, want [en]", got)
		}
	})
}

func TestCacheJSONRoundTrip(t *testing.T) {
	engine.InitCache("", time.Minute, 100, 5*time.Minute)
	ctx := context.Background()
	key := engine.CacheKey("toolutil", "round-trip")

	type payload struct {
		VideoID string `json:"video_id"`
		Count   int    `json:"count"`
	}

	if _, ok := CacheLoadJSON[payload](ctx, key); ok {
		t.Fatal("expected miss before store")
	}

	CacheStoreJSON(ctx, key, payload{VideoID: "dQw4w9WgXcQ", Count: 7})

	got, ok := CacheLoadJSON[payload](ctx, key)
	if !ok {
		t.Fatal("expected hit after store")
	}
	if got.VideoID != "dQw4w9WgXcQ" || got.Count != 7 {
		t.Errorf("got %+v", got)
	}
}
