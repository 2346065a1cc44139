package transcriptserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/engine"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/engine/sources"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/toolutil"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/transcript"
)

func registerListTranscripts(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_transcripts",
		Description: "List the caption tracks available for a YouTube video: language, language code, whether each track is auto-generated, and whether it can be translated. Use before get_video_transcript to pick a language.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ListTranscriptsInput) (*mcp.CallToolResult, engine.ListTranscriptsOutput, error) {
		if input.VideoID == "" {
			return nil, engine.ListTranscriptsOutput{}, fmt.Errorf("video_id is required")
		}
		videoID := transcript.ExtractVideoID(input.VideoID)
		if videoID == "" {
			return nil, engine.ListTranscriptsOutput{}, fmt.Errorf("could not extract a valid video ID from %q", input.VideoID)
		}

		engine.IncrListRequests()

		cacheKey := engine.CacheKey("list_transcripts", videoID)
		if out, ok := toolutil.CacheLoadJSON[engine.ListTranscriptsOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		tracks, err := sources.ListTranscripts(ctx, videoID)
		if err != nil {
			return nil, engine.ListTranscriptsOutput{}, fmt.Errorf("list transcripts for %s: %w", videoID, err)
		}

		out := engine.ListTranscriptsOutput{
			VideoID:            videoID,
			TotalTranscripts:   len(tracks),
			AvailableLanguages: tracks,
			ManuallyCreated:    []engine.TrackInfo{},
			AutoGenerated:      []engine.TrackInfo{},
		}
		for _, t := range tracks {
			if t.IsGenerated {
				out.AutoGenerated = append(out.AutoGenerated, t)
			} else {
				out.ManuallyCreated = append(out.ManuallyCreated, t)
			}
		}

		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
