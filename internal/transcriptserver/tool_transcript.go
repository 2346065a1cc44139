package transcriptserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/engine"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/engine/sources"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/toolutil"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/transcript"
)

func registerGetVideoTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_video_transcript",
		Description: "Download the transcript of a YouTube video. Accepts a video ID or URL, a list of preferred language codes, and an output format (json, text, srt, vtt). Returns the rendered transcript with track metadata and a suggested filename.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.TranscriptInput) (*mcp.CallToolResult, engine.TranscriptOutput, error) {
		if input.VideoID == "" {
			return nil, engine.TranscriptOutput{}, fmt.Errorf("video_id is required")
		}
		videoID := transcript.ExtractVideoID(input.VideoID)
		if videoID == "" {
			return nil, engine.TranscriptOutput{}, fmt.Errorf("could not extract a valid video ID from %q", input.VideoID)
		}
		format, err := transcript.ParseFormat(input.Format)
		if err != nil {
			return nil, engine.TranscriptOutput{}, err
		}
		langs, err := toolutil.NormLanguages(input.Languages)
		if err != nil {
			return nil, engine.TranscriptOutput{}, err
		}

		engine.IncrTranscriptRequests()

		cacheKey := engine.CacheKey("get_video_transcript", videoID, strings.Join(langs, ","), string(format))
		if out, ok := toolutil.CacheLoadJSON[engine.TranscriptOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		t, err := sources.FetchTranscript(ctx, videoID, langs)
		if err != nil {
			return nil, engine.TranscriptOutput{}, fmt.Errorf("get transcript for %s: %w", videoID, err)
		}

		content, err := transcript.FormatTranscript(t, format)
		if err != nil {
			return nil, engine.TranscriptOutput{}, err
		}

		out := engine.TranscriptOutput{
			VideoID:      t.VideoID,
			Language:     t.Language,
			LanguageCode: t.LanguageCode,
			IsGenerated:  t.IsGenerated,
			Format:       string(format),
			Filename:     transcriptFilename(t, format),
			SnippetCount: len(t.Snippets),
			Content:      content,
		}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

// transcriptFilename builds a portable save name like dQw4w9WgXcQ_en.srt.
func transcriptFilename(t *transcript.Transcript, format transcript.Format) string {
	name := transcript.SanitizeFilename(t.VideoID + "_" + t.LanguageCode)
	if ext := transcript.ExtensionForFormat(format); ext != "" {
		return name + "." + ext
	}
	return name
}
