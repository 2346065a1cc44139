package transcriptserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/engine"
	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/transcript"
)

func registerExtractVideoID(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_video_id",
		Description: "Extract the 11-character YouTube video ID from a URL (watch, youtu.be, embed), or return the ID unchanged if one is passed directly.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ExtractVideoIDInput) (*mcp.CallToolResult, engine.ExtractVideoIDOutput, error) {
		engine.IncrExtractRequests()

		id := transcript.ExtractVideoID(input.URLOrID)
		if id == "" {
			return nil, engine.ExtractVideoIDOutput{}, fmt.Errorf("could not extract a valid video ID from %q", input.URLOrID)
		}
		return nil, engine.ExtractVideoIDOutput{VideoID: id}, nil
	})
}
