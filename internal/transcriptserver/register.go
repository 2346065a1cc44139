// Package transcriptserver registers the MCP tools exposed by the server:
// extract_video_id, get_video_transcript, list_transcripts.
package transcriptserver

import "github.com/modelcontextprotocol/go-sdk/mcp"

// RegisterTools registers all transcript tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerExtractVideoID(server)
	registerGetVideoTranscript(server)
	registerListTranscripts(server)
}
