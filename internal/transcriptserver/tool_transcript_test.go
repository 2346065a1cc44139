package transcriptserver

import (
	"testing"

	"github.com/wetwilliam/youtube-transcript-mcp-server/internal/transcript"
)

func TestTranscriptFilename(t *testing.T) {
	tests := []struct {
		name   string
		tr     *transcript.Transcript
		format transcript.Format
		want   string
	}{
		{
			name:   "srt",
			tr:     &transcript.Transcript{VideoID: "dQw4w9WgXcQ", LanguageCode: "en"},
			format: transcript.FormatSRT,
			want:   "dQw4w9WgXcQ_en.srt",
		},
		{
			name:   "text maps to txt",
			tr:     &transcript.Transcript{VideoID: "dQw4w9WgXcQ", LanguageCode: "zh-TW"},
			format: transcript.FormatText,
			want:   "dQw4w9WgXcQ_zh-TW.txt",
		},
		{
			name:   "unknown format leaves extension off",
			tr:     &transcript.Transcript{VideoID: "dQw4w9WgXcQ", LanguageCode: "en"},
			format: transcript.Format("bogus"),
			want:   "dQw4w9WgXcQ_en",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := transcriptFilename(tt.tr, tt.format); got != tt.want {
				t.Errorf("transcriptFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}
