// Package transcript is the pure transcript utility layer: video-ID
// extraction from URL shapes, language-code validation, and rendering of
// fetched transcripts as plain text, JSON, SRT, or WebVTT.
//
// Everything here is a synchronous string transformation with no I/O and no
// shared state; transcripts are produced by internal/engine/sources and only
// read by this package.
package transcript

import (
	"errors"
	"fmt"
)

// Snippet is one timed caption unit: text plus its offset and duration in
// seconds. Duration may be zero for degenerate captions.
type Snippet struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript is a fetched transcript: track metadata plus snippets in
// chronological order. Start values are non-decreasing but not necessarily
// strictly increasing or gap-free.
type Transcript struct {
	VideoID      string    `json:"video_id"`
	Language     string    `json:"language"`
	LanguageCode string    `json:"language_code"`
	IsGenerated  bool      `json:"is_generated"`
	Snippets     []Snippet `json:"transcript"`
}

// Format selects the output encoding for FormatTranscript.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
)

// ErrUnsupportedFormat is returned for any format value outside
// json/text/srt/vtt. Match with errors.Is.
var ErrUnsupportedFormat = errors.New("unsupported transcript format")

// ParseFormat validates a user-supplied format string. Empty input falls back
// to text, matching the tool schema default.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatText, FormatSRT, FormatVTT:
		return Format(s), nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}
