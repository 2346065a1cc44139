package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FormatTranscript renders t in the requested format. The transcript is never
// mutated. Unknown formats fail with ErrUnsupportedFormat; every recognized
// format succeeds (aside from the practically unreachable JSON encode error).
func FormatTranscript(t *Transcript, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(t)
	case FormatText:
		return formatText(t), nil
	case FormatSRT:
		return formatSRT(t), nil
	case FormatVTT:
		return formatVTT(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func formatJSON(t *Transcript) (string, error) {
	out := *t
	if out.Snippets == nil {
		out.Snippets = []Snippet{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // keep non-ASCII text and angle brackets literal
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return "", fmt.Errorf("encode transcript: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func formatText(t *Transcript) string {
	lines := make([]string, 0, len(t.Snippets))
	for _, s := range t.Snippets {
		lines = append(lines, fmt.Sprintf("[%.2fs] %s", s.Start, s.Text))
	}
	return strings.Join(lines, "\n")
}

func formatSRT(t *Transcript) string {
	lines := make([]string, 0, len(t.Snippets)*4)
	for i, s := range t.Snippets {
		lines = append(lines,
			strconv.Itoa(i+1),
			SecondsToSRTTime(s.Start)+" --> "+SecondsToSRTTime(s.Start+s.Duration),
			s.Text,
			"",
		)
	}
	return strings.Join(lines, "\n")
}

func formatVTT(t *Transcript) string {
	lines := make([]string, 0, len(t.Snippets)*3+2)
	lines = append(lines, "WEBVTT", "")
	for _, s := range t.Snippets {
		lines = append(lines,
			SecondsToVTTTime(s.Start)+" --> "+SecondsToVTTTime(s.Start+s.Duration),
			s.Text,
			"",
		)
	}
	return strings.Join(lines, "\n")
}

// SecondsToSRTTime converts non-negative seconds to the SRT cue time
// HH:MM:SS,mmm. Hours are unbounded and every component is truncated, never
// rounded, so cue boundaries stay monotonic with snippet arithmetic.
func SecondsToSRTTime(seconds float64) string {
	h, m, s, ms := splitSeconds(seconds)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// SecondsToVTTTime converts non-negative seconds to the WebVTT cue time
// HH:MM:SS.mmm. Same truncation rules as SecondsToSRTTime.
func SecondsToVTTTime(seconds float64) string {
	h, m, s, ms := splitSeconds(seconds)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// splitSeconds decomposes seconds into h/m/s/ms by truncation. The millis
// term must be floor(seconds*1000) mod 1000: deriving it from the fractional
// part alone loses a ULP (3661.999 would come out as 998, not 999).
func splitSeconds(seconds float64) (h, m, s, ms int64) {
	whole := int64(seconds)
	h = whole / 3600
	m = (whole % 3600) / 60
	s = whole % 60
	ms = int64(seconds*1000) % 1000
	return h, m, s, ms
}
