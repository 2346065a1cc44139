package transcript

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleTranscript() *Transcript {
	return &Transcript{
		VideoID:      "dQw4w9WgXcQ",
		Language:     "English",
		LanguageCode: "en",
		IsGenerated:  true,
		Snippets: []Snippet{
			{Text: "Never gonna give you up", Start: 0, Duration: 1.5},
			{Text: "Never gonna let you down", Start: 1.5, Duration: 2.25},
		},
	}
}

func TestSecondsToSRTTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{0.001, "00:00:00,001"},
		{1.5, "00:00:01,500"},
		{3.75, "00:00:03,750"},
		{12.34, "00:00:12,340"},
		{59.999, "00:00:59,999"},
		{3661.999, "01:01:01,999"}, // truncation, not rounding, at the millisecond
		{7323.456, "02:02:03,456"},
		{35999.9, "09:59:59,900"},
		{90000.5, "25:00:00,500"}, // hours past 24 stay plain integers
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := SecondsToSRTTime(tt.seconds); got != tt.want {
				t.Errorf("SecondsToSRTTime(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestSecondsToVTTTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00.000"},
		{3.75, "00:00:03.750"},
		{3661.999, "01:01:01.999"},
		{90000.5, "25:00:00.500"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := SecondsToVTTTime(tt.seconds); got != tt.want {
				t.Errorf("SecondsToVTTTime(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatTranscriptText(t *testing.T) {
	got, err := FormatTranscript(sampleTranscript(), FormatText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[0.00s] Never gonna give you up\n[1.50s] Never gonna let you down"
	if got != want {
		t.Errorf("text output:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatTranscriptSRT(t *testing.T) {
	got, err := FormatTranscript(sampleTranscript(), FormatSRT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"1",
		"00:00:00,000 --> 00:00:01,500",
		"Never gonna give you up",
		"",
		"2",
		"00:00:01,500 --> 00:00:03,750",
		"Never gonna let you down",
		"",
	}, "\n")
	if got != want {
		t.Errorf("srt output:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatTranscriptVTT(t *testing.T) {
	got, err := FormatTranscript(sampleTranscript(), FormatVTT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"WEBVTT",
		"",
		"00:00:00.000 --> 00:00:01.500",
		"Never gonna give you up",
		"",
		"00:00:01.500 --> 00:00:03.750",
		"Never gonna let you down",
		"",
	}, "\n")
	if got != want {
		t.Errorf("vtt output:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatTranscriptJSONRoundTrip(t *testing.T) {
	orig := sampleTranscript()
	out, err := FormatTranscript(orig, FormatJSON)
	require.NoError(t, err)

	var back Transcript
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	require.Equal(t, orig.VideoID, back.VideoID)
	require.Equal(t, orig.Language, back.Language)
	require.Equal(t, orig.LanguageCode, back.LanguageCode)
	require.Equal(t, orig.IsGenerated, back.IsGenerated)
	require.Equal(t, orig.Snippets, back.Snippets)

	// 2-space indentation, snippet order preserved in the array.
	require.Contains(t, out, "\n  \"video_id\": \"dQw4w9WgXcQ\"")
	require.Less(t, strings.Index(out, "give you up"), strings.Index(out, "let you down"))
}

func TestFormatTranscriptJSONNonASCII(t *testing.T) {
	tr := &Transcript{
		VideoID:      "abc12345678",
		Language:     "Japanese",
		LanguageCode: "ja",
		Snippets:     []Snippet{{Text: "こんにちは <世界> & friends", Start: 0.5, Duration: 1}},
	}
	out, err := FormatTranscript(tr, FormatJSON)
	require.NoError(t, err)
	// Non-ASCII and HTML-significant characters stay literal, never \uXXXX.
	require.Contains(t, out, "こんにちは <世界> & friends")
	require.NotContains(t, out, `\u`)
}

func TestFormatTranscriptJSONEmptySnippets(t *testing.T) {
	out, err := FormatTranscript(&Transcript{VideoID: "abc12345678"}, FormatJSON)
	require.NoError(t, err)
	// nil snippets serialize as an empty array, not null
	require.Contains(t, out, `"transcript": []`)
}

func TestFormatTranscriptZeroDuration(t *testing.T) {
	tr := &Transcript{Snippets: []Snippet{{Text: "blip", Start: 2, Duration: 0}}}
	got, err := FormatTranscript(tr, FormatSRT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "00:00:02,000 --> 00:00:02,000") {
		t.Errorf("zero-duration cue not preserved:\n%s", got)
	}
}

func TestFormatTranscriptUnsupported(t *testing.T) {
	for _, bad := range []Format{"xml", "XML", "Text", "csv"} {
		_, err := FormatTranscript(sampleTranscript(), bad)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("FormatTranscript(%q) error = %v, want ErrUnsupportedFormat", bad, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"text", FormatText, false},
		{"srt", FormatSRT, false},
		{"vtt", FormatVTT, false},
		{"", FormatText, false}, // schema default
		{"xml", "", true},
		{"SRT", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Fatalf("ParseFormat(%q) error = %v, want ErrUnsupportedFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
