package engine

// --- Tool inputs ---

type ExtractVideoIDInput struct {
	URLOrID string `json:"url_or_id" jsonschema:"YouTube URL (watch, youtu.be, embed) or bare 11-character video ID"`
}

type TranscriptInput struct {
	VideoID   string   `json:"video_id" jsonschema:"YouTube video ID or any YouTube URL"`
	Languages []string `json:"languages,omitempty" jsonschema:"Preferred language codes in priority order, e.g. en, zh-TW (default: en)"`
	Format    string   `json:"format,omitempty" jsonschema:"Output format: json, text, srt, vtt (default: text)"`
}

type ListTranscriptsInput struct {
	VideoID string `json:"video_id" jsonschema:"YouTube video ID or any YouTube URL"`
}

// --- Tool outputs (JSON responses) ---

type ExtractVideoIDOutput struct {
	VideoID string `json:"video_id"`
}

type TranscriptOutput struct {
	VideoID      string `json:"video_id"`
	Language     string `json:"language"`
	LanguageCode string `json:"language_code"`
	IsGenerated  bool   `json:"is_generated"`
	Format       string `json:"format"`
	Filename     string `json:"filename"` // suggested save name, already sanitized
	SnippetCount int    `json:"snippet_count"`
	Content      string `json:"content"`
}

// TrackInfo describes one available caption track.
type TrackInfo struct {
	Language       string `json:"language"`
	LanguageCode   string `json:"language_code"`
	IsGenerated    bool   `json:"is_generated"`
	IsTranslatable bool   `json:"is_translatable"`
}

type ListTranscriptsOutput struct {
	VideoID            string      `json:"video_id"`
	TotalTranscripts   int         `json:"total_transcripts"`
	AvailableLanguages []TrackInfo `json:"available_languages"`
	ManuallyCreated    []TrackInfo `json:"manually_created"`
	AutoGenerated      []TrackInfo `json:"auto_generated"`
}
