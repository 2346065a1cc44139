package transcript

import (
	"regexp"
	"strings"
)

// invalidFilenameChars are rejected by at least one mainstream filesystem.
var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// ExtensionForFormat returns the file extension for a format, or "" for an
// unknown one. Unlike FormatTranscript this never errors; callers composing
// filenames just skip the extension.
func ExtensionForFormat(format Format) string {
	switch format {
	case FormatJSON:
		return "json"
	case FormatText:
		return "txt"
	case FormatSRT:
		return "srt"
	case FormatVTT:
		return "vtt"
	}
	return ""
}

// SanitizeFilename replaces each filesystem-unsafe character with an
// underscore and trims trailing spaces and periods, which Windows rejects.
// Interior characters are left alone beyond the substitution.
func SanitizeFilename(name string) string {
	return strings.TrimRight(invalidFilenameChars.ReplaceAllString(name, "_"), " .")
}
