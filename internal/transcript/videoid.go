package transcript

import "regexp"

// bareVideoIDRe matches a bare 11-character YouTube video ID.
var bareVideoIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// videoURLRes are tried in order; the first submatch wins. The last pattern is
// a loose fallback for watch URLs where v= is not the first query parameter.
var videoURLRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?.*v=([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID returns the 11-character video ID found in a YouTube URL, or
// the input unchanged when it is already a bare ID. Returns "" when nothing
// matches. IDs are case-sensitive and kept verbatim.
func ExtractVideoID(urlOrID string) string {
	if urlOrID == "" {
		return ""
	}
	if bareVideoIDRe.MatchString(urlOrID) {
		return urlOrID
	}
	for _, re := range videoURLRes {
		if m := re.FindStringSubmatch(urlOrID); m != nil {
			return m[1]
		}
	}
	return ""
}
