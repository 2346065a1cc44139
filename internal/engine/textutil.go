package engine

import (
	"html"
	"regexp"
	"strings"
)

// User-Agent strings used across HTTP clients.
const (
	UserAgentChrome = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

var markupTagRe = regexp.MustCompile(`<[^>]+>`)

// CleanCaptionText strips inline markup and resolves HTML entities in one
// caption line. Timedtext character data carries entities (&amp;#39;) and
// occasionally <i>/<b> styling tags even with formatting disabled.
func CleanCaptionText(s string) string {
	return strings.TrimSpace(html.UnescapeString(markupTagRe.ReplaceAllString(s, "")))
}

// Truncate returns the first n bytes of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
