package engine

import "testing"

func TestCleanCaptionText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello world", "hello world"},
		{"entities", "don&amp;#39;t stop", "don&#39;t stop"},
		{"numeric entity", "don&#39;t stop", "don't stop"},
		{"styling tags", "<i>whispered</i> loudly", "whispered loudly"},
		{"surrounding whitespace", "\n  trimmed  \n", "trimmed"},
		{"only markup", "<b></b>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCaptionText(tt.input); got != tt.want {
				t.Errorf("CleanCaptionText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
