package transcript

import "testing"

func TestIsValidLanguageCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"en", true},
		{"de", true},
		{"fil", true},
		{"zh-TW", true},
		{"zh-Hans", true},
		{"pt-BR", true},
		{"", false},
		{"e", false},
		{"invalid", false},
		{"en-", false},
		{"-TW", false},
		{"en-US-x", false},
		{"e1", false},
		{"zh_TW", false},
		{" en", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IsValidLanguageCode(tt.code); got != tt.want {
				t.Errorf("IsValidLanguageCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
