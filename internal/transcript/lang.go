package transcript

import "regexp"

// langCodeRe covers BCP-47-like tags: en, fil, zh-TW, zh-Hans.
var langCodeRe = regexp.MustCompile(`^[a-zA-Z]{2,3}(-[a-zA-Z]{2,4})?$`)

// IsValidLanguageCode reports whether code has the shape of a transcript
// language tag. Empty input is invalid; partial matches do not count.
func IsValidLanguageCode(code string) bool {
	return langCodeRe.MatchString(code)
}
