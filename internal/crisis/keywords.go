package crisis

import "strings"

// MatchKeyword reports whether the message contains any of the configured
// crisis phrases. Matching is case-insensitive substring search so that
// punctuation and surrounding words do not hide a signal.
func MatchKeyword(message string, keywords []string) (string, bool) {
	lower := strings.ToLower(message)
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return keyword, true
		}
	}
	return "", false
}
