package keyword

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares free text for matching: NFC normalization, whitespace
// trim, lowercase. Matching is substring-based, so no tokenization happens.
func Normalize(text string) string {
	cleaned := norm.NFC.String(text)
	cleaned = strings.TrimSpace(cleaned)
	return strings.ToLower(cleaned)
}

// ContainsAny reports whether text contains at least one of the keywords.
// The text is expected to be normalized already.
func ContainsAny(text string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
