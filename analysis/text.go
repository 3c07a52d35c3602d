package analysis

import (
	"regexp"
	"strings"
)

var nonAlpha = regexp.MustCompile(`[^a-zA-Z\s]`)

// Normalize lowercases text, strips everything outside the Latin
// alphabet and whitespace, and collapses whitespace runs to single
// spaces. Idempotent.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = nonAlpha.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
