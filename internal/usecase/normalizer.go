package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var whitespaceRegex = regexp.MustCompile(`\s+`)

// wordPunctuation is trimmed from the edges of claim words before matching.
const wordPunctuation = ",.!?;:-'\"()[]"

// Normalize canonicalizes a string for comparison: lowercase, runs of
// whitespace (including newlines and tabs) collapsed to a single space,
// leading/trailing whitespace trimmed. Punctuation is kept as-is because
// unit and percent symbols are meaningful to the quantity parser.
// Total over any input and idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(strings.ToLower(s), " "))
}

// splitWords breaks a claim value into normalized words for partial
// matching. Punctuation is stripped per word; words that were nothing but
// punctuation are dropped.
func splitWords(s string) []string {
	fields := strings.Fields(Normalize(s))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.Trim(f, wordPunctuation)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
