// Package tokenize turns raw text into the token sequences the aligner
// consumes: individual characters for character-level scoring or
// whitespace-separated words for word-level scoring.
package tokenize

import (
	"strings"
	"unicode"
)

// Chars splits s into one token per rune.
func Chars(s string) []string {
	tokens := make([]string, 0, len(s))
	for _, r := range s {
		tokens = append(tokens, string(r))
	}
	return tokens
}

// Words splits s into whitespace-separated tokens.
func Words(s string) []string {
	return strings.Fields(s)
}

// Normalize lowercases s and strips punctuation, the usual preprocessing
// before word-level error-rate scoring.
func Normalize(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, s)
}
