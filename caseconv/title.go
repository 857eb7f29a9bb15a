package caseconv

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// titleTokenPattern segments the input into maximal runs of
	// non-separator characters, or single separator characters. Whitespace,
	// colons, hyphens, and en/em dashes separate tokens; everything passes
	// through to the output.
	titleTokenPattern = regexp.MustCompile(`(?s)[^\s:–—-]+|.`)

	// titleSmallWords lists the words that stay lowercase in the middle of
	// a title: articles, conjunctions, and short prepositions.
	titleSmallWords = regexp.MustCompile(`\b(?:an?d?|a[st]|because|but|by|en|for|i[fn]|neither|nor|o[fnr]|only|over|per|so|some|tha[tn]|the|to|up|upon|vs?\.?|versus|via|when|with|without|yet)\b`)

	// titleFirstAlnum matches a single character eligible for capitalization.
	titleFirstAlnum = regexp.MustCompile(`[A-Za-z0-9\x{00C0}-\x{00FF}]`)
)

// ToTitleCase converts s to Title Case. Unlike the word-joining conventions,
// it preserves all original delimiters and spacing and only adjusts
// capitalization:
//
//   - small words (a, an, the, vs, via, per, ...) stay lowercase unless they
//     begin or end the input
//   - tokens that already carry capitalization past their first character
//     (NASA, camelCase, TheStreet.com) are left untouched, as are tokens
//     with an interior dot (example.com, e.g.)
//   - URL-like tokens (a scheme followed by ':' and more text) are left
//     untouched
//
// Example: "this vs that" -> "This vs That"
// Example: "follow step-by-step instructions" -> "Follow Step-by-Step Instructions"
func ToTitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, loc := range titleTokenPattern.FindAllStringIndex(s, -1) {
		token := s[loc[0]:loc[1]]
		switch {
		case hasManualCase(token):
			b.WriteString(token)
		case titleSmallWords.MatchString(token) && loc[0] > 0 && loc[1] < len(s):
			b.WriteString(token)
		case urlLike(s, loc[1]):
			b.WriteString(token)
		default:
			b.WriteString(capitalizeToken(token))
		}
	}
	return b.String()
}

// hasManualCase reports whether token already carries deliberate casing:
// an ASCII uppercase letter anywhere past the first character, or a dot
// followed by more text (domains, file extensions, abbreviations).
func hasManualCase(token string) bool {
	runes := []rune(token)
	for i := 1; i < len(runes); i++ {
		if runes[i] >= 'A' && runes[i] <= 'Z' {
			return true
		}
		if runes[i] == '.' && i+1 < len(runes) {
			return true
		}
	}
	return false
}

// urlLike reports whether the token ending at byte offset end looks like a
// URL scheme: immediately followed by ':' that is not followed by
// whitespace. "one: two" capitalizes; "https://example.com" does not.
func urlLike(s string, end int) bool {
	if end >= len(s) || s[end] != ':' {
		return false
	}
	r, size := utf8.DecodeRuneInString(s[end+1:])
	if size == 0 {
		return true
	}
	return !unicode.IsSpace(r)
}

// capitalizeToken uppercases the first alphanumeric character of token,
// leaving surrounding punctuation (quotes, brackets, underscores) in place.
func capitalizeToken(token string) string {
	loc := titleFirstAlnum.FindStringIndex(token)
	if loc == nil {
		return token
	}
	return token[:loc[0]] + strings.ToUpper(token[loc[0]:loc[1]]) + token[loc[1]:]
}
