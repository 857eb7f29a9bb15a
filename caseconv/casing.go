package caseconv

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UpperFirst returns word with its first character uppercased and the rest
// unchanged. Empty input returns the empty string.
// Example: "test" -> "Test"
// Example: "tEST" -> "TEST"
func UpperFirst(word string) string {
	if word == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(word)
	return cases.Upper(language.Und).String(word[:size]) + word[size:]
}

// LowerFirst returns word with its first character lowercased and the rest
// unchanged. Empty input returns the empty string.
// Example: "TEST" -> "tEST"
func LowerFirst(word string) string {
	if word == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(word)
	return cases.Lower(language.Und).String(word[:size]) + word[size:]
}
