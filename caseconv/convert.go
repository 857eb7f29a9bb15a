package caseconv

import (
	"strings"
	"unicode"
)

// A wordTransform produces the final form of a single word given its
// zero-based position in the word sequence.
type wordTransform func(word string, index int) string

func lowerWord(word string, _ int) string { return strings.ToLower(word) }

func upperWord(word string, _ int) string { return strings.ToUpper(word) }

func capitalWord(word string, _ int) string {
	return UpperFirst(strings.ToLower(word))
}

func sentenceWord(word string, index int) string {
	if index == 0 {
		return UpperFirst(strings.ToLower(word))
	}
	return strings.ToLower(word)
}

// pascalWord capitalizes a word for delimiter-less joining. A non-first word
// that starts with a digit keeps a leading underscore so the word boundary
// survives the join: "version 1.2" -> "Version_1_2", not "Version12".
func pascalWord(word string, index int) string {
	if word == "" {
		return ""
	}
	out := UpperFirst(strings.ToLower(word))
	if index > 0 && out[0] >= '0' && out[0] <= '9' {
		return "_" + out
	}
	return out
}

func camelWord(word string, index int) string {
	if index == 0 {
		return strings.ToLower(word)
	}
	return pascalWord(word, index)
}

// joinWords is the shared pipeline tail: transform each word, then join.
func joinWords(words []string, transform wordTransform, delimiter string) string {
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	for i, word := range words {
		if i > 0 {
			b.WriteString(delimiter)
		}
		b.WriteString(transform(word, i))
	}
	return b.String()
}

// ToCamelCase converts s to camelCase (lowercase first word, capitalized
// subsequent words, no delimiter). Also known as lowerCamelCase or mixedCase.
// Example: "Test String" -> "testString"
func ToCamelCase(s string) string {
	return joinWords(SplitWords(s), camelWord, "")
}

// ToPascalCase converts s to PascalCase (every word capitalized, no
// delimiter). Also known as UpperCamelCase.
// Example: "test string" -> "TestString"
func ToPascalCase(s string) string {
	return joinWords(SplitWords(s), pascalWord, "")
}

// ToCapitalCase converts s to Capital Case (every word capitalized, joined
// by single spaces).
// Example: "test string" -> "Test String"
func ToCapitalCase(s string) string {
	return joinWords(SplitWords(s), capitalWord, " ")
}

// ToSnakeCase converts s to snake_case (lowercase words joined by
// underscores).
// Example: "Test String" -> "test_string"
func ToSnakeCase(s string) string {
	return joinWords(SplitWords(s), lowerWord, "_")
}

// ToConstantCase converts s to CONSTANT_CASE (uppercase words joined by
// underscores). Also known as SCREAMING_SNAKE_CASE.
// Example: "test string" -> "TEST_STRING"
func ToConstantCase(s string) string {
	return joinWords(SplitWords(s), upperWord, "_")
}

// ToParamCase converts s to param-case (lowercase words joined by hyphens).
// Also known as kebab-case or dash-case; see [ToKebabCase].
// Example: "test string" -> "test-string"
func ToParamCase(s string) string {
	return joinWords(SplitWords(s), lowerWord, "-")
}

// ToKebabCase is an alias for [ToParamCase].
func ToKebabCase(s string) string {
	return ToParamCase(s)
}

// ToDotCase converts s to dot.case (lowercase words joined by dots).
// Example: "test string" -> "test.string"
func ToDotCase(s string) string {
	return joinWords(SplitWords(s), lowerWord, ".")
}

// ToPathCase converts s to path/case (lowercase words joined by slashes).
// Example: "test string" -> "test/string"
func ToPathCase(s string) string {
	return joinWords(SplitWords(s), lowerWord, "/")
}

// ToHeaderCase converts s to Header-Case (capitalized words joined by
// hyphens), as in HTTP header names.
// Example: "test string" -> "Test-String"
func ToHeaderCase(s string) string {
	return joinWords(SplitWords(s), capitalWord, "-")
}

// ToSentenceCase converts s to Sentence case (lowercase words joined by
// single spaces, with only the first word capitalized).
// Example: "Test String" -> "Test string"
func ToSentenceCase(s string) string {
	return joinWords(SplitWords(s), sentenceWord, " ")
}

// SwapCase inverts the case of every cased character in s, leaving all other
// characters (including delimiters and spacing) exactly where they were.
// It is the one conversion that bypasses the tokenizer entirely.
// Example: "Test String" -> "tEST sTRING"
func SwapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}
