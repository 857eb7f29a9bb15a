package caseconv

import "unicode"

// SplitWords splits s into its semantic words, in order, discarding
// delimiters. Any character that is not a letter or digit is a delimiter.
// Within an alphanumeric run, a new word starts:
//
//   - at an uppercase letter that follows a lowercase letter ("testString")
//   - at every transition between letters and digits ("user2id")
//   - at the final uppercase letter of an uppercase run that is followed by
//     a lowercase letter ("XMLParser" -> "XML", "Parser")
//
// Words keep their original casing; normalization is the caller's concern.
// The returned words never include empty strings, and concatenating them
// yields exactly the non-delimiter characters of s in order.
//
// Example: "XMLHttpRequest" -> ["XML", "Http", "Request"]
// Example: "test_string-v2" -> ["test", "string", "v", "2"]
func SplitWords(s string) []string {
	runes := []rune(s)
	n := len(runes)
	var words []string

	i := 0
	for i < n {
		r := runes[i]
		if !isWordRune(r) {
			i++
			continue
		}

		j := i + 1
		switch {
		case unicode.IsDigit(r):
			for j < n && unicode.IsDigit(runes[j]) {
				j++
			}
		case unicode.IsUpper(r):
			for j < n && unicode.IsUpper(runes[j]) {
				j++
			}
			switch {
			case j-i > 1 && j < n && isLowerRune(runes[j]):
				// Acronym run: its last uppercase letter belongs to the
				// next word ("XMLParser" -> "XML" | "Parser").
				j--
			case j-i == 1:
				for j < n && isLowerRune(runes[j]) {
					j++
				}
			}
		default:
			for j < n && isLowerRune(runes[j]) {
				j++
			}
		}

		words = append(words, string(runes[i:j]))
		i = j
	}

	return words
}

// isWordRune reports whether r is a content character rather than a delimiter.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isLowerRune treats caseless letters (CJK, etc.) as lowercase so they group
// into words the same way lowercase letters do.
func isLowerRune(r rune) bool {
	return unicode.IsLetter(r) && !unicode.IsUpper(r)
}
