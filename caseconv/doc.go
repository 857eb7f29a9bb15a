// Package caseconv converts strings between naming conventions.
//
// The package is a small pipeline: a tokenizer ([SplitWords]) segments an
// input string into semantic words, and each convention rejoins those words
// with its own per-word casing rule and delimiter. Every conversion function
// is a pure, total function over all string inputs: there are no error
// conditions, no I/O, and no shared state, so all functions are safe for
// unrestricted concurrent use.
//
// # Quick Start
//
// Convert to a fixed convention:
//
//	caseconv.ToSnakeCase("XMLHttpRequest") // "xml_http_request"
//	caseconv.ToCamelCase("Test String")    // "testString"
//	caseconv.ToHeaderCase("test string")   // "Test-String"
//
// Or look a convention up by name:
//
//	out, err := caseconv.ConvertTo("constant", "test string")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // "TEST_STRING"
//
// # Custom Conventions
//
// A convention is just a delimiter plus a per-word transform, so new ones can
// be assembled with [Convert] and functional options:
//
//	caseconv.Convert("test string",
//		caseconv.WithDelimiter("+"),
//		caseconv.WithTransform(func(word string, index int) string {
//			return caseconv.UpperFirst(word)
//		}),
//	) // "Test+String"
//
// # Special Cases
//
// [ToTitleCase] and [SwapCase] deliberately do not follow the
// tokenize-transform-join pipeline. Title casing preserves the original
// delimiters and spacing, keeps small words (articles, short prepositions,
// conjunctions) lowercase in the middle of the input, and leaves
// already-capitalized or URL-like tokens untouched. SwapCase inverts the case
// of each character in place.
package caseconv
