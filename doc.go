// Package casetools provides case convention conversion for identifier-like strings.
//
// casetools tokenizes a free-form input string into semantic words and rejoins
// those words according to a target naming convention (camelCase, PascalCase,
// snake_case, CONSTANT_CASE, param-case, dot.case, path/case, Header-Case,
// Sentence case, Title Case, and a character-level case swap).
//
// # Overview
//
// The library consists of two packages:
//
//   - caseconv: Tokenize strings into words and convert them between naming conventions
//   - mcpserver: Expose the conversions as MCP tools over stdio
//
// Every conversion function is a pure, total function over all string inputs:
// there are no error returns, no I/O, and no shared state, so the package is
// safe for unrestricted concurrent use.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/casetools
//
// # Quick Start
//
// Convert a string to a named convention:
//
//	import "github.com/erraggy/casetools/caseconv"
//
//	fmt.Println(caseconv.ToSnakeCase("XMLHttpRequest")) // xml_http_request
//	fmt.Println(caseconv.ToCamelCase("Test String"))    // testString
//	fmt.Println(caseconv.ToHeaderCase("test string"))   // Test-String
//
// Inspect the tokenizer directly:
//
//	words := caseconv.SplitWords("XMLHttpRequest")
//	// ["XML", "Http", "Request"]
//
// Build a custom convention with functional options:
//
//	out := caseconv.Convert("test string",
//		caseconv.WithDelimiter("+"),
//		caseconv.WithTransform(func(word string, index int) string {
//			return caseconv.UpperFirst(word)
//		}),
//	)
//	// "Test+String"
//
// Look conventions up by name:
//
//	out, err := caseconv.ConvertTo("constant", "test string")
//	if err != nil {
//		log.Fatal(err)
//	}
//	// "TEST_STRING"
//
// # Tokenization
//
// The tokenizer treats any non-letter, non-digit character as a discarded
// delimiter and additionally breaks words inside alphanumeric runs:
//
//   - before an uppercase letter that follows a lowercase letter ("testString")
//   - at every transition between letters and digits ("user2id")
//   - before the final uppercase letter of an acronym run that is followed
//     by a lowercase letter ("XMLParser" -> "XML", "Parser")
//
// Tokenization never drops or reorders content characters; only delimiters
// are removed. Case normalization is left to each convention's per-word rule,
// so SplitWords returns words with their original casing intact.
//
// # MCP Server
//
// casetools also ships an embeddable MCP (Model Context Protocol) server that
// exposes the conversions as tools over stdio. It is intentionally not wired
// to a CLI here; embed it in your own binary:
//
//	import "github.com/erraggy/casetools/mcpserver"
//
//	if err := mcpserver.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/casetools
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/casetools
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package casetools
