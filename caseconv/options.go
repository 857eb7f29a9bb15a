package caseconv

// config holds the three knobs that define a convention: how the input is
// segmented into words, how each word is transformed, and what joins them.
type config struct {
	delimiter string
	transform wordTransform
	split     func(string) []string
}

// Option configures a [Convert] call.
type Option func(*config)

// WithDelimiter sets the string placed between words. The default is a
// single space.
func WithDelimiter(delimiter string) Option {
	return func(c *config) {
		c.delimiter = delimiter
	}
}

// WithTransform sets the per-word transform. The transform receives each
// word with its original casing and the word's zero-based index. The default
// lowercases every word.
func WithTransform(transform func(word string, index int) string) Option {
	return func(c *config) {
		if transform != nil {
			c.transform = transform
		}
	}
}

// WithSplitFunc replaces the tokenizer used to segment the input. The
// default is [SplitWords].
func WithSplitFunc(split func(string) []string) Option {
	return func(c *config) {
		if split != nil {
			c.split = split
		}
	}
}

// Convert runs the conversion pipeline with a caller-assembled convention:
// tokenize the input, transform each word, join with the delimiter. With no
// options it lowercases every word and joins with single spaces.
//
// All of the fixed conventions in this package are expressible through
// Convert; they are provided as named functions for the common cases.
func Convert(s string, opts ...Option) string {
	cfg := config{
		delimiter: " ",
		transform: lowerWord,
		split:     SplitWords,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return joinWords(cfg.split(s), cfg.transform, cfg.delimiter)
}
