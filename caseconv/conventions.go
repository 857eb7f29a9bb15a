package caseconv

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownConvention indicates a convention name that is not registered.
// Use errors.Is to detect it.
var ErrUnknownConvention = errors.New("unknown convention")

// conventionFuncs maps convention names to their conversion functions.
// "param" and "kebab" name the same convention.
var conventionFuncs = map[string]func(string) string{
	"camel":    ToCamelCase,
	"pascal":   ToPascalCase,
	"capital":  ToCapitalCase,
	"snake":    ToSnakeCase,
	"constant": ToConstantCase,
	"param":    ToParamCase,
	"kebab":    ToKebabCase,
	"dot":      ToDotCase,
	"path":     ToPathCase,
	"header":   ToHeaderCase,
	"sentence": ToSentenceCase,
	"title":    ToTitleCase,
	"swap":     SwapCase,
}

// ConventionNames returns all registered convention names in sorted order.
func ConventionNames() []string {
	names := make([]string, 0, len(conventionFuncs))
	for name := range conventionFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConvertTo converts input to the named convention. Names are matched
// case-insensitively. Unknown names return an error wrapping
// [ErrUnknownConvention]; the conversion itself never fails.
func ConvertTo(convention, input string) (string, error) {
	fn, ok := conventionFuncs[strings.ToLower(convention)]
	if !ok {
		return "", fmt.Errorf("%w %q; valid conventions: %s",
			ErrUnknownConvention, convention, strings.Join(ConventionNames(), ", "))
	}
	return fn(input), nil
}
