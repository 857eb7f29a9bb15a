// Package testutil provides test fixtures shared by casetools unit tests.
package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// ConversionCase is one golden corpus entry: an input string and its
// expected rendering under each convention. Expected may cover only a subset
// of the registered conventions; absent conventions are simply not asserted.
type ConversionCase struct {
	Name     string            `yaml:"name"`
	Input    string            `yaml:"input"`
	Expected map[string]string `yaml:"expected"`
}

// LoadConversionCorpus reads and decodes a YAML conversion corpus file,
// failing the test on any I/O or decode error.
func LoadConversionCorpus(t *testing.T, path string) []ConversionCase {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "read corpus file %s", path)

	var cases []ConversionCase
	require.NoError(t, yaml.Unmarshal(data, &cases), "decode corpus file %s", path)
	require.NotEmpty(t, cases, "corpus file %s contains no cases", path)

	for i, c := range cases {
		require.NotEmpty(t, c.Name, "corpus case %d in %s has no name", i, path)
		require.NotEmpty(t, c.Expected, "corpus case %q in %s asserts nothing", c.Name, path)
	}
	return cases
}
