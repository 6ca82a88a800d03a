package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadResults_PreservesOrderAndIgnoresExtraFields(t *testing.T) {
	path := writeFile(t, "simulation_results.json", `[
  {"m": 3, "n": 8, "pe": 0.01, "successRate": 99.5},
  {"m": 4, "n": 16, "pe": 0.01, "successRate": 99.9},
  {"m": 3, "n": 8, "pe": 0.05, "successRate": 97.2}
]`)

	data, err := LoadResults(path)
	require.NoError(t, err)
	assert.Equal(t, Dataset{
		{M: 3, Pe: 0.01, SuccessRate: 99.5},
		{M: 4, Pe: 0.01, SuccessRate: 99.9},
		{M: 3, Pe: 0.05, SuccessRate: 97.2},
	}, data)
}

func TestLoadResults_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simulation_results.json")

	data, err := LoadResults(path)
	assert.Nil(t, data)

	var missing *MissingInputError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, path, missing.Path)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "experiments.js")
	assert.NotContains(t, err.Error(), "\n")
}

func TestLoadResults_MalformedIsNotMissingInput(t *testing.T) {
	path := writeFile(t, "bad.json", `{"m": 3`)

	_, err := LoadResults(path)
	require.Error(t, err)

	var missing *MissingInputError
	assert.False(t, errors.As(err, &missing))
	assert.Contains(t, err.Error(), "failed to parse results file")
}

func TestDecodeResults_EmptyArray(t *testing.T) {
	data, err := DecodeResults(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestDecodeResults_RejectsNegativeOrder(t *testing.T) {
	_, err := DecodeResults(strings.NewReader(`[{"m": -1, "pe": 0.1, "successRate": 50}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative code order")
}

func TestDecodeResults_OutOfRangeValuesPassThrough(t *testing.T) {
	data, err := DecodeResults(strings.NewReader(`[{"m": 2, "pe": 0.9, "successRate": 150}]`))
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, 0.9, data[0].Pe)
	assert.Equal(t, 150.0, data[0].SuccessRate)
}
