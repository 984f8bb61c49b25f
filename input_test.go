package slipo_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	slipo "github.com/slipo-eu/slipo-go"
)

// TestInput_MarshalJSON verifies the wire form of the three input
// variants.
func TestInput_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    slipo.Input
		expected string
	}{
		{
			name:     "file system input",
			input:    slipo.FileInput("datasets/osm.nt"),
			expected: `{"type":"FILESYSTEM","path":"datasets/osm.nt"}`,
		},
		{
			name:     "catalog input",
			input:    slipo.CatalogInput(42, 3),
			expected: `{"type":"CATALOG","id":42,"version":3}`,
		},
		{
			name:     "workflow output input",
			input:    slipo.OutputInput(10, 2, 7),
			expected: `{"type":"OUTPUT","processId":10,"processVersion":2,"fileId":7}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.input)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

// TestInput_Kind verifies the discriminant of each constructor.
func TestInput_Kind(t *testing.T) {
	assert.Equal(t, slipo.InputFileSystem, slipo.FileInput("a/b").Kind())
	assert.Equal(t, slipo.InputCatalog, slipo.CatalogInput(1, 2).Kind())
	assert.Equal(t, slipo.InputOutput, slipo.OutputInput(1, 2, 3).Kind())
	assert.Empty(t, slipo.Input{}.Kind())
}

// TestInput_ZeroValueInvalid verifies the zero Input is rejected.
func TestInput_ZeroValueInvalid(t *testing.T) {
	err := slipo.Input{}.Validate()

	require.Error(t, err)

	var apiErr *slipo.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, slipo.CodeInvalidInput, apiErr.Code)
}

// TestInput_EmptyPathInvalid verifies a file system input requires a
// path.
func TestInput_EmptyPathInvalid(t *testing.T) {
	err := slipo.FileInput("").Validate()

	require.Error(t, err)

	var apiErr *slipo.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, slipo.CodeInvalidInput, apiErr.Code)
}

// TestResolveInput verifies the mapping of the legacy polymorphic
// shapes to tagged descriptors.
func TestResolveInput(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{
			name:     "string is a file system path",
			value:    "rome/pois.nt",
			expected: `{"type":"FILESYSTEM","path":"rome/pois.nt"}`,
		},
		{
			name:     "two ints are a catalog id and revision",
			value:    []int{5, 1},
			expected: `{"type":"CATALOG","id":5,"version":1}`,
		},
		{
			name:     "two int64s are a catalog id and revision",
			value:    []int64{5, 1},
			expected: `{"type":"CATALOG","id":5,"version":1}`,
		},
		{
			name:     "three ints are a workflow output file",
			value:    []int{8, 2, 31},
			expected: `{"type":"OUTPUT","processId":8,"processVersion":2,"fileId":31}`,
		},
		{
			name:     "an input passes through",
			value:    slipo.CatalogInput(9, 4),
			expected: `{"type":"CATALOG","id":9,"version":4}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := slipo.ResolveInput(tt.value)
			require.NoError(t, err)

			data, err := json.Marshal(input)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

// TestResolveInput_Invalid verifies the documented failures: slices of
// the wrong length and values of unsupported types.
func TestResolveInput_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"one identifier", []int{1}},
		{"four identifiers", []int{1, 2, 3, 4}},
		{"empty slice", []int64{}},
		{"plain int", 42},
		{"float", 1.5},
		{"nil", nil},
		{"map", map[string]int{"id": 1}},
		{"zero input", slipo.Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := slipo.ResolveInput(tt.value)

			require.Error(t, err)

			var apiErr *slipo.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, slipo.CodeInvalidInput, apiErr.Code)
		})
	}
}
