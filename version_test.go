package slipo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	slipo "github.com/slipo-eu/slipo-go"
)

// TestCheckCompatibility verifies the classification of server versions
// against the supported range.
func TestCheckCompatibility(t *testing.T) {
	tests := []struct {
		version  string
		expected slipo.CompatibilityStatus
	}{
		{"1.2.0", slipo.Compatible},
		{"1.4.0", slipo.Compatible},
		{"1.4.5", slipo.Compatible},
		{"1.9.9", slipo.Compatible},
		{"1.1.0", slipo.Incompatible},
		{"0.9.0", slipo.Incompatible},
		{"2.0.0", slipo.Incompatible},
		{"3.1.4", slipo.Incompatible},
		{"", slipo.Unknown},
		{"not-a-version", slipo.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			result := slipo.CheckCompatibility(tt.version)

			assert.Equal(t, tt.expected, result.Status)
			assert.Equal(t, tt.version, result.ServerVersion)
			assert.Equal(t, slipo.Version, result.SDKVersion)
			assert.Equal(t, slipo.APIVersionRange, result.SupportedRange)
			assert.NotEmpty(t, result.Message)
		})
	}
}

// TestIsCompatible verifies the boolean shorthand.
func TestIsCompatible(t *testing.T) {
	assert.True(t, slipo.IsCompatible("1.4.0"))
	assert.False(t, slipo.IsCompatible("2.0.0"))
	assert.False(t, slipo.IsCompatible("garbage"))
}

// TestCompatibilityStatus_String verifies the status names.
func TestCompatibilityStatus_String(t *testing.T) {
	assert.Equal(t, "compatible", slipo.Compatible.String())
	assert.Equal(t, "incompatible", slipo.Incompatible.String())
	assert.Equal(t, "unknown", slipo.Unknown.String())
}

// TestMustBeCompatible verifies the panic on an unsupported version.
func TestMustBeCompatible(t *testing.T) {
	assert.NotPanics(t, func() {
		slipo.MustBeCompatible("1.4.0")
	})
	assert.PanicsWithValue(t,
		"slipo: server version 2.0.0 is not compatible with SDK "+slipo.Version+" (supported: "+slipo.APIVersionRange+")",
		func() {
			slipo.MustBeCompatible("2.0.0")
		})
}
