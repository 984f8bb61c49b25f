package slipo

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
const Version = "0.2.0"

// APIVersion is the SLIPO Workbench version this SDK was built against.
//
// The SDK is tested against this version and may not work correctly with
// significantly different installations. Pass the version reported by
// the Workbench to [CheckCompatibility] to verify at runtime.
const APIVersion = "1.4.0"

// APIVersionRange is the range of Workbench versions this SDK supports.
const APIVersionRange = ">= 1.2, < 2.0"

// CompatibilityStatus classifies the outcome of a compatibility check.
type CompatibilityStatus int

const (
	// Compatible means the server version is within APIVersionRange.
	Compatible CompatibilityStatus = iota

	// Incompatible means the server version is outside APIVersionRange.
	Incompatible

	// Unknown means the server version could not be parsed.
	Unknown
)

func (s CompatibilityStatus) String() string {
	switch s {
	case Compatible:
		return "compatible"
	case Incompatible:
		return "incompatible"
	default:
		return "unknown"
	}
}

// CompatibilityResult describes how a server version relates to the
// versions this SDK supports.
type CompatibilityResult struct {
	Status           CompatibilityStatus
	ServerVersion    string
	SDKVersion       string
	TargetAPIVersion string
	SupportedRange   string
	Message          string
}

// IsCompatible returns true if the status is [Compatible].
func (r CompatibilityResult) IsCompatible() bool {
	return r.Status == Compatible
}

// CheckCompatibility checks a server version against the range supported
// by this SDK.
func CheckCompatibility(serverVersion string) CompatibilityResult {
	result := CompatibilityResult{
		ServerVersion:    serverVersion,
		SDKVersion:       Version,
		TargetAPIVersion: APIVersion,
		SupportedRange:   APIVersionRange,
	}

	v, err := semver.NewVersion(serverVersion)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("cannot parse server version %q: %v", serverVersion, err)
		return result
	}

	rangeConstraint, err := semver.NewConstraint(APIVersionRange)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("invalid supported range %q: %v", APIVersionRange, err)
		return result
	}

	if rangeConstraint.Check(v) {
		result.Status = Compatible
		result.Message = fmt.Sprintf("server version %s is compatible with SDK %s", serverVersion, Version)
	} else {
		result.Status = Incompatible
		result.Message = fmt.Sprintf("server version %s is not compatible with SDK %s (supported: %s)",
			serverVersion, Version, APIVersionRange)
	}
	return result
}

// IsCompatible reports whether a server version is within the range
// supported by this SDK.
func IsCompatible(serverVersion string) bool {
	return CheckCompatibility(serverVersion).IsCompatible()
}

// MustBeCompatible panics if the server version is not compatible with
// this SDK. Intended for program initialization.
func MustBeCompatible(serverVersion string) {
	result := CheckCompatibility(serverVersion)
	if !result.IsCompatible() {
		panic("slipo: " + result.Message)
	}
}
