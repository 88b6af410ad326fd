package dmart

import "github.com/Masterminds/semver/v3"

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/):
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.1.0"

// APIVersion is the dmart API version this SDK was built against.
// Compatibility with versions outside [apiVersionRange] is not guaranteed.
const APIVersion = "1.0.0"

// apiVersionRange is the span of backend versions this SDK is known to
// work with.
const apiVersionRange = ">= 1.0.0, < 2.0.0"

// CompatibleAPIVersion reports whether a backend version string falls
// inside the SDK's supported range. The error is non-nil only when the
// version string is not valid semver.
func CompatibleAPIVersion(version string) (bool, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, err
	}
	c, err := semver.NewConstraint(apiVersionRange)
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}
