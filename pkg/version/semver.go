package version

import (
	"github.com/Masterminds/semver/v3"
)

var (
	parsedVersion  *semver.Version
	parseAttempted bool
)

// resetParsedVersion clears the cached parsed version for testing.
func resetParsedVersion() {
	parsedVersion = nil
	parseAttempted = false
}

// Parsed returns the parsed semantic version, or nil for builds such as "dev".
// The result is cached after the first call.
func Parsed() *semver.Version {
	if parseAttempted {
		return parsedVersion
	}
	parseAttempted = true

	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil
	}
	parsedVersion = v
	return parsedVersion
}

// IsPrerelease reports whether the build is a pre-release. Dev builds are not.
func IsPrerelease() bool {
	v := Parsed()
	return v != nil && v.Prerelease() != ""
}

// IsDevBuild reports whether the version is not valid semver.
func IsDevBuild() bool {
	return Parsed() == nil
}

// Satisfies reports whether the current version meets constraint, e.g.
// ">= 1.2". Dev builds satisfy every constraint.
func Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}
	v := Parsed()
	if v == nil {
		return true, nil
	}
	return c.Check(v), nil
}
