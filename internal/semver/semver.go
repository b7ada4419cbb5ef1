// Package semver parses the loose "major.minor[.patch]" version strings
// used by the "openapi" and "jsonSchemaDialect" fields, rather than
// matching them with a bare regex.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed major.minor.patch triple, with an optional
// pre-release suffix carried verbatim.
type Version struct {
	Major, Minor, Patch int
	Prerelease          string
}

// Parse parses s as a semantic version. Patch defaults to 0 when absent.
func Parse(s string) (Version, error) {
	var v Version
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		v.Prerelease = s[idx+1:]
		s = s[:idx]
	}
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("semver: invalid version format: %q", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return Version{}, fmt.Errorf("semver: invalid major version: %q", parts[0])
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return Version{}, fmt.Errorf("semver: invalid minor version: %q", parts[1])
	}
	patch := 0
	if len(parts) == 3 {
		patch, err = strconv.Atoi(parts[2])
		if err != nil || patch < 0 {
			return Version{}, fmt.Errorf("semver: invalid patch version: %q", parts[2])
		}
	}
	v.Major, v.Minor, v.Patch = major, minor, patch
	return v, nil
}

// Is32 reports whether v is a 3.2.x release.
func (v Version) Is32() bool {
	return v.Major == 3 && v.Minor == 2
}

// String renders major.minor.patch, omitting a zero prerelease suffix.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	return s
}
