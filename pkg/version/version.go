// Package version provides protocol version parsing and comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the mesh profile version implemented by this library.
// Persisted file formats stamp it so readers can check compatibility.
const Current = "1.0"

// SpecVersion is a parsed "major.minor" protocol version. Versions with
// the same major are wire-compatible.
type SpecVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (SpecVersion, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return SpecVersion{}, fmt.Errorf("version %q: want major.minor", s)
	}
	maj, err := strconv.ParseUint(major, 10, 16)
	if err != nil {
		return SpecVersion{}, fmt.Errorf("version %q: major: %v", s, err)
	}
	min, err := strconv.ParseUint(minor, 10, 16)
	if err != nil {
		return SpecVersion{}, fmt.Errorf("version %q: minor: %v", s, err)
	}
	return SpecVersion{Major: uint16(maj), Minor: uint16(min)}, nil
}

func (v SpecVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible reports whether v and other share a major version.
func (v SpecVersion) Compatible(other SpecVersion) bool {
	return v.Major == other.Major
}
