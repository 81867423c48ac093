package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const versionComponents = 4

// ErrInvalidVersion is returned when a string is not a dotted numeric version.
var ErrInvalidVersion = errors.New("invalid version")

// Version is a four component numeric assembly version
// (major, minor, build, revision).
type Version [versionComponents]uint64

// ExpandToFullVersion right-pads a dotted version with ".0" components
// until it has four of them. "1.5" becomes "1.5.0.0".
func ExpandToFullVersion(version string) string {
	for strings.Count(version, ".") < versionComponents-1 {
		version += ".0"
	}
	return version
}

// ParseVersion parses a dotted numeric version with one to four components.
// Missing components default to zero.
func ParseVersion(raw string) (Version, error) {
	var version Version

	parts := strings.Split(ExpandToFullVersion(strings.TrimSpace(raw)), ".")
	if len(parts) != versionComponents {
		return version, fmt.Errorf("%w: %q has more than %d components", ErrInvalidVersion, raw, versionComponents)
	}

	for i, part := range parts {
		value, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return version, fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
		}
		version[i] = value
	}

	return version, nil
}

// Compare returns -1, 0 or 1 depending on whether v is lower than, equal to
// or greater than other.
func (v Version) Compare(other Version) int {
	for i := range versionComponents {
		switch {
		case v[i] < other[i]:
			return -1
		case v[i] > other[i]:
			return 1
		}
	}
	return 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v[0], v[1], v[2], v[3])
}
