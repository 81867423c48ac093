package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// halfOpenRangePattern matches the only supported nuget range syntax: [from,to).
var halfOpenRangePattern = regexp.MustCompile(`^\[(?P<from>[^,\[\]()]*),(?P<to>[^,\[\]()]*)\)$`)

// VersionMatcher decides whether a referenced version satisfies the version
// expression declared in a nuspec file.
type VersionMatcher interface {
	MatchVersion(referenceVersion, nugetVersion string) VersionCheckerResult
}

// VersionRange is a half-open interval [From, To).
type VersionRange struct {
	From Version
	To   Version
}

// Contains reports whether from <= version < to.
func (r VersionRange) Contains(version Version) bool {
	return r.From.Compare(version) <= 0 && version.Compare(r.To) < 0
}

// ParseVersionRange parses a "[from,to)" expression. Anything else, including
// bounds that are not numeric versions, is an unsupported format.
func ParseVersionRange(expression string) (VersionRange, error) {
	match := halfOpenRangePattern.FindStringSubmatch(strings.TrimSpace(expression))
	if match == nil {
		return VersionRange{}, fmt.Errorf("%w: %q", ErrInvalidVersion, expression)
	}

	from, err := ParseVersion(match[halfOpenRangePattern.SubexpIndex("from")])
	if err != nil {
		return VersionRange{}, err
	}
	to, err := ParseVersion(match[halfOpenRangePattern.SubexpIndex("to")])
	if err != nil {
		return VersionRange{}, err
	}

	return VersionRange{From: from, To: to}, nil
}

// VersionChecker matches reference versions by interval containment.
type VersionChecker struct{}

// NewVersionChecker creates a VersionChecker.
func NewVersionChecker() *VersionChecker {
	return &VersionChecker{}
}

// MatchVersion checks that referenceVersion lies inside the half-open range
// nugetVersion. An empty reference version always matches.
func (it *VersionChecker) MatchVersion(referenceVersion, nugetVersion string) VersionCheckerResult {
	if referenceVersion == "" {
		return NewSuccessfulResult()
	}

	versionRange, err := ParseVersionRange(nugetVersion)
	if err != nil {
		return NewFailedResult(FormatUnsupportedNugetVersion(nugetVersion))
	}

	reference, err := ParseVersion(referenceVersion)
	if err != nil {
		return NewFailedResult("unable to parse version of reference: `" + referenceVersion + "`.")
	}

	if !versionRange.Contains(reference) {
		return NewFailedResult(referenceVersion + " is outside " + nugetVersion)
	}

	return NewSuccessfulResult()
}

// FormatUnsupportedNugetVersion builds the message reported for any version
// expression other than [from,to).
func FormatUnsupportedNugetVersion(nugetVersion string) string {
	return "unsupported nuget version format: `" + nugetVersion + "`. " +
		"Only `[from,to)` with from and to containing at least a major version (e.g. [1.2,2.0)) is currently supported"
}
