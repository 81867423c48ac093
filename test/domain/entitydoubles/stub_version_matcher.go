package entitydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/nugetcheck/internal/domain/entities"
)

// MatchVersionCall records a single invocation of MatchVersion.
type MatchVersionCall struct {
	ReferenceVersion string
	NugetVersion     string
}

// StubVersionMatcher implements entities.VersionMatcher. It succeeds unless
// a failure message is configured for the (reference, nuget) version pair.
type StubVersionMatcher struct {
	Failures map[MatchVersionCall]string
	Calls    []MatchVersionCall
}

var _ entities.VersionMatcher = (*StubVersionMatcher)(nil)

func (m *StubVersionMatcher) MatchVersion(referenceVersion, nugetVersion string) entities.VersionCheckerResult {
	call := MatchVersionCall{ReferenceVersion: referenceVersion, NugetVersion: nugetVersion}
	m.Calls = append(m.Calls, call)
	if message, ok := m.Failures[call]; ok {
		return entities.NewFailedResult(message)
	}
	return entities.NewSuccessfulResult()
}
