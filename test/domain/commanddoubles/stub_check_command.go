package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/nugetcheck/internal/domain/commands"
)

// StubCheckCommand is a stub implementation of commands.Check.
// Results are keyed by nuspec path; unknown paths succeed without violations.
type StubCheckCommand struct {
	Results   map[string]*commands.CheckResult
	Errs      map[string]error
	CallsOpts []commands.CheckOptions
}

var _ commands.Check = (*StubCheckCommand)(nil)

func (s *StubCheckCommand) Execute(
	_ context.Context,
	opts commands.CheckOptions,
) (*commands.CheckResult, error) {
	s.CallsOpts = append(s.CallsOpts, opts)
	if err, ok := s.Errs[opts.NuspecFileFullPath]; ok {
		return nil, err
	}
	if result, ok := s.Results[opts.NuspecFileFullPath]; ok {
		return result, nil
	}
	return &commands.CheckResult{}, nil
}
