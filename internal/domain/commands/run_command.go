package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nugetcheck/internal/domain/entities"
)

// Run is the interface for the run command (batch mode).
type Run interface {
	Execute(ctx context.Context, settings *entities.Settings, opts RunOptions) (*RunResult, error)
}

// RunOptions holds runtime options for a single run.
type RunOptions struct {
	Verbose   bool
	CheckName string // If set, only run the check with this name (CLI override)
}

// RunResult aggregates the outcome of every check of a run.
type RunResult struct {
	Checked    int
	Failed     int
	Violations map[string][]entities.Violation // check name -> violations
}

// Succeeded is true when every check ran and found nothing.
func (r *RunResult) Succeeded() bool {
	return r.Failed == 0
}

// RunCommand verifies every package listed in the settings file.
type RunCommand struct {
	check Check
}

// NewRunCommand creates a new RunCommand delegating each package to check.
func NewRunCommand(check Check) *RunCommand {
	return &RunCommand{check: check}
}

// Execute runs every configured check. A check that cannot be carried out
// counts as failed and doesn't stop the run unless fail_fast is set.
func (it *RunCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	runOpts RunOptions,
) (*RunResult, error) {
	if runOpts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	result := &RunResult{Violations: make(map[string][]entities.Violation)}

	for _, check := range settings.Checks {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}

		// Skip if CLI filter is set and doesn't match
		if runOpts.CheckName != "" && check.Name != runOpts.CheckName {
			continue
		}

		logger.Infof("[%s] Checking %s", check.Name, check.Nuspec)
		result.Checked++

		checkResult, err := it.check.Execute(ctx, CheckOptions{
			ProjectFileFullPath:        check.Project,
			NuspecFileFullPath:         check.Nuspec,
			PackagesConfigFullPath:     check.PackagesConfig,
			AllowMissingPackagesConfig: settings.Options.AllowMissingPackagesConfig,
		})
		if err != nil {
			logger.Errorf("[%s] Check failed: %v", check.Name, err)
			result.Failed++
		} else if !checkResult.Succeeded() {
			result.Violations[check.Name] = checkResult.Violations
			result.Failed++
		}

		if settings.Options.FailFast && result.Failed > 0 {
			logger.Warnf("[%s] Stopping at first failure (fail_fast)", check.Name)
			break
		}
	}

	if runOpts.CheckName != "" && result.Checked == 0 {
		return result, fmt.Errorf("no check named %q in config file", runOpts.CheckName)
	}

	logger.Infof(
		"Run complete: %d checks run, %d failed",
		result.Checked, result.Failed,
	)
	return result, nil
}
