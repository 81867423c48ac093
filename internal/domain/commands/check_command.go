package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nugetcheck/internal/domain/entities"
	"github.com/rios0rios0/nugetcheck/internal/domain/repositories"
)

// ErrMissingPath is returned when one of the three required paths is not set.
var ErrMissingPath = errors.New("is not set")

// Check is the interface for the check command (single package).
type Check interface {
	Execute(ctx context.Context, opts CheckOptions) (*CheckResult, error)
}

// CheckOptions holds the files of one package to verify.
type CheckOptions struct {
	ProjectFileFullPath        string
	NuspecFileFullPath         string
	PackagesConfigFullPath     string
	AllowMissingPackagesConfig bool
}

// CheckResult is what a single check found.
type CheckResult struct {
	Violations []entities.Violation
	Warnings   []string
}

// Succeeded is true when no violation was found.
func (r *CheckResult) Succeeded() bool {
	return len(r.Violations) == 0
}

// CheckCommand loads the project, nuspec and packages.config files of a
// package and reports every inconsistency between them.
type CheckCommand struct {
	documents repositories.DocumentRepository
	verifier  *entities.Verifier
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	documents repositories.DocumentRepository,
	verifier *entities.Verifier,
) *CheckCommand {
	return &CheckCommand{
		documents: documents,
		verifier:  verifier,
	}
}

// Execute validates the options, loads the documents and verifies them.
// Violations are part of the result, not an error; an error means the check
// could not be carried out at all.
func (it *CheckCommand) Execute(ctx context.Context, opts CheckOptions) (result *CheckResult, err error) {
	if validateErr := validateCheckOptions(opts); validateErr != nil {
		return nil, validateErr
	}

	logger.Debugf(
		"checking nuspec `%s` and project file `%s`",
		opts.NuspecFileFullPath, opts.ProjectFileFullPath,
	)

	nuspec, err := it.documents.ReadManifest(ctx, opts.NuspecFileFullPath)
	if err != nil {
		return nil, err
	}
	project, err := it.documents.ReadProject(ctx, opts.ProjectFileFullPath)
	if err != nil {
		return nil, err
	}
	packages, err := it.documents.ReadPackagesConfig(
		ctx, opts.PackagesConfigFullPath, opts.AllowMissingPackagesConfig,
	)
	if err != nil {
		return nil, err
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			result = nil
			err = fmt.Errorf("failed to verify %q: %v", opts.NuspecFileFullPath, recovered)
		}
	}()

	result = &CheckResult{
		Warnings:   malformedReferenceWarnings(project),
		Violations: it.verifier.Verify(project, nuspec, packages),
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	for _, violation := range result.Violations {
		logger.Error(violation.Message)
	}

	logger.Infof(
		"done checking nuget package dependencies. Found %d violations.",
		len(result.Violations),
	)

	return result, nil
}

// validateCheckOptions reports the first required path that is missing.
func validateCheckOptions(opts CheckOptions) error {
	switch {
	case opts.ProjectFileFullPath == "":
		return fmt.Errorf("ProjectFileFullPath %w", ErrMissingPath)
	case opts.NuspecFileFullPath == "":
		return fmt.Errorf("NuspecFileFullPath %w", ErrMissingPath)
	case opts.PackagesConfigFullPath == "":
		return fmt.Errorf("PackagesConfigFullPath %w", ErrMissingPath)
	default:
		return nil
	}
}

func malformedReferenceWarnings(project *entities.ProjectDocument) []string {
	_, err := project.References()
	if err == nil {
		return nil
	}

	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []string{err.Error()}
	}

	warnings := make([]string, 0, len(joined.Unwrap()))
	for _, each := range joined.Unwrap() {
		warnings = append(warnings, each.Error())
	}
	return warnings
}
