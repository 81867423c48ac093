package controllers

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/nugetcheck/internal/domain/commands"
	"github.com/rios0rios0/nugetcheck/internal/domain/entities"
)

// ErrVerificationFailed is returned when the checked files are inconsistent.
var ErrVerificationFailed = errors.New("nuget dependency verification failed")

// CheckController handles the "check" subcommand (single package).
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check",
		Short: "Check the nuspec file of a single project",
		Long: `Compare a project file, its nuspec file and its packages.config.

Every framework reference of the project must be listed as a frameworkAssembly,
every package of packages.config must be a dependency of the nuspec file, and
its resolved version must lie inside the declared [from,to) range.`,
	}
}

// Execute runs the check and fails when any violation was found.
func (it *CheckController) Execute(cmd *cobra.Command, _ []string) error {
	project, _ := cmd.Flags().GetString("project")
	nuspec, _ := cmd.Flags().GetString("nuspec")
	packagesConfig, _ := cmd.Flags().GetString("packages-config")
	allowMissing, _ := cmd.Flags().GetBool("allow-missing-packages-config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	result, err := it.command.Execute(cmd.Context(), commands.CheckOptions{
		ProjectFileFullPath:        project,
		NuspecFileFullPath:         nuspec,
		PackagesConfigFullPath:     packagesConfig,
		AllowMissingPackagesConfig: allowMissing,
	})
	if err != nil {
		return err
	}

	if !result.Succeeded() {
		return fmt.Errorf("%w: %d violations", ErrVerificationFailed, len(result.Violations))
	}
	return nil
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("project", "p", "", "Path to the project file (.csproj)")
	cmd.Flags().StringP("nuspec", "n", "", "Path to the nuspec file")
	cmd.Flags().String("packages-config", "", "Path to packages.config")
	cmd.Flags().Bool("allow-missing-packages-config", false,
		"Treat a missing packages.config as a project without packages")
}
