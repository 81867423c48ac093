package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/nugetcheck/internal/domain/commands"
	"github.com/rios0rios0/nugetcheck/internal/domain/entities"
)

// RunController handles the "run" subcommand (batch mode).
type RunController struct {
	command commands.Run
}

// NewRunController creates a new RunController.
func NewRunController(command commands.Run) *RunController {
	return &RunController{command: command}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run",
		Short: "Check every package listed in the config file",
		Long: `Check every package listed in the configuration file.

This is the command intended to be used in a build pipeline before packing.
It reads the configuration file and verifies the project, nuspec and
packages.config files of each configured check.`,
	}
}

// Execute runs the batch mode.
func (it *RunController) Execute(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	checkFilter, _ := cmd.Flags().GetString("check")

	// Load configuration
	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = entities.FindConfigFile()
		if err != nil {
			return fmt.Errorf(
				"no config file found: %w; specify one with --config or create nugetcheck.yaml",
				err,
			)
		}
	}

	logger.Infof("Using config file: %s", cfgPath)

	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	result, runErr := it.command.Execute(cmd.Context(), settings, commands.RunOptions{
		Verbose:   verbose,
		CheckName: checkFilter,
	})
	if runErr != nil {
		return runErr
	}

	if !result.Succeeded() {
		return fmt.Errorf("%w: %d of %d checks failed", ErrVerificationFailed, result.Failed, result.Checked)
	}
	return nil
}

// AddFlags adds the run-specific flags to the given Cobra command.
func (it *RunController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Path to config file (default: auto-detect)")
	cmd.Flags().String("check", "", "Only run the check with this name")
}
