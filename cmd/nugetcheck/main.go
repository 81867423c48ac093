package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/nugetcheck/internal"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "nugetcheck",
		Short: "Verify nuspec files against project references",
		Long: `Checks that a nuspec file declares everything its project needs before packaging.

Compares three files of a .NET project:
  - the project file (.csproj) for framework references,
  - packages.config for resolved package versions,
  - the nuspec file for declared framework assemblies and dependencies.

Usage modes:
  nugetcheck check --project P --nuspec N --packages-config C   Check one package
  nugetcheck run                                                Batch mode using a config file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		ctrl.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

// newCommand builds the full command tree from the given controllers.
func newCommand(appContext *internal.AppInternal) *cobra.Command {
	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, appContext)
	return cobraRoot
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	appContext := injectAppContext()

	if err := newCommand(appContext).Execute(); err != nil {
		logger.Fatalf("Error executing 'nugetcheck': %s", err)
	}
}
