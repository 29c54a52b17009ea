package main

import (
	"github.com/spf13/cobra"

	"github.com/programmeral/codeupdater/internal"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "codeupdater",
		Short: "Bulk updater for .NET project files and npm package directories",
		Long: `Discovers project files and package directories under a root directory,
applies the configured updates to them, rebuilds everything and prints a summary.

Usage modes:
  codeupdater run   Update everything under the configured root
  codeupdater list  Show what a run would update, without modifying anything`,
		SilenceUsage: true,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
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

func main() {
	appContext, log := injectAppContext()

	cobraRoot := buildRootCommand()
	cobraRoot.SilenceErrors = true
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		log.Fatalf("Error executing 'codeupdater': %s", err)
	}
}
