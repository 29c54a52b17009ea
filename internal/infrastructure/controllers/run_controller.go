package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/programmeral/codeupdater/internal/domain/commands"
	"github.com/programmeral/codeupdater/internal/domain/entities"
)

// RunController handles the "run" subcommand.
type RunController struct {
	log     *logger.Logger
	command commands.Update
}

// NewRunController creates a new RunController.
func NewRunController(log *logger.Logger, command commands.Update) *RunController {
	return &RunController{log: log, command: command}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run",
		Short: "Update every project under the root directory",
		Long: `Discover project files and package directories under the configured root,
apply the configured updates, rebuild everything and print a summary.

Project files are rewritten in place. Commit your work before running.
Nothing is modified when the preflight checks fail.`,
	}
}

// Execute runs the update and prints the report.
func (it *RunController) Execute(cmd *cobra.Command, _ []string) error {
	settings, closer, err := loadSettings(cmd, it.log)
	if err != nil {
		return err
	}
	defer closer.Close()

	it.log.Info("Starting code update run...")

	results, err := it.command.Execute(cmd.Context(), settings)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), entities.BuildReport(*results))
	return err
}

// AddFlags adds the run-specific flags to the given Cobra command.
func (it *RunController) AddFlags(cmd *cobra.Command) {
	addCommonFlags(cmd)
}
