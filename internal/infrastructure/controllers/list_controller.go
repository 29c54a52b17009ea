package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/programmeral/codeupdater/internal/domain/commands"
	"github.com/programmeral/codeupdater/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	log     *logger.Logger
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(log *logger.Logger, command commands.List) *ListController {
	return &ListController{log: log, command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "Show what a run would update",
		Long: `Discover project files and package directories under the configured root
and run the preflight checks, without modifying anything.`,
	}
}

// Execute prints the discovered work.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) error {
	settings, closer, err := loadSettings(cmd, it.log)
	if err != nil {
		return err
	}
	defer closer.Close()

	work, err := it.command.Execute(cmd.Context(), settings)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), entities.BuildWorkSummary(work))
	return err
}

// AddFlags adds the list-specific flags to the given Cobra command.
func (it *ListController) AddFlags(cmd *cobra.Command) {
	addCommonFlags(cmd)
}
