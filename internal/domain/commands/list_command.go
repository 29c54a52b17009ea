package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// List is the interface for the list command (discovery only).
type List interface {
	Execute(ctx context.Context, settings *entities.Settings) (entities.UpdateWork, error)
}

// ListCommand discovers the work a run would do and runs the preflight
// checks, without modifying anything.
type ListCommand struct {
	log     logger.FieldLogger
	process repositories.ProcessRepository
	locator repositories.WorkLocatorRepository
	checks  *PreflightValidator
}

// NewListCommand creates a new ListCommand.
func NewListCommand(
	log logger.FieldLogger,
	process repositories.ProcessRepository,
	locator repositories.WorkLocatorRepository,
	checks *PreflightValidator,
) *ListCommand {
	return &ListCommand{log: log, process: process, locator: locator, checks: checks}
}

// Execute returns the discovered work, or ErrPreflightFailed.
func (it *ListCommand) Execute(ctx context.Context, settings *entities.Settings) (entities.UpdateWork, error) {
	return prepareRun(ctx, it.log, it.process, it.locator, it.checks, settings)
}
