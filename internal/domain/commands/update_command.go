package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// Update is the interface for the update command (full run).
type Update interface {
	Execute(ctx context.Context, settings *entities.Settings) (*entities.RunResults, error)
}

// UpdateCommand orchestrates a full run:
// discover work -> preflight -> update projects and packages -> search -> build.
type UpdateCommand struct {
	log      logger.FieldLogger
	process  repositories.ProcessRepository
	locator  repositories.WorkLocatorRepository
	packages repositories.PackageManagerRepository
	search   repositories.SearchRepository
	checks   *PreflightValidator
	csharp   *CSharpUpdater
	verifier *BuildVerifier
}

// NewUpdateCommand creates a new UpdateCommand.
func NewUpdateCommand(
	log logger.FieldLogger,
	process repositories.ProcessRepository,
	locator repositories.WorkLocatorRepository,
	packages repositories.PackageManagerRepository,
	search repositories.SearchRepository,
	checks *PreflightValidator,
	csharp *CSharpUpdater,
	verifier *BuildVerifier,
) *UpdateCommand {
	return &UpdateCommand{
		log:      log,
		process:  process,
		locator:  locator,
		packages: packages,
		search:   search,
		checks:   checks,
		csharp:   csharp,
		verifier: verifier,
	}
}

// Execute runs every configured update. It fails only before mutation
// starts: on discovery errors or when preflight rejects the run.
func (it *UpdateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) (*entities.RunResults, error) {
	work, err := prepareRun(ctx, it.log, it.process, it.locator, it.checks, settings)
	if err != nil {
		return nil, err
	}

	results := &entities.RunResults{Work: work}
	if work.IsEmpty() {
		it.log.Warnf("No project files or package directories found under %q", work.RootDirectory)
		return results, nil
	}

	results.CSharpUpdates = it.csharp.UpdateAll(ctx, work, settings.CSharpOptions)

	if settings.NpmOptions != nil {
		results.PackageUpdate = it.packages.UpdatePackages(ctx, work.PackageDirectories)
	}

	if settings.RegexSearchOptions != nil {
		results.Searches = it.search.Search(work.ValidDirectories, settings.RegexSearchOptions.Searches)
	}

	// Builds run after every update so a project is judged on the final tree.
	results.Compile = it.verifier.VerifyAll(ctx, work, settings.NpmOptions)

	return results, nil
}

// prepareRun applies the process settings, discovers the work, and gates it
// behind preflight.
func prepareRun(
	ctx context.Context,
	log logger.FieldLogger,
	process repositories.ProcessRepository,
	locator repositories.WorkLocatorRepository,
	checks *PreflightValidator,
	settings *entities.Settings,
) (entities.UpdateWork, error) {
	process.Configure(settings.ProcessTimeout, settings.NpmOptions.ShellCommand())

	skipPatterns := locator.DetermineSkipPaths(settings.UpdatePathOptions.IgnorePatterns)
	log.Debugf("Skip patterns: %v", skipPatterns.Patterns())

	work, err := locator.DetermineUpdateWork(
		settings.UpdatePathOptions.RootDirectory,
		skipPatterns,
		settings.UpdatePathOptions.IgnoreGlobs,
	)
	if err != nil {
		return entities.UpdateWork{}, fmt.Errorf("failed to determine update work: %w", err)
	}

	if !checks.CanRun(ctx, settings, work) {
		return entities.UpdateWork{}, entities.ErrPreflightFailed
	}
	return work, nil
}
