package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// checkUpdatesPackage is the global npm package the update sequence relies on.
const checkUpdatesPackage = "npm-check-updates"

// PreflightValidator checks that every external tool a run needs is usable
// before anything is modified.
type PreflightValidator struct {
	log      logger.FieldLogger
	packages repositories.PackageManagerRepository
	worktree repositories.WorktreeRepository
}

// NewPreflightValidator creates a validator.
func NewPreflightValidator(
	log logger.FieldLogger,
	packages repositories.PackageManagerRepository,
	worktree repositories.WorktreeRepository,
) *PreflightValidator {
	return &PreflightValidator{log: log, packages: packages, worktree: worktree}
}

// CanRun reports whether the run may proceed. The first failing check
// short-circuits with a logged reason.
func (it *PreflightValidator) CanRun(
	ctx context.Context,
	settings *entities.Settings,
	work entities.UpdateWork,
) bool {
	if settings.PreflightOptions != nil && settings.PreflightOptions.RequireCleanWorktree {
		if !it.worktreeIsClean(work.RootDirectory) {
			return false
		}
	}

	if len(work.PackageDirectories) == 0 || settings.NpmOptions == nil {
		return true
	}

	if err := it.packages.VerifyShell(ctx); err != nil {
		it.log.Errorf("[preflight] Shell %v cannot be used for package manager commands: %v",
			settings.NpmOptions.ShellCommand(), err)
		return false
	}

	if err := it.packages.VerifyGlobalPackage(ctx, checkUpdatesPackage, settings.NpmOptions.MinCheckUpdatesVersion); err != nil {
		it.log.Errorf("[preflight] %v", err)
		return false
	}

	it.log.Info("[preflight] Package manager tooling is available")
	return true
}

func (it *PreflightValidator) worktreeIsClean(root string) bool {
	clean, found, err := it.worktree.IsClean(root)
	switch {
	case err != nil:
		it.log.Errorf("[preflight] Could not inspect the work tree of %q: %v", root, err)
		return false
	case !found:
		it.log.Warnf("[preflight] %q is not inside a git work tree, skipping the clean tree check", root)
		return true
	case !clean:
		it.log.Errorf("[preflight] %q has uncommitted changes, commit or stash them before updating", root)
		return false
	default:
		return true
	}
}
