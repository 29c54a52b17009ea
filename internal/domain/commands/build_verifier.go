package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// BuildVerifier rebuilds everything once all updates are applied.
type BuildVerifier struct {
	log      logger.FieldLogger
	builds   repositories.ProjectBuildRepository
	packages repositories.PackageManagerRepository
}

// NewBuildVerifier creates a verifier.
func NewBuildVerifier(
	log logger.FieldLogger,
	builds repositories.ProjectBuildRepository,
	packages repositories.PackageManagerRepository,
) *BuildVerifier {
	return &BuildVerifier{log: log, builds: builds, packages: packages}
}

// VerifyAll builds every project file and, when npm options are set, every
// package directory. Every entry is attempted regardless of earlier failures.
func (it *BuildVerifier) VerifyAll(
	ctx context.Context,
	work entities.UpdateWork,
	npmOptions *entities.NpmOptions,
) entities.CompileResults {
	results := entities.CompileResults{
		Projects: make([]entities.CompileResult, 0, len(work.ProjectFiles)),
	}

	for _, projectFile := range work.ProjectFiles {
		results.Projects = append(results.Projects, entities.CompileResult{
			Path:   projectFile,
			Result: it.builds.BuildProject(ctx, projectFile),
		})
	}

	if npmOptions == nil {
		return results
	}

	results.PackageDirectories = make([]entities.CompileResult, 0, len(work.PackageDirectories))
	for _, dir := range work.PackageDirectories {
		results.PackageDirectories = append(results.PackageDirectories, entities.CompileResult{
			Path:   dir,
			Result: it.packages.BuildPackageDirectory(ctx, dir, npmOptions.NpmBuildCommand),
		})
	}

	it.log.Infof("[build] Built %d project files and %d package directories",
		len(results.Projects), len(results.PackageDirectories))
	return results
}
