package repositories

import (
	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	domainRepos "github.com/programmeral/codeupdater/internal/domain/repositories"
	"github.com/programmeral/codeupdater/internal/infrastructure/repositories/dotnet"
	"github.com/programmeral/codeupdater/internal/infrastructure/repositories/filesystem"
	"github.com/programmeral/codeupdater/internal/infrastructure/repositories/git"
	"github.com/programmeral/codeupdater/internal/infrastructure/repositories/npm"
	"github.com/programmeral/codeupdater/internal/infrastructure/repositories/process"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	constructors := []interface{}{
		func(log logger.FieldLogger) *process.ProcessRepository {
			return process.NewProcessRepository(log, entities.DefaultProcessTimeout, entities.DefaultShell())
		},
		filesystem.NewWorkLocatorRepository,
		filesystem.NewSearchRepository,
		dotnet.NewProjectFileRepository,
		dotnet.NewDependencyRepository,
		dotnet.NewStyleRepository,
		dotnet.NewBuildRepository,
		npm.NewPackageManagerRepository,
		git.NewWorktreeRepository,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []interface{}{
		func(impl *process.ProcessRepository) domainRepos.ProcessRepository { return impl },
		func(impl *filesystem.WorkLocatorRepository) domainRepos.WorkLocatorRepository { return impl },
		func(impl *filesystem.SearchRepository) domainRepos.SearchRepository { return impl },
		func(impl *dotnet.ProjectFileRepository) domainRepos.ProjectFileRepository { return impl },
		func(impl *dotnet.DependencyRepository) domainRepos.DependencyRepository { return impl },
		func(impl *dotnet.StyleRepository) domainRepos.StyleRepository { return impl },
		func(impl *dotnet.BuildRepository) domainRepos.ProjectBuildRepository { return impl },
		func(impl *npm.PackageManagerRepository) domainRepos.PackageManagerRepository { return impl },
		func(impl *git.WorktreeRepository) domainRepos.WorktreeRepository { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
