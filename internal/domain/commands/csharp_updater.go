package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// CSharpUpdater applies dependency, project file and style updates to one
// project file at a time.
type CSharpUpdater struct {
	log          logger.FieldLogger
	projectFiles repositories.ProjectFileRepository
	dependencies repositories.DependencyRepository
	style        repositories.StyleRepository
}

// NewCSharpUpdater creates an updater.
func NewCSharpUpdater(
	log logger.FieldLogger,
	projectFiles repositories.ProjectFileRepository,
	dependencies repositories.DependencyRepository,
	style repositories.StyleRepository,
) *CSharpUpdater {
	return &CSharpUpdater{
		log:          log,
		projectFiles: projectFiles,
		dependencies: dependencies,
		style:        style,
	}
}

// UpdateAll updates every project file of work. One file's failure never
// stops the others.
func (it *CSharpUpdater) UpdateAll(
	ctx context.Context,
	work entities.UpdateWork,
	options *entities.CSharpOptions,
) []entities.CSharpUpdateResult {
	if options == nil {
		return nil
	}

	results := make([]entities.CSharpUpdateResult, 0, len(work.ProjectFiles))
	for _, projectFile := range work.ProjectFiles {
		results = append(results, it.Update(ctx, projectFile, options))
	}
	return results
}

// Update runs the dependency updates first, then the project file edits,
// then the formatter.
func (it *CSharpUpdater) Update(
	ctx context.Context,
	projectFile string,
	options *entities.CSharpOptions,
) entities.CSharpUpdateResult {
	it.log.Infof("[csproj] Updating %q", projectFile)

	result := entities.CSharpUpdateResult{ProjectFile: projectFile}

	if options.NuGetUpdateOptions != nil {
		result.DependencyUpdates = it.dependencies.UpdateDependencies(
			ctx, projectFile, options.NuGetUpdateOptions.SelectionPolicy())
	} else {
		result.DependencyUpdates = entities.DependencyUpdateResults{RetrievedListSuccessfully: true}
	}

	groups := entities.BuildUpdateGroups(options)
	result.ProjectFileUpdate = entities.ProjectFileUpdateResult{ProjectFile: projectFile}
	if len(groups) > 0 {
		if err := it.projectFiles.UpdateProjectFile(projectFile, groups); err != nil {
			it.log.Errorf("[csproj] Could not update %q: %v", projectFile, err)
			result.ProjectFileUpdate.Attributes = entities.UnknownResults(groups)
		} else {
			result.ProjectFileUpdate.Attributes = entities.FinalResults(groups)
		}
	}

	runFormatter := options.CSharpStyleOptions != nil && options.CSharpStyleOptions.RunDotnetFormat
	result.StyleUpdate = it.style.MaybeFormat(ctx, projectFile, runFormatter)

	return result
}
