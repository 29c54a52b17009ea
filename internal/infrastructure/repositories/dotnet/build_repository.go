package dotnet

import (
	"context"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// BuildRepository builds project files with "dotnet build".
type BuildRepository struct {
	log     logger.FieldLogger
	process repositories.ProcessRepository
}

// NewBuildRepository creates a project builder.
func NewBuildRepository(log logger.FieldLogger, process repositories.ProcessRepository) *BuildRepository {
	return &BuildRepository{log: log, process: process}
}

// BuildProject rebuilds projectFile without incremental state and classifies
// the outcome.
func (it *BuildRepository) BuildProject(ctx context.Context, projectFile string) entities.CompileResultType {
	output := it.process.Run(ctx, filepath.Dir(projectFile), dotnetExecutable,
		"build", projectFile, "--no-incremental")
	result := entities.ClassifyBuild(output, entities.DotnetBuildFailureMarker)

	if result == entities.CompileSuccess {
		it.log.Infof("[build] %q built successfully", projectFile)
	} else {
		it.log.Warnf("[build] %q: %s", projectFile, result)
	}
	return result
}
