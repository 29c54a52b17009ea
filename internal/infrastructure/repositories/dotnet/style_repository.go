package dotnet

import (
	"context"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// StyleRepository runs "dotnet format" over project files.
type StyleRepository struct {
	log     logger.FieldLogger
	process repositories.ProcessRepository
}

// NewStyleRepository creates a formatter runner.
func NewStyleRepository(log logger.FieldLogger, process repositories.ProcessRepository) *StyleRepository {
	return &StyleRepository{log: log, process: process}
}

// MaybeFormat formats projectFile when enabled.
func (it *StyleRepository) MaybeFormat(
	ctx context.Context,
	projectFile string,
	enabled bool,
) entities.StyleResultType {
	if !enabled {
		return entities.StyleDidNotRun
	}

	output := it.process.Run(ctx, filepath.Dir(projectFile), dotnetExecutable,
		"format", projectFile, "--no-restore", "--verbosity", "diagnostic")
	if !output.Succeeded() {
		it.log.Errorf("[format] Formatter failed for %q (started=%t, in time=%t, exit=%d): %s",
			projectFile, output.Started, output.CompletedWithinTimeout, output.ExitCode, output.ErrorOutput)
		return entities.StyleErrored
	}

	it.log.Infof("[format] Formatted %q", projectFile)
	return entities.StyleRanSuccessfully
}
