package repositories

import (
	"context"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

// ProjectBuildRepository builds one project file from scratch.
type ProjectBuildRepository interface {
	BuildProject(ctx context.Context, projectFile string) entities.CompileResultType
}
