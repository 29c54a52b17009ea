package repositories

import (
	"context"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

// DependencyRepository bumps the direct dependencies of one project file.
type DependencyRepository interface {
	UpdateDependencies(
		ctx context.Context,
		projectFile string,
		policy entities.DependencySelectionPolicy,
	) entities.DependencyUpdateResults
}
