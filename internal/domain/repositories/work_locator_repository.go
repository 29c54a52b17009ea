package repositories

import "github.com/programmeral/codeupdater/internal/domain/entities"

// WorkLocatorRepository discovers the project files and package directories
// under a root directory.
type WorkLocatorRepository interface {
	DetermineSkipPaths(userPatterns []string) entities.SkipPatterns
	DetermineUpdateWork(
		rootDirectory string,
		skipPatterns entities.SkipPatterns,
		ignoreGlobs []string,
	) (entities.UpdateWork, error)
}
