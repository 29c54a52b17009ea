//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// StubWorkLocatorRepository implements repositories.WorkLocatorRepository
// with canned work.
type StubWorkLocatorRepository struct {
	Work entities.UpdateWork
	Err  error

	UserPatterns []string
	Roots        []string
	IgnoreGlobs  []string
}

var _ repositories.WorkLocatorRepository = (*StubWorkLocatorRepository)(nil)

func (s *StubWorkLocatorRepository) DetermineSkipPaths(userPatterns []string) entities.SkipPatterns {
	s.UserPatterns = userPatterns
	return entities.NewSkipPatterns(userPatterns)
}

func (s *StubWorkLocatorRepository) DetermineUpdateWork(
	rootDirectory string,
	_ entities.SkipPatterns,
	ignoreGlobs []string,
) (entities.UpdateWork, error) {
	s.Roots = append(s.Roots, rootDirectory)
	s.IgnoreGlobs = ignoreGlobs
	return s.Work, s.Err
}
