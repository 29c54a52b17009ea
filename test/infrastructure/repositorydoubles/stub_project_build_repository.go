//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// StubProjectBuildRepository implements repositories.ProjectBuildRepository.
// Files missing from Results build successfully.
type StubProjectBuildRepository struct {
	Results map[string]entities.CompileResultType
	Built   []string
}

var _ repositories.ProjectBuildRepository = (*StubProjectBuildRepository)(nil)

func (s *StubProjectBuildRepository) BuildProject(_ context.Context, projectFile string) entities.CompileResultType {
	s.Built = append(s.Built, projectFile)
	if result, ok := s.Results[projectFile]; ok {
		return result
	}
	return entities.CompileSuccess
}
