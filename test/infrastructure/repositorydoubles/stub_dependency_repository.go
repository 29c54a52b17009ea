//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// DependencyCall records one UpdateDependencies invocation.
type DependencyCall struct {
	ProjectFile string
	Policy      entities.DependencySelectionPolicy
}

// StubDependencyRepository implements repositories.DependencyRepository with
// per-file canned results.
type StubDependencyRepository struct {
	Results map[string]entities.DependencyUpdateResults
	Calls   []DependencyCall
}

var _ repositories.DependencyRepository = (*StubDependencyRepository)(nil)

func (s *StubDependencyRepository) UpdateDependencies(
	_ context.Context,
	projectFile string,
	policy entities.DependencySelectionPolicy,
) entities.DependencyUpdateResults {
	s.Calls = append(s.Calls, DependencyCall{ProjectFile: projectFile, Policy: policy})
	if result, ok := s.Results[projectFile]; ok {
		return result
	}
	return entities.DependencyUpdateResults{RetrievedListSuccessfully: true}
}
