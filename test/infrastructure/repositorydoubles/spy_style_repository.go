//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// StyleCall records one MaybeFormat invocation.
type StyleCall struct {
	ProjectFile string
	Enabled     bool
}

// SpyStyleRepository implements repositories.StyleRepository.
type SpyStyleRepository struct {
	Result entities.StyleResultType
	Calls  []StyleCall
}

var _ repositories.StyleRepository = (*SpyStyleRepository)(nil)

func (s *SpyStyleRepository) MaybeFormat(_ context.Context, projectFile string, enabled bool) entities.StyleResultType {
	s.Calls = append(s.Calls, StyleCall{ProjectFile: projectFile, Enabled: enabled})
	if !enabled {
		return entities.StyleDidNotRun
	}
	if s.Result == "" {
		return entities.StyleRanSuccessfully
	}
	return s.Result
}
