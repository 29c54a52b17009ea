//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// SpyProjectFileRepository implements repositories.ProjectFileRepository by
// recording Result on every tracker, or failing with Errs[path].
type SpyProjectFileRepository struct {
	Result entities.ValueUpdateResultType
	Errs   map[string]error
	Paths  []string
}

var _ repositories.ProjectFileRepository = (*SpyProjectFileRepository)(nil)

func (s *SpyProjectFileRepository) UpdateProjectFile(path string, groups []entities.UpdateGroupTracker) error {
	s.Paths = append(s.Paths, path)
	if err := s.Errs[path]; err != nil {
		return err
	}

	result := s.Result
	if result == "" {
		result = entities.ValueUpdateAlreadyCorrect
	}
	for _, group := range groups {
		for _, tracker := range group.Trackers {
			tracker.Record(result)
		}
	}
	return nil
}
