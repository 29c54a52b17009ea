//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import "github.com/programmeral/codeupdater/internal/domain/repositories"

// StubWorktreeRepository implements repositories.WorktreeRepository.
type StubWorktreeRepository struct {
	Clean bool
	Found bool
	Err   error
	Dirs  []string
}

var _ repositories.WorktreeRepository = (*StubWorktreeRepository)(nil)

func (s *StubWorktreeRepository) IsClean(dir string) (bool, bool, error) {
	s.Dirs = append(s.Dirs, dir)
	return s.Clean, s.Found, s.Err
}
