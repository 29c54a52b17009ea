//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// StubSearchRepository implements repositories.SearchRepository.
type StubSearchRepository struct {
	Results     []entities.RegexSearchResult
	Directories []string
	Searches    []entities.RegexSearch
}

var _ repositories.SearchRepository = (*StubSearchRepository)(nil)

func (s *StubSearchRepository) Search(
	directories []string,
	searches []entities.RegexSearch,
) []entities.RegexSearchResult {
	s.Directories = directories
	s.Searches = searches
	return s.Results
}
