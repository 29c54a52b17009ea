package filesystem

import (
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

// SearchRepository scans the top-level files of each directory for regex matches.
type SearchRepository struct {
	log logger.FieldLogger
}

// NewSearchRepository creates a searcher.
func NewSearchRepository(log logger.FieldLogger) *SearchRepository {
	return &SearchRepository{log: log}
}

// Search runs every search over every regular file directly inside the
// directories. Unreadable files are logged and skipped.
func (it *SearchRepository) Search(
	directories []string,
	searches []entities.RegexSearch,
) []entities.RegexSearchResult {
	if len(searches) == 0 {
		return nil
	}

	compiled := make([]*regexp.Regexp, len(searches))
	for i, search := range searches {
		re, err := regexp.Compile(search.SearchRegex)
		if err != nil {
			it.log.Errorf("[search] Invalid pattern %q for %q: %v", search.SearchRegex, search.Description, err)
			continue
		}
		compiled[i] = re
	}

	var results []entities.RegexSearchResult
	for _, dir := range directories {
		entries, err := os.ReadDir(dir)
		if err != nil {
			it.log.Errorf("[search] Could not list %q, skipping: %v", dir, err)
			continue
		}

		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			filePath := filepath.Join(dir, entry.Name())

			content, readErr := os.ReadFile(filePath)
			if readErr != nil {
				it.log.Errorf("[search] Could not read %q, skipping: %v", filePath, readErr)
				continue
			}

			for i, re := range compiled {
				if re == nil {
					continue
				}
				matches := re.FindAllString(string(content), -1)
				if len(matches) == 0 {
					continue
				}
				results = append(results, entities.RegexSearchResult{
					Description:    searches[i].Description,
					FilePath:       filePath,
					MatchedStrings: matches,
				})
			}
		}
	}

	return results
}
