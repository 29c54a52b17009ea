package repositories

import "github.com/programmeral/codeupdater/internal/domain/entities"

// SearchRepository runs free-text searches over the files of directories.
type SearchRepository interface {
	Search(directories []string, searches []entities.RegexSearch) []entities.RegexSearchResult
}
