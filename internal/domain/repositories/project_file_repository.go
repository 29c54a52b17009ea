package repositories

import "github.com/programmeral/codeupdater/internal/domain/entities"

// ProjectFileRepository applies tracked attribute values to one project file.
type ProjectFileRepository interface {
	// UpdateProjectFile mutates the trackers in groups and rewrites the file
	// when anything changed. On error the file is left untouched.
	UpdateProjectFile(path string, groups []entities.UpdateGroupTracker) error
}
