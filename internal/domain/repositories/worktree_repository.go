package repositories

// WorktreeRepository inspects the version control state around a directory.
type WorktreeRepository interface {
	// IsClean reports whether the work tree enclosing dir has no pending
	// changes. found is false when dir is not inside a repository.
	IsClean(dir string) (clean bool, found bool, err error)
}
