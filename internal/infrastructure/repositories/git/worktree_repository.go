package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"
)

// WorktreeRepository inspects the git work tree around a directory.
type WorktreeRepository struct {
	log logger.FieldLogger
}

// NewWorktreeRepository creates a work tree inspector.
func NewWorktreeRepository(log logger.FieldLogger) *WorktreeRepository {
	return &WorktreeRepository{log: log}
}

// IsClean opens the repository enclosing dir and reports whether its work
// tree has no pending changes.
func (it *WorktreeRepository) IsClean(dir string) (bool, bool, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("failed to open repository at %q: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return false, true, fmt.Errorf("failed to get worktree for %q: %w", dir, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, true, fmt.Errorf("failed to get status for %q: %w", dir, err)
	}

	if !status.IsClean() {
		it.log.Debugf("[git] Pending changes:\n%s", status.String())
	}
	return status.IsClean(), true, nil
}
