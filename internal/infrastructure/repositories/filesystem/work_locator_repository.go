package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	logger "github.com/sirupsen/logrus"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

const (
	projectFileExtension = ".csproj"
	packageManifestName  = "package.json"
)

// WorkLocatorRepository walks the file system to find update work.
type WorkLocatorRepository struct {
	log logger.FieldLogger
}

// NewWorkLocatorRepository creates a locator.
func NewWorkLocatorRepository(log logger.FieldLogger) *WorkLocatorRepository {
	return &WorkLocatorRepository{log: log}
}

// DetermineSkipPaths merges the default skip paths with the user patterns.
func (it *WorkLocatorRepository) DetermineSkipPaths(userPatterns []string) entities.SkipPatterns {
	return entities.NewSkipPatterns(userPatterns)
}

// DetermineUpdateWork walks rootDirectory. A directory whose path (with a
// trailing separator) contains a skip pattern, or whose root-relative path
// matches an ignore glob, is skipped together with its whole subtree.
func (it *WorkLocatorRepository) DetermineUpdateWork(
	rootDirectory string,
	skipPatterns entities.SkipPatterns,
	ignoreGlobs []string,
) (entities.UpdateWork, error) {
	root, err := filepath.Abs(rootDirectory)
	if err != nil {
		return entities.UpdateWork{}, fmt.Errorf("invalid root directory %q: %w", rootDirectory, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return entities.UpdateWork{}, fmt.Errorf("cannot access root directory %q: %w", root, err)
	}
	if !info.IsDir() {
		return entities.UpdateWork{}, fmt.Errorf("root directory %q is not a directory", root)
	}

	var directories, projectFiles, packageDirectories []string

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			it.log.Warnf("[locator] Cannot read %q, skipping: %v", path, walkErr)
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			if reason, skip := it.shouldSkip(root, path, skipPatterns, ignoreGlobs); skip {
				it.log.Infof("[locator] Skipping %q because its path should be ignored by rule: %s", path, reason)
				return fs.SkipDir
			}
			directories = append(directories, path)
			return nil
		}

		name := entry.Name()
		switch {
		case strings.EqualFold(filepath.Ext(name), projectFileExtension):
			projectFiles = append(projectFiles, path)
		case name == packageManifestName:
			packageDirectories = append(packageDirectories, filepath.Dir(path))
		}
		return nil
	})
	if walkErr != nil {
		return entities.UpdateWork{}, fmt.Errorf("failed to walk %q: %w", root, walkErr)
	}

	it.log.Infof("[locator] Found %d directories, %d project files, %d package directories",
		len(directories), len(projectFiles), len(packageDirectories))

	return entities.NewUpdateWork(root, directories, projectFiles, packageDirectories), nil
}

func (it *WorkLocatorRepository) shouldSkip(
	root, dir string,
	skipPatterns entities.SkipPatterns,
	ignoreGlobs []string,
) (string, bool) {
	if pattern, ok := skipPatterns.Match(dir + string(filepath.Separator)); ok {
		return pattern, true
	}

	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return "", false
	}
	rel = filepath.ToSlash(rel)

	for _, glob := range ignoreGlobs {
		if ok, matchErr := doublestar.Match(glob, rel); matchErr == nil && ok {
			return glob, true
		}
	}
	return "", false
}
