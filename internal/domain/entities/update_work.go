package entities

import (
	"errors"
	"strings"
)

// ErrPreflightFailed is returned when the external tools needed by a run are
// not usable. Nothing has been modified when it is returned.
var ErrPreflightFailed = errors.New("preflight validation failed")

// defaultSkipPaths are excluded from discovery on every run: build output,
// the tool's own checkout, dependency caches and VCS metadata.
var defaultSkipPaths = []string{ //nolint:gochecknoglobals // fixed default list
	"/obj/Debug/",
	"/obj/Release/",
	"/bin/Debug/",
	"/bin/Release/",
	"/CodeUpdater/",
	"/node_modules/",
	"/.git/",
}

// SkipPatterns is the ordered set of substrings that exclude a directory
// subtree from discovery. Every pattern is present in both slash styles.
type SkipPatterns struct {
	patterns []string
}

// NewSkipPatterns builds the pattern set from the defaults plus the user
// supplied patterns. Each pattern is added in its "/" and "\" form.
func NewSkipPatterns(userPatterns []string) SkipPatterns {
	seen := make(map[string]bool)
	patterns := make([]string, 0, (len(defaultSkipPaths)+len(userPatterns))*2) //nolint:mnd // both slash styles

	add := func(pattern string) {
		if pattern == "" || seen[pattern] {
			return
		}
		seen[pattern] = true
		patterns = append(patterns, pattern)
	}

	all := append(append([]string{}, defaultSkipPaths...), userPatterns...)
	for _, pattern := range all {
		add(strings.ReplaceAll(pattern, "\\", "/"))
	}
	for _, pattern := range all {
		add(strings.ReplaceAll(pattern, "/", "\\"))
	}

	return SkipPatterns{patterns: patterns}
}

// Patterns returns a copy of the patterns in match order.
func (s SkipPatterns) Patterns() []string {
	return append([]string{}, s.patterns...)
}

// Match returns the first pattern contained in path (case-insensitive).
func (s SkipPatterns) Match(path string) (string, bool) {
	lowered := strings.ToLower(path)
	for _, pattern := range s.patterns {
		if strings.Contains(lowered, strings.ToLower(pattern)) {
			return pattern, true
		}
	}
	return "", false
}

// UpdateWork is everything discovered under the root for one run.
// It is built once and only read afterwards.
type UpdateWork struct {
	RootDirectory      string
	ValidDirectories   []string
	ProjectFiles       []string
	PackageDirectories []string
}

// NewUpdateWork copies the given slices so later mutation of the inputs
// cannot leak into the work set.
func NewUpdateWork(root string, directories, projectFiles, packageDirectories []string) UpdateWork {
	return UpdateWork{
		RootDirectory:      root,
		ValidDirectories:   append([]string{}, directories...),
		ProjectFiles:       append([]string{}, projectFiles...),
		PackageDirectories: append([]string{}, packageDirectories...),
	}
}

// IsEmpty reports whether discovery found nothing to update.
func (w UpdateWork) IsEmpty() bool {
	return len(w.ProjectFiles) == 0 && len(w.PackageDirectories) == 0
}
