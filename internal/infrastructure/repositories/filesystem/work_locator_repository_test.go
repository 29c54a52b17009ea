//go:build unit

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/programmeral/codeupdater/internal/infrastructure/repositories/filesystem"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWorkLocatorRepositoryDetermineUpdateWork(t *testing.T) {
	t.Parallel()

	t.Run("should classify project files and package directories", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "A", "app.csproj"), "<Project />")
		writeFile(t, filepath.Join(root, "B", "package.json"), "{}")
		writeFile(t, filepath.Join(root, "C", "Upper.CSPROJ"), "<Project />")
		writeFile(t, filepath.Join(root, "C", "readme.md"), "docs")
		log, _ := test.NewNullLogger()
		repo := filesystem.NewWorkLocatorRepository(log)

		// when
		work, err := repo.DetermineUpdateWork(root, repo.DetermineSkipPaths(nil), nil)

		// then
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(root, "A", "app.csproj"),
			filepath.Join(root, "C", "Upper.CSPROJ"),
		}, work.ProjectFiles)
		assert.Equal(t, []string{filepath.Join(root, "B")}, work.PackageDirectories)
		assert.Contains(t, work.ValidDirectories, root)
		assert.Len(t, work.ValidDirectories, 4)
	})

	t.Run("should never include files under a default skip path", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "web", "node_modules", "dep", "package.json"), "{}")
		writeFile(t, filepath.Join(root, "lib", "bin", "Debug", "copy.csproj"), "<Project />")
		writeFile(t, filepath.Join(root, ".git", "hooks", "package.json"), "{}")
		writeFile(t, filepath.Join(root, "tools", "codeupdater", "package.json"), "{}")
		writeFile(t, filepath.Join(root, "lib", "lib.csproj"), "<Project />")
		log, hook := test.NewNullLogger()
		repo := filesystem.NewWorkLocatorRepository(log)

		// when
		work, err := repo.DetermineUpdateWork(root, repo.DetermineSkipPaths(nil), nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "lib", "lib.csproj")}, work.ProjectFiles)
		assert.Empty(t, work.PackageDirectories)
		assert.NotEmpty(t, hook.AllEntries())
	})

	t.Run("should honour user patterns in either slash style", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "legacy", "old", "old.csproj"), "<Project />")
		writeFile(t, filepath.Join(root, "Vendor", "v.csproj"), "<Project />")
		writeFile(t, filepath.Join(root, "src", "new.csproj"), "<Project />")
		log, _ := test.NewNullLogger()
		repo := filesystem.NewWorkLocatorRepository(log)
		skip := repo.DetermineSkipPaths([]string{`\legacy\`, "/vendor/"})

		// when
		work, err := repo.DetermineUpdateWork(root, skip, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "src", "new.csproj")}, work.ProjectFiles)
	})

	t.Run("should skip directories matching an ignore glob", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "samples", "demo", "demo.csproj"), "<Project />")
		writeFile(t, filepath.Join(root, "src", "tests", "fixtures", "f.csproj"), "<Project />")
		writeFile(t, filepath.Join(root, "src", "app", "app.csproj"), "<Project />")
		log, _ := test.NewNullLogger()
		repo := filesystem.NewWorkLocatorRepository(log)

		// when
		work, err := repo.DetermineUpdateWork(root, repo.DetermineSkipPaths(nil),
			[]string{"samples", "**/fixtures"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "src", "app", "app.csproj")}, work.ProjectFiles)
	})

	t.Run("should fail when the root directory does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		log, _ := test.NewNullLogger()
		repo := filesystem.NewWorkLocatorRepository(log)

		// when
		_, err := repo.DetermineUpdateWork(filepath.Join(t.TempDir(), "missing"), repo.DetermineSkipPaths(nil), nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot access root directory")
	})

	t.Run("should fail when the root is a file", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		file := filepath.Join(root, "file.txt")
		writeFile(t, file, "x")
		log, _ := test.NewNullLogger()
		repo := filesystem.NewWorkLocatorRepository(log)

		// when
		_, err := repo.DetermineUpdateWork(file, repo.DetermineSkipPaths(nil), nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a directory")
	})
}
