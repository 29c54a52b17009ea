//go:build unit

package filesystem_test

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/infrastructure/repositories/filesystem"
)

func TestSearchRepositorySearch(t *testing.T) {
	t.Parallel()

	t.Run("should report every match in top level files only", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.cs"), "// TODO: one\nvar x = 1; // TODO: two")
		writeFile(t, filepath.Join(root, "b.cs"), "clean")
		writeFile(t, filepath.Join(root, "nested", "c.cs"), "// TODO: nested")
		log, _ := test.NewNullLogger()
		repo := filesystem.NewSearchRepository(log)
		searches := []entities.RegexSearch{{SearchRegex: `TODO: \w+`, Description: "todo markers"}}

		// when
		results := repo.Search([]string{root}, searches)

		// then
		require.Len(t, results, 1)
		assert.Equal(t, "todo markers", results[0].Description)
		assert.Equal(t, filepath.Join(root, "a.cs"), results[0].FilePath)
		assert.Equal(t, []string{"TODO: one", "TODO: two"}, results[0].MatchedStrings)
	})

	t.Run("should return nothing when no searches are configured", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.cs"), "anything")
		log, _ := test.NewNullLogger()
		repo := filesystem.NewSearchRepository(log)

		// when
		results := repo.Search([]string{root}, nil)

		// then
		assert.Empty(t, results)
	})

	t.Run("should log and continue past an unreadable directory", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.cs"), "needle")
		log, hook := test.NewNullLogger()
		repo := filesystem.NewSearchRepository(log)
		searches := []entities.RegexSearch{{SearchRegex: "needle", Description: "needles"}}

		// when
		results := repo.Search([]string{filepath.Join(root, "missing"), root}, searches)

		// then
		require.Len(t, results, 1)
		assert.Contains(t, hook.LastEntry().Message, "Could not list")
	})
}
