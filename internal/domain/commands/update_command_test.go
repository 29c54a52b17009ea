//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/programmeral/codeupdater/internal/domain/commands"
	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/test/domain/entitybuilders"
	doubles "github.com/programmeral/codeupdater/test/infrastructure/repositorydoubles"
)

type updateFixture struct {
	process      *doubles.SpyProcessRepository
	locator      *doubles.StubWorkLocatorRepository
	packages     *doubles.SpyPackageManagerRepository
	search       *doubles.StubSearchRepository
	projectFiles *doubles.SpyProjectFileRepository
	builds       *doubles.StubProjectBuildRepository
}

func newUpdateFixture(work entities.UpdateWork) *updateFixture {
	return &updateFixture{
		process:      doubles.NewSpyProcessRepository(),
		locator:      &doubles.StubWorkLocatorRepository{Work: work},
		packages:     &doubles.SpyPackageManagerRepository{},
		search:       &doubles.StubSearchRepository{},
		projectFiles: &doubles.SpyProjectFileRepository{Result: entities.ValueUpdateUpdated},
		builds:       &doubles.StubProjectBuildRepository{},
	}
}

func (f *updateFixture) command() *commands.UpdateCommand {
	log, _ := test.NewNullLogger()
	checks := commands.NewPreflightValidator(log, f.packages, &doubles.StubWorktreeRepository{})
	csharp := commands.NewCSharpUpdater(log, f.projectFiles, &doubles.StubDependencyRepository{}, &doubles.SpyStyleRepository{})
	verifier := commands.NewBuildVerifier(log, f.builds, f.packages)
	return commands.NewUpdateCommand(log, f.process, f.locator, f.packages, f.search, checks, csharp, verifier)
}

func TestUpdateCommandExecute(t *testing.T) {
	t.Parallel()

	work := entities.NewUpdateWork("/src",
		[]string{"/src", "/src/A", "/src/B"},
		[]string{"/src/A/app.csproj"},
		[]string{"/src/B"},
	)

	t.Run("should update, search and then build everything", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newUpdateFixture(work)
		fixture.builds.Results = map[string]entities.CompileResultType{"/src/A/app.csproj": entities.CompileBuildErrors}
		fixture.search.Results = []entities.RegexSearchResult{{Description: "todo", FilePath: "/src/A/x.cs"}}
		settings := entitybuilders.NewSettingsBuilder().
			WithIgnorePatterns("/legacy/").
			WithIgnoreGlobs("samples/**").
			WithDefaultCSharp().
			WithNpm("build").
			WithSearch("TODO", "todo").
			WithProcessTimeout(time.Minute).
			BuildSettings()

		// when
		results, err := fixture.command().Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, time.Minute, fixture.process.ConfiguredTimeout)
		assert.Equal(t, entities.DefaultShell(), fixture.process.ConfiguredShell)
		assert.Equal(t, []string{"/legacy/"}, fixture.locator.UserPatterns)
		assert.Equal(t, []string{"samples/**"}, fixture.locator.IgnoreGlobs)
		require.Len(t, results.CSharpUpdates, 1)
		assert.Equal(t, entities.ValueUpdateUpdated, results.CSharpUpdates[0].ProjectFileUpdate.Result(entities.LangVersion))
		assert.Equal(t, []string{"/src/B"}, results.PackageUpdate.Directories)
		assert.Equal(t, work.ValidDirectories, fixture.search.Directories)
		assert.Len(t, results.Searches, 1)
		assert.Equal(t, entities.CompileBuildErrors, results.Compile.Projects[0].Result)
		assert.Equal(t, entities.CompileSuccess, results.Compile.PackageDirectories[0].Result)
		assert.Equal(t, "build", fixture.packages.BuildCalls[0].BuildCommand)
	})

	t.Run("should not touch anything when preflight fails", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newUpdateFixture(work)
		fixture.packages.ShellErr = errors.New("unexpected echo output")
		settings := entitybuilders.NewSettingsBuilder().WithDefaultCSharp().WithNpm("build").BuildSettings()

		// when
		results, err := fixture.command().Execute(context.Background(), settings)

		// then
		require.ErrorIs(t, err, entities.ErrPreflightFailed)
		assert.Nil(t, results)
		assert.Empty(t, fixture.projectFiles.Paths)
		assert.Empty(t, fixture.packages.Updated)
		assert.Empty(t, fixture.builds.Built)
	})

	t.Run("should fail when discovery fails", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newUpdateFixture(work)
		fixture.locator.Err = errors.New("cannot access root directory")
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		_, err := fixture.command().Execute(context.Background(), settings)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to determine update work")
	})

	t.Run("should return an empty result when nothing was found", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newUpdateFixture(entities.NewUpdateWork("/src", []string{"/src"}, nil, nil))
		settings := entitybuilders.NewSettingsBuilder().WithDefaultCSharp().BuildSettings()

		// when
		results, err := fixture.command().Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Empty(t, results.CSharpUpdates)
		assert.Empty(t, results.Compile.Projects)
		assert.Empty(t, fixture.builds.Built)
	})

	t.Run("should skip package updates when npm handling is disabled", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newUpdateFixture(work)
		settings := entitybuilders.NewSettingsBuilder().WithDefaultCSharp().BuildSettings()

		// when
		results, err := fixture.command().Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Empty(t, fixture.packages.Updated)
		assert.Empty(t, results.Compile.PackageDirectories)
		assert.Nil(t, fixture.search.Directories)
	})
}
