//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

func TestBuildReport(t *testing.T) {
	t.Parallel()

	t.Run("should summarize every section of a run", func(t *testing.T) {
		t.Parallel()

		// given
		results := entities.RunResults{
			Work: entities.NewUpdateWork("/src", []string{"/src"}, []string{"/src/a.csproj"}, []string{"/src/web"}),
			CSharpUpdates: []entities.CSharpUpdateResult{{
				ProjectFile: "/src/a.csproj",
				DependencyUpdates: entities.DependencyUpdateResults{
					RetrievedListSuccessfully: true,
					Updates: []entities.DependencyUpdateResult{
						{ProjectFile: "/src/a.csproj", ID: "Serilog", Succeeded: true},
						{ProjectFile: "/src/a.csproj", ID: "Polly", Succeeded: false},
					},
				},
				ProjectFileUpdate: entities.ProjectFileUpdateResult{
					ProjectFile: "/src/a.csproj",
					Attributes: []entities.AttributeResult{
						{Name: entities.LangVersion, Value: "latest", Result: entities.ValueUpdateInserted},
						{Name: entities.NuGetAudit, Value: "true", Result: entities.ValueUpdateAlreadyCorrect},
						{Name: entities.NuGetAuditMode, Value: "all", Result: entities.ValueUpdateUnknown},
					},
				},
				StyleUpdate: entities.StyleErrored,
			}},
			PackageUpdate: entities.PackageManagerUpdates{Directories: []string{"/src/web"}},
			Compile: entities.CompileResults{
				Projects:           []entities.CompileResult{{Path: "/src/a.csproj", Result: entities.CompileBuildErrors}},
				PackageDirectories: []entities.CompileResult{{Path: "/src/web", Result: entities.CompileSuccess}},
			},
			Searches: []entities.RegexSearchResult{{
				Description: "todo", FilePath: "/src/a.cs", MatchedStrings: []string{"TODO"},
			}},
		}

		// when
		report := entities.BuildReport(results)

		// then
		assert.Equal(t, `Code Updater summary for /src
Discovered 1 project files and 1 package directories

Dependency updates: 1 succeeded, 1 failed
Failed dependency updates: 1
  - Polly (/src/a.csproj)

Project file attributes changed: 1
  - /src/a.csproj: inserted LangVersion = latest
Project file attributes with unknown result: 1
  - /src/a.csproj: NuGetAuditMode
Formatter errors: 1
  - /src/a.csproj

Package directories updated: 1

Project build failures: 1 of 1
  - /src/a.csproj (BuildErrors)

Package directory build failures: 0 of 1

Search matches: 1
  - todo: /src/a.cs (TODO)
`, report)
	})

	t.Run("should list projects whose dependencies could not be listed", func(t *testing.T) {
		t.Parallel()

		// given
		results := entities.RunResults{
			Work: entities.NewUpdateWork("/src", nil, []string{"/src/a.csproj"}, nil),
			CSharpUpdates: []entities.CSharpUpdateResult{{
				ProjectFile:       "/src/a.csproj",
				DependencyUpdates: entities.DependencyUpdateResults{},
			}},
		}

		// when
		report := entities.BuildReport(results)

		// then
		assert.Contains(t, report, "Could not list dependencies: 1\n  - /src/a.csproj\n")
		assert.NotContains(t, report, "Search matches")
	})
}

func TestBuildWorkSummary(t *testing.T) {
	t.Parallel()

	t.Run("should list discovered files", func(t *testing.T) {
		t.Parallel()

		// given
		work := entities.NewUpdateWork("/src", []string{"/src", "/src/web"}, []string{"/src/a.csproj"},
			[]string{"/src/web"})

		// when
		summary := entities.BuildWorkSummary(work)

		// then
		assert.Equal(t, "Root: /src\nDirectories scanned: 2\nProject files: 1\n  - /src/a.csproj\n"+
			"Package directories: 1\n  - /src/web\n", summary)
	})
}
