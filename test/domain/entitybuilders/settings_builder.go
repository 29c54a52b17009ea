//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

// SettingsBuilder helps create run settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	rootDirectory  string
	ignorePatterns []string
	ignoreGlobs    []string
	csharp         *entities.CSharpOptions
	npm            *entities.NpmOptions
	searches       []entities.RegexSearch
	preflight      *entities.PreflightOptions
	processTimeout time.Duration
}

// NewSettingsBuilder creates a builder whose settings only name a root.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder:    testkit.NewBaseBuilder(),
		rootDirectory:  "/src",
		processTimeout: entities.DefaultProcessTimeout,
	}
}

// WithRootDirectory sets the discovery root.
func (b *SettingsBuilder) WithRootDirectory(root string) *SettingsBuilder {
	b.rootDirectory = root
	return b
}

// WithIgnorePatterns sets the user skip patterns.
func (b *SettingsBuilder) WithIgnorePatterns(patterns ...string) *SettingsBuilder {
	b.ignorePatterns = patterns
	return b
}

// WithIgnoreGlobs sets the ignore globs.
func (b *SettingsBuilder) WithIgnoreGlobs(globs ...string) *SettingsBuilder {
	b.ignoreGlobs = globs
	return b
}

// WithCSharp enables project file handling.
func (b *SettingsBuilder) WithCSharp(options *entities.CSharpOptions) *SettingsBuilder {
	b.csharp = options
	return b
}

// WithDefaultCSharp enables every project file feature with common values.
func (b *SettingsBuilder) WithDefaultCSharp() *SettingsBuilder {
	return b.WithCSharp(&entities.CSharpOptions{
		CsProjVersioningOptions: &entities.CsProjVersioningOptions{
			TargetFramework:                  "net8.0",
			LangVersion:                      "latest",
			TreatWarningsAsErrors:            true,
			ProtectedTargetFrameworkPrefixes: []string{"netstandard"},
		},
		CsProjDotNetAnalyzerOptions: &entities.CsProjDotNetAnalyzerOptions{
			EnableNetAnalyzers:      true,
			EnforceCodeStyleInBuild: true,
		},
		CSharpStyleOptions: &entities.CSharpStyleOptions{RunDotnetFormat: true},
		NugetAuditOptions: &entities.NugetAuditOptions{
			NuGetAudit: true,
			AuditMode:  "all",
			AuditLevel: "low",
		},
		NuGetUpdateOptions: &entities.NuGetUpdateOptions{UpdateTopLevelNugetsInCsProj: true},
	})
}

// WithNpm enables package directory handling with buildCommand.
func (b *SettingsBuilder) WithNpm(buildCommand string) *SettingsBuilder {
	b.npm = &entities.NpmOptions{NpmBuildCommand: buildCommand}
	return b
}

// WithSearch adds a regex search.
func (b *SettingsBuilder) WithSearch(regex, description string) *SettingsBuilder {
	b.searches = append(b.searches, entities.RegexSearch{SearchRegex: regex, Description: description})
	return b
}

// WithCleanWorktreeRequired turns on the clean work tree gate.
func (b *SettingsBuilder) WithCleanWorktreeRequired() *SettingsBuilder {
	b.preflight = &entities.PreflightOptions{RequireCleanWorktree: true}
	return b
}

// WithProcessTimeout sets the external command timeout.
func (b *SettingsBuilder) WithProcessTimeout(timeout time.Duration) *SettingsBuilder {
	b.processTimeout = timeout
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := &entities.Settings{
		UpdatePathOptions: entities.UpdatePathOptions{
			RootDirectory:  b.rootDirectory,
			IgnorePatterns: b.ignorePatterns,
			IgnoreGlobs:    b.ignoreGlobs,
		},
		CSharpOptions:    b.csharp,
		NpmOptions:       b.npm,
		PreflightOptions: b.preflight,
		ProcessTimeout:   b.processTimeout,
	}
	if len(b.searches) > 0 {
		settings.RegexSearchOptions = &entities.RegexSearchOptions{Searches: b.searches}
	}
	return settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.rootDirectory = "/src"
	b.ignorePatterns = nil
	b.ignoreGlobs = nil
	b.csharp = nil
	b.npm = nil
	b.searches = nil
	b.preflight = nil
	b.processTimeout = entities.DefaultProcessTimeout
	return b
}

// Clone creates a copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		rootDirectory:  b.rootDirectory,
		ignorePatterns: append([]string{}, b.ignorePatterns...),
		ignoreGlobs:    append([]string{}, b.ignoreGlobs...),
		csharp:         b.csharp,
		npm:            b.npm,
		searches:       append([]entities.RegexSearch{}, b.searches...),
		preflight:      b.preflight,
		processTimeout: b.processTimeout,
	}
}
