package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	logger "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codeupdater.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestNewSettings(t *testing.T) {
	t.Run("should load a full config and apply defaults", func(t *testing.T) {
		// given
		path := writeConfig(t, `
update_path_options:
  root_directory: /src
  ignore_patterns: ["/legacy/"]
  ignore_globs: ["**/fixtures"]
csharp_options:
  csproj_versioning_options:
    target_framework: net8.0
    lang_version: latest
    treat_warnings_as_errors: true
  nuget_audit_options:
    nuget_audit: true
    audit_mode: all
    audit_level: low
npm_options:
  npm_build_command: build
logging_options:
  output_file: ""
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/src", settings.UpdatePathOptions.RootDirectory)
		assert.Equal(t, []string{"**/fixtures"}, settings.UpdatePathOptions.IgnoreGlobs)
		assert.Equal(t, entities.DefaultProcessTimeout, settings.ProcessTimeout)
		assert.Equal(t, "verbose", settings.LoggingOptions.LogLevel)
		assert.Equal(t, []string{"netstandard"},
			settings.CSharpOptions.CsProjVersioningOptions.ProtectedTargetFrameworkPrefixes)
		assert.Nil(t, settings.RegexSearchOptions)
		assert.Equal(t, entities.DefaultShell(), settings.NpmOptions.ShellCommand())
	})

	t.Run("should expand environment variables", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()
		// given
		t.Setenv("CODEUPDATER_TEST_ROOT", "/from/env")
		path := writeConfig(t, `
update_path_options:
  root_directory: ${CODEUPDATER_TEST_ROOT}/repo
  ignore_patterns: ["/${CODEUPDATER_TEST_UNSET}skip/"]
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/from/env/repo", settings.UpdatePathOptions.RootDirectory)
		assert.Equal(t, []string{"/skip/"}, settings.UpdatePathOptions.IgnorePatterns)
	})

	t.Run("should read variables from a .env file next to the config", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()
		// given
		t.Setenv("CODEUPDATER_TEST_DOTENV_ROOT", "")
		require.NoError(t, os.Unsetenv("CODEUPDATER_TEST_DOTENV_ROOT"))
		path := writeConfig(t, `
update_path_options:
  root_directory: ${CODEUPDATER_TEST_DOTENV_ROOT}
`)
		require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), ".env"),
			[]byte("CODEUPDATER_TEST_DOTENV_ROOT=/from/dotenv\n"), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/from/dotenv", settings.UpdatePathOptions.RootDirectory)
	})

	t.Run("should accept a config that only names the root directory", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "update_path_options:\n  root_directory: /src\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Nil(t, settings.LoggingOptions)
		assert.Nil(t, settings.CSharpOptions)
		assert.Nil(t, settings.NpmOptions)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail on malformed yaml", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "update_path_options: [")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestNewSettingsValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"missing root", "npm_options:\n  npm_build_command: build\n", "root_directory is required"},
		{"invalid glob", "update_path_options:\n  root_directory: /src\n  ignore_globs: [\"[\"]\n",
			"ignore_globs[0] is not a valid pattern"},
		{"missing target framework", `
update_path_options:
  root_directory: /src
csharp_options:
  csproj_versioning_options:
    lang_version: latest
`, "target_framework is required"},
		{"bad audit mode", `
update_path_options:
  root_directory: /src
csharp_options:
  nuget_audit_options:
    audit_mode: everything
    audit_level: low
`, "audit_mode must be direct or all"},
		{"bad audit level", `
update_path_options:
  root_directory: /src
csharp_options:
  nuget_audit_options:
    audit_mode: direct
    audit_level: severe
`, "audit_level must be low, moderate, high or critical"},
		{"missing npm build command", "update_path_options:\n  root_directory: /src\nnpm_options: {}\n",
			"npm_build_command is required"},
		{"invalid search regex", `
update_path_options:
  root_directory: /src
regex_search_options:
  searches:
    - search_regex: "("
      description: broken
`, "searches[0].search_regex is invalid"},
		{"unknown log level", `
update_path_options:
  root_directory: /src
logging_options:
  log_level: chatty
`, "logging_options.log_level"},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			path := writeConfig(t, tt.content)

			// when
			_, err := entities.NewSettings(path)

			// then
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected logger.Level
	}{
		{"", logger.DebugLevel},
		{"Verbose", logger.DebugLevel},
		{"information", logger.InfoLevel},
		{"WARNING", logger.WarnLevel},
		{"error", logger.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run("should parse "+tt.input, func(t *testing.T) {
			t.Parallel()

			// when
			level, err := entities.ParseLogLevel(tt.input)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	t.Run("should reject unknown levels", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.ParseLogLevel("trace-everything")

		// then
		require.Error(t, err)
	})
}

func TestNuGetUpdateOptionsSelectionPolicy(t *testing.T) {
	t.Parallel()

	t.Run("should select nothing when the block is absent", func(t *testing.T) {
		t.Parallel()

		// given
		var options *entities.NuGetUpdateOptions

		// when
		policy := options.SelectionPolicy()

		// then
		assert.True(t, policy.IsEmpty())
	})

	t.Run("should map both switches", func(t *testing.T) {
		t.Parallel()

		// given
		options := &entities.NuGetUpdateOptions{UpdateTopLevelNugetsInCsProj: true}

		// when
		policy := options.SelectionPolicy()

		// then
		assert.Equal(t, entities.DependencySelectionPolicy{DeclaredInFile: true}, policy)
	})
}
