package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultProcessTimeout bounds every external command.
	DefaultProcessTimeout = 5 * time.Minute

	defaultLogLevel = "verbose"
)

// ErrConfigNotFound is returned when no config file exists in the default locations.
var ErrConfigNotFound = errors.New("config file not found in default locations")

// Settings is the top-level configuration for a run. Optional blocks are
// pointers: a nil block disables the feature.
type Settings struct {
	UpdatePathOptions  UpdatePathOptions   `yaml:"update_path_options"`
	CSharpOptions      *CSharpOptions      `yaml:"csharp_options"`
	NpmOptions         *NpmOptions         `yaml:"npm_options"`
	RegexSearchOptions *RegexSearchOptions `yaml:"regex_search_options"`
	LoggingOptions     *LoggingOptions     `yaml:"logging_options"`
	PreflightOptions   *PreflightOptions   `yaml:"preflight_options"`
	ProcessTimeout     time.Duration       `yaml:"process_timeout"`
}

// UpdatePathOptions decides where discovery starts and what it ignores.
type UpdatePathOptions struct {
	RootDirectory  string   `yaml:"root_directory"`
	IgnorePatterns []string `yaml:"ignore_patterns"`
	IgnoreGlobs    []string `yaml:"ignore_globs"`
}

// CSharpOptions groups everything applied to project files.
type CSharpOptions struct {
	CsProjVersioningOptions     *CsProjVersioningOptions     `yaml:"csproj_versioning_options"`
	CsProjDotNetAnalyzerOptions *CsProjDotNetAnalyzerOptions `yaml:"csproj_dotnet_analyzer_options"`
	CSharpStyleOptions          *CSharpStyleOptions          `yaml:"csharp_style_options"`
	NugetAuditOptions           *NugetAuditOptions           `yaml:"nuget_audit_options"`
	NuGetUpdateOptions          *NuGetUpdateOptions          `yaml:"nuget_update_options"`
}

// CsProjVersioningOptions sets the framework and language versions.
type CsProjVersioningOptions struct {
	TargetFramework                  string   `yaml:"target_framework"`
	LangVersion                      string   `yaml:"lang_version"`
	TreatWarningsAsErrors            bool     `yaml:"treat_warnings_as_errors"`
	ProtectedTargetFrameworkPrefixes []string `yaml:"protected_target_framework_prefixes"`
}

// CsProjDotNetAnalyzerOptions sets the analyzer switches.
type CsProjDotNetAnalyzerOptions struct {
	EnableNetAnalyzers      bool `yaml:"enable_net_analyzers"`
	EnforceCodeStyleInBuild bool `yaml:"enforce_code_style_in_build"`
}

// CSharpStyleOptions toggles the formatter.
type CSharpStyleOptions struct {
	RunDotnetFormat bool `yaml:"run_dotnet_format"`
}

// NugetAuditOptions sets the package audit properties.
type NugetAuditOptions struct {
	NuGetAudit bool   `yaml:"nuget_audit"`
	AuditMode  string `yaml:"audit_mode"`
	AuditLevel string `yaml:"audit_level"`
}

// NuGetUpdateOptions selects which listed dependencies are bumped.
type NuGetUpdateOptions struct {
	UpdateTopLevelNugetsInCsProj    bool `yaml:"update_top_level_nugets_in_csproj"`
	UpdateTopLevelNugetsNotInCsProj bool `yaml:"update_top_level_nugets_not_in_csproj"`
}

// SelectionPolicy converts the options into a DependencySelectionPolicy.
func (o *NuGetUpdateOptions) SelectionPolicy() DependencySelectionPolicy {
	if o == nil {
		return DependencySelectionPolicy{}
	}
	return DependencySelectionPolicy{
		DeclaredInFile:    o.UpdateTopLevelNugetsInCsProj,
		NotDeclaredInFile: o.UpdateTopLevelNugetsNotInCsProj,
	}
}

// NpmOptions configures package directory handling.
type NpmOptions struct {
	NpmBuildCommand        string   `yaml:"npm_build_command"`
	MinCheckUpdatesVersion string   `yaml:"min_check_updates_version"`
	Shell                  []string `yaml:"shell"`
}

// ShellCommand returns the interpreter and its leading arguments.
func (o *NpmOptions) ShellCommand() []string {
	if o != nil && len(o.Shell) > 0 {
		return o.Shell
	}
	return DefaultShell()
}

// DefaultShell is the interpreter used for package manager commands.
func DefaultShell() []string {
	if runtime.GOOS == "windows" {
		return []string{"pwsh", "-Command"}
	}
	return []string{"sh", "-c"}
}

// RegexSearchOptions lists free-text searches run over discovered directories.
type RegexSearchOptions struct {
	Searches []RegexSearch `yaml:"searches"`
}

// RegexSearch is one pattern and the description used in the report.
type RegexSearch struct {
	SearchRegex string `yaml:"search_regex"`
	Description string `yaml:"description"`
}

// LoggingOptions configures the log sink.
type LoggingOptions struct {
	OutputFile string `yaml:"output_file"`
	LogLevel   string `yaml:"log_level"`
}

// PreflightOptions adds optional gates checked before any mutation.
type PreflightOptions struct {
	RequireCleanWorktree bool `yaml:"require_clean_worktree"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads, expands and validates the config file at path.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if envErr := loadDotEnv(filepath.Dir(path)); envErr != nil {
		return nil, envErr
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.applyDefaults()
	settings.expandEnv()

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{".", ".config", "configs"}
	if homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".codeupdater.yaml",
		".codeupdater.yml",
		"codeupdater.yaml",
		"codeupdater.yml",
		"codeupdater.json",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrConfigNotFound
}

// loadDotEnv loads a .env file next to the config. Variables already set
// in the environment win.
func loadDotEnv(dir string) error {
	envFile := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFile); err != nil {
		return nil //nolint:nilerr // no .env file is fine
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load %q: %w", envFile, err)
	}
	return nil
}

func (s *Settings) applyDefaults() {
	if s.ProcessTimeout <= 0 {
		s.ProcessTimeout = DefaultProcessTimeout
	}
	if s.LoggingOptions != nil && s.LoggingOptions.LogLevel == "" {
		s.LoggingOptions.LogLevel = defaultLogLevel
	}
	if v := s.versioning(); v != nil && v.ProtectedTargetFrameworkPrefixes == nil {
		v.ProtectedTargetFrameworkPrefixes = []string{"netstandard"}
	}
}

func (s *Settings) versioning() *CsProjVersioningOptions {
	if s.CSharpOptions == nil {
		return nil
	}
	return s.CSharpOptions.CsProjVersioningOptions
}

func (s *Settings) expandEnv() {
	s.UpdatePathOptions.RootDirectory = expandEnvVars(s.UpdatePathOptions.RootDirectory)
	for i, pattern := range s.UpdatePathOptions.IgnorePatterns {
		s.UpdatePathOptions.IgnorePatterns[i] = expandEnvVars(pattern)
	}
	if s.LoggingOptions != nil {
		s.LoggingOptions.OutputFile = expandEnvVars(s.LoggingOptions.OutputFile)
	}
}

// expandEnvVars replaces ${VAR} references; unset variables expand to "".
func expandEnvVars(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// validate checks for required configuration values.
func validate(s *Settings) error {
	if strings.TrimSpace(s.UpdatePathOptions.RootDirectory) == "" {
		return errors.New("update_path_options.root_directory is required")
	}

	for i, glob := range s.UpdatePathOptions.IgnoreGlobs {
		if !doublestar.ValidatePattern(glob) {
			return fmt.Errorf("update_path_options.ignore_globs[%d] is not a valid pattern: %q", i, glob)
		}
	}

	if err := validateCSharp(s.CSharpOptions); err != nil {
		return err
	}

	if s.NpmOptions != nil && strings.TrimSpace(s.NpmOptions.NpmBuildCommand) == "" {
		return errors.New("npm_options.npm_build_command is required")
	}

	if s.RegexSearchOptions != nil {
		for i, search := range s.RegexSearchOptions.Searches {
			if search.SearchRegex == "" {
				return fmt.Errorf("regex_search_options.searches[%d].search_regex is required", i)
			}
			if _, err := regexp.Compile(search.SearchRegex); err != nil {
				return fmt.Errorf("regex_search_options.searches[%d].search_regex is invalid: %w", i, err)
			}
		}
	}

	if s.LoggingOptions != nil {
		if _, err := ParseLogLevel(s.LoggingOptions.LogLevel); err != nil {
			return fmt.Errorf("logging_options.log_level: %w", err)
		}
	}

	return nil
}

func validateCSharp(options *CSharpOptions) error {
	if options == nil {
		return nil
	}

	if v := options.CsProjVersioningOptions; v != nil {
		if v.TargetFramework == "" {
			return errors.New("csharp_options.csproj_versioning_options.target_framework is required")
		}
		if v.LangVersion == "" {
			return errors.New("csharp_options.csproj_versioning_options.lang_version is required")
		}
	}

	if a := options.NugetAuditOptions; a != nil {
		if !slices.Contains([]string{"direct", "all"}, a.AuditMode) {
			return fmt.Errorf("csharp_options.nuget_audit_options.audit_mode must be direct or all, got %q", a.AuditMode)
		}
		if !slices.Contains([]string{"low", "moderate", "high", "critical"}, a.AuditLevel) {
			return fmt.Errorf(
				"csharp_options.nuget_audit_options.audit_level must be low, moderate, high or critical, got %q",
				a.AuditLevel,
			)
		}
	}

	return nil
}

// ParseLogLevel maps the configured verbosity onto a logrus level.
func ParseLogLevel(level string) (logger.Level, error) {
	switch strings.ToLower(level) {
	case "", "verbose", "debug":
		return logger.DebugLevel, nil
	case "info", "information":
		return logger.InfoLevel, nil
	case "warn", "warning":
		return logger.WarnLevel, nil
	case "error":
		return logger.ErrorLevel, nil
	default:
		return logger.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}
