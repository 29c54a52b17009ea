package npm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

const shellProbe = "test"

// updateSequence is run in order in every package directory.
var updateSequence = []string{ //nolint:gochecknoglobals // fixed command sequence
	"npm-check-updates --upgrade",
	"npm install --legacy-peer-deps",
	"npm audit fix --force",
}

var (
	// ErrShellUnavailable means the shell interpreter could not echo back a probe.
	ErrShellUnavailable = errors.New("shell interpreter is not usable")
	// ErrGlobalPackageMissing means a required global package is not installed.
	ErrGlobalPackageMissing = errors.New("required global package is not installed")
	// ErrGlobalPackageOutdated means a global package is older than required.
	ErrGlobalPackageOutdated = errors.New("required global package is outdated")
)

// globalList mirrors the subset of "npm list --global --json" that is read.
type globalList struct {
	Dependencies map[string]struct {
		Version string `json:"version"`
	} `json:"dependencies"`
}

// PackageManagerRepository drives npm through the shell interpreter.
type PackageManagerRepository struct {
	log     logger.FieldLogger
	process repositories.ProcessRepository
}

// NewPackageManagerRepository creates an npm driver.
func NewPackageManagerRepository(
	log logger.FieldLogger,
	process repositories.ProcessRepository,
) *PackageManagerRepository {
	return &PackageManagerRepository{log: log, process: process}
}

// UpdatePackages runs the update sequence in every directory. A failing
// command is logged and the sequence moves on.
func (it *PackageManagerRepository) UpdatePackages(
	ctx context.Context,
	directories []string,
) entities.PackageManagerUpdates {
	updates := entities.PackageManagerUpdates{Directories: make([]string, 0, len(directories))}

	for _, dir := range directories {
		it.log.Infof("[npm] Updating packages in %q", dir)
		for _, command := range updateSequence {
			output := it.process.RunShell(ctx, dir, command)
			if !output.Succeeded() {
				it.log.Warnf("[npm] %q failed in %q (started=%t, in time=%t, exit=%d): %s",
					command, dir, output.Started, output.CompletedWithinTimeout, output.ExitCode, output.ErrorOutput)
			}
		}
		updates.Directories = append(updates.Directories, dir)
	}

	return updates
}

// BuildPackageDirectory runs "npm run <buildCommand>" and classifies it.
func (it *PackageManagerRepository) BuildPackageDirectory(
	ctx context.Context,
	directory, buildCommand string,
) entities.CompileResultType {
	output := it.process.RunShell(ctx, directory, "npm run "+buildCommand)
	result := entities.ClassifyBuild(output, entities.NpmBuildFailureMarker)

	if result == entities.CompileSuccess {
		it.log.Infof("[build] %q built successfully", directory)
	} else {
		it.log.Warnf("[build] %q: %s", directory, result)
	}
	return result
}

// VerifyShell echoes a probe through the shell and expects it back verbatim.
func (it *PackageManagerRepository) VerifyShell(ctx context.Context) error {
	output := it.process.RunShell(ctx, "", "echo "+shellProbe)
	if !output.Succeeded() {
		return fmt.Errorf("%w: probe did not complete (started=%t, exit=%d)",
			ErrShellUnavailable, output.Started, output.ExitCode)
	}
	if got := strings.TrimSpace(output.Output); got != shellProbe {
		return fmt.Errorf("%w: expected %q, got %q", ErrShellUnavailable, shellProbe, got)
	}
	return nil
}

// VerifyGlobalPackage checks the global npm packages for name, and its
// version against minVersion when one is given.
func (it *PackageManagerRepository) VerifyGlobalPackage(ctx context.Context, name, minVersion string) error {
	output := it.process.RunShell(ctx, "", "npm list --global --json")
	if !output.Started || !output.CompletedWithinTimeout {
		return fmt.Errorf("%w: could not list global packages", ErrGlobalPackageMissing)
	}

	var list globalList
	if err := json.Unmarshal([]byte(output.Output), &list); err != nil {
		return fmt.Errorf("failed to parse global package list: %w", err)
	}

	dependency, ok := list.Dependencies[name]
	if !ok {
		return fmt.Errorf("%w: %s (install it with \"npm install --global %s\")", ErrGlobalPackageMissing, name, name)
	}
	it.log.Debugf("[npm] Found global %s@%s", name, dependency.Version)

	if minVersion != "" && IsOlderVersion(dependency.Version, minVersion) {
		return fmt.Errorf("%w: %s %s is older than %s", ErrGlobalPackageOutdated, name, dependency.Version, minVersion)
	}
	return nil
}

// IsOlderVersion reports whether version is strictly older than minimum.
// Non-semver versions never count as older.
func IsOlderVersion(version, minimum string) bool {
	current := normalizeVersion(version)
	required := normalizeVersion(minimum)
	if !semver.IsValid(current) || !semver.IsValid(required) {
		return false
	}
	return semver.Compare(current, required) < 0
}

// normalizeVersion ensures the 'v' prefix semver expects.
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
