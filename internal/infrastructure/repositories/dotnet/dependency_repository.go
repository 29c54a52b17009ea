package dotnet

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

const dotnetExecutable = "dotnet"

// packageList mirrors the subset of "dotnet list package --format json" that
// is read.
type packageList struct {
	Projects []struct {
		Path       string `json:"path"`
		Frameworks []struct {
			Framework        string `json:"framework"`
			TopLevelPackages []struct {
				ID string `json:"id"`
			} `json:"topLevelPackages"`
		} `json:"frameworks"`
	} `json:"projects"`
}

// DependencyRepository bumps NuGet dependencies through the dotnet CLI.
type DependencyRepository struct {
	log     logger.FieldLogger
	process repositories.ProcessRepository
}

// NewDependencyRepository creates a NuGet dependency updater.
func NewDependencyRepository(
	log logger.FieldLogger,
	process repositories.ProcessRepository,
) *DependencyRepository {
	return &DependencyRepository{log: log, process: process}
}

// UpdateDependencies lists the top-level packages of projectFile, selects the
// ones allowed by policy, and upgrades each one to its latest version.
func (it *DependencyRepository) UpdateDependencies(
	ctx context.Context,
	projectFile string,
	policy entities.DependencySelectionPolicy,
) entities.DependencyUpdateResults {
	if policy.IsEmpty() {
		it.log.Debugf("[nuget] Dependency updates disabled for %q", projectFile)
		return entities.DependencyUpdateResults{RetrievedListSuccessfully: true}
	}

	dir := filepath.Dir(projectFile)
	ids, err := it.listTopLevelPackages(ctx, dir, projectFile)
	if err != nil {
		it.log.Errorf("[nuget] Could not list packages of %q: %v", projectFile, err)
		return entities.DependencyUpdateResults{}
	}

	text, err := os.ReadFile(projectFile)
	if err != nil {
		it.log.Errorf("[nuget] Could not read %q: %v", projectFile, err)
		return entities.DependencyUpdateResults{}
	}

	selected := entities.PartitionDependencies(ids, string(text)).Select(policy)
	results := entities.DependencyUpdateResults{
		RetrievedListSuccessfully: true,
		Updates:                   make([]entities.DependencyUpdateResult, 0, len(selected)),
	}

	for _, id := range selected {
		output := it.process.Run(ctx, dir, dotnetExecutable, "add", projectFile, "package", id)
		succeeded := output.Succeeded()
		if succeeded {
			it.log.Infof("[nuget] Updated %s in %q", id, projectFile)
		} else {
			it.log.Warnf("[nuget] Failed to update %s in %q: %s", id, projectFile, output.ErrorOutput)
		}
		results.Updates = append(results.Updates, entities.DependencyUpdateResult{
			ProjectFile: projectFile,
			ID:          id,
			Succeeded:   succeeded,
		})
	}

	return results
}

func (it *DependencyRepository) listTopLevelPackages(
	ctx context.Context,
	dir, projectFile string,
) ([]string, error) {
	output := it.process.Run(ctx, dir, dotnetExecutable, "list", projectFile, "package", "--format", "json")
	switch {
	case !output.Started:
		return nil, fmt.Errorf("%s did not start", dotnetExecutable)
	case !output.CompletedWithinTimeout:
		return nil, fmt.Errorf("%s list timed out", dotnetExecutable)
	case output.ExitCode != 0:
		return nil, fmt.Errorf("%s list exited with code %d", dotnetExecutable, output.ExitCode)
	}
	return ParsePackageList([]byte(output.Output))
}

// ParsePackageList extracts the distinct top-level package ids, in order of
// first appearance across projects and frameworks.
func ParsePackageList(data []byte) ([]string, error) {
	var list packageList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse package list: %w", err)
	}

	seen := make(map[string]bool)
	var ids []string
	for _, project := range list.Projects {
		for _, framework := range project.Frameworks {
			for _, pkg := range framework.TopLevelPackages {
				if pkg.ID == "" || seen[pkg.ID] {
					continue
				}
				seen[pkg.ID] = true
				ids = append(ids, pkg.ID)
			}
		}
	}
	return ids, nil
}
