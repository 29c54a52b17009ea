package entities

import (
	"fmt"
	"strings"
)

// BuildReport renders the run summary. It does not log or print anything.
func BuildReport(results RunResults) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Code Updater summary for %s\n", results.Work.RootDirectory)
	fmt.Fprintf(&sb, "Discovered %d project files and %d package directories\n",
		len(results.Work.ProjectFiles), len(results.Work.PackageDirectories))

	writeDependencySection(&sb, results.CSharpUpdates)
	writeAttributeSection(&sb, results.CSharpUpdates)
	writeStyleSection(&sb, results.CSharpUpdates)
	writePackageSection(&sb, results.PackageUpdate)
	writeCompileSection(&sb, "Project build failures", results.Compile.Projects)
	writeCompileSection(&sb, "Package directory build failures", results.Compile.PackageDirectories)
	writeSearchSection(&sb, results.Searches)

	return sb.String()
}

func writeDependencySection(sb *strings.Builder, updates []CSharpUpdateResult) {
	var listFailures []string
	var updateFailures []DependencyUpdateResult
	succeeded := 0

	for _, update := range updates {
		if !update.DependencyUpdates.RetrievedListSuccessfully {
			listFailures = append(listFailures, update.ProjectFile)
		}
		for _, dep := range update.DependencyUpdates.Updates {
			if dep.Succeeded {
				succeeded++
				continue
			}
			updateFailures = append(updateFailures, dep)
		}
	}

	fmt.Fprintf(sb, "\nDependency updates: %d succeeded, %d failed\n", succeeded, len(updateFailures))
	writeList(sb, "Could not list dependencies", listFailures)

	if len(updateFailures) > 0 {
		fmt.Fprintf(sb, "Failed dependency updates: %d\n", len(updateFailures))
		for _, dep := range updateFailures {
			fmt.Fprintf(sb, "  - %s (%s)\n", dep.ID, dep.ProjectFile)
		}
	}
}

func writeAttributeSection(sb *strings.Builder, updates []CSharpUpdateResult) {
	var changed, unknown []string

	for _, update := range updates {
		for _, attribute := range update.ProjectFileUpdate.Attributes {
			switch attribute.Result {
			case ValueUpdateUpdated, ValueUpdateInserted:
				changed = append(changed, fmt.Sprintf("%s: %s %s = %s",
					update.ProjectFile, strings.ToLower(string(attribute.Result)), attribute.Name, attribute.Value))
			case ValueUpdateUnknown:
				unknown = append(unknown, fmt.Sprintf("%s: %s", update.ProjectFile, attribute.Name))
			case ValueUpdateNotFound, ValueUpdateAlreadyCorrect, ValueUpdateHasProtectedValue:
			}
		}
	}

	fmt.Fprintf(sb, "\nProject file attributes changed: %d\n", len(changed))
	for _, line := range changed {
		fmt.Fprintf(sb, "  - %s\n", line)
	}
	writeList(sb, "Project file attributes with unknown result", unknown)
}

func writeStyleSection(sb *strings.Builder, updates []CSharpUpdateResult) {
	var errored []string
	for _, update := range updates {
		if update.StyleUpdate == StyleErrored {
			errored = append(errored, update.ProjectFile)
		}
	}
	writeList(sb, "Formatter errors", errored)
}

func writePackageSection(sb *strings.Builder, updates PackageManagerUpdates) {
	if len(updates.Directories) == 0 {
		return
	}
	fmt.Fprintf(sb, "\nPackage directories updated: %d\n", len(updates.Directories))
}

func writeCompileSection(sb *strings.Builder, title string, results []CompileResult) {
	var failures []string
	for _, result := range results {
		if result.Result != CompileSuccess {
			failures = append(failures, fmt.Sprintf("%s (%s)", result.Path, result.Result))
		}
	}

	fmt.Fprintf(sb, "\n%s: %d of %d\n", title, len(failures), len(results))
	for _, failure := range failures {
		fmt.Fprintf(sb, "  - %s\n", failure)
	}
}

func writeSearchSection(sb *strings.Builder, searches []RegexSearchResult) {
	if len(searches) == 0 {
		return
	}
	fmt.Fprintf(sb, "\nSearch matches: %d\n", len(searches))
	for _, search := range searches {
		fmt.Fprintf(sb, "  - %s: %s (%s)\n", search.Description, search.FilePath,
			strings.Join(search.MatchedStrings, ", "))
	}
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s: %d\n", title, len(items))
	for _, item := range items {
		fmt.Fprintf(sb, "  - %s\n", item)
	}
}

// BuildWorkSummary renders what a run would process.
func BuildWorkSummary(work UpdateWork) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Root: %s\n", work.RootDirectory)
	fmt.Fprintf(&sb, "Directories scanned: %d\n", len(work.ValidDirectories))
	fmt.Fprintf(&sb, "Project files: %d\n", len(work.ProjectFiles))
	for _, projectFile := range work.ProjectFiles {
		fmt.Fprintf(&sb, "  - %s\n", projectFile)
	}
	fmt.Fprintf(&sb, "Package directories: %d\n", len(work.PackageDirectories))
	for _, dir := range work.PackageDirectories {
		fmt.Fprintf(&sb, "  - %s\n", dir)
	}

	return sb.String()
}
