package entities

import "strings"

// DependencySelectionPolicy chooses which partitions of the listed
// dependencies get bumped.
type DependencySelectionPolicy struct {
	DeclaredInFile    bool
	NotDeclaredInFile bool
}

// IsEmpty reports whether the policy selects nothing.
func (p DependencySelectionPolicy) IsEmpty() bool {
	return !p.DeclaredInFile && !p.NotDeclaredInFile
}

// DependencyPartition splits listed dependencies by whether the project
// file text declares them.
type DependencyPartition struct {
	DeclaredInFile    []string
	NotDeclaredInFile []string
}

// PartitionDependencies places every id in exactly one partition. An id is
// declared when the file text contains Include="<id>" (case-insensitive).
// Duplicate ids are kept once, in first-seen order.
func PartitionDependencies(ids []string, fileText string) DependencyPartition {
	lowered := strings.ToLower(fileText)
	seen := make(map[string]bool, len(ids))

	var partition DependencyPartition
	for _, id := range ids {
		key := strings.ToLower(id)
		if id == "" || seen[key] {
			continue
		}
		seen[key] = true

		if strings.Contains(lowered, `include="`+key+`"`) {
			partition.DeclaredInFile = append(partition.DeclaredInFile, id)
		} else {
			partition.NotDeclaredInFile = append(partition.NotDeclaredInFile, id)
		}
	}
	return partition
}

// Select returns the ids chosen by the policy, declared ones first.
func (p DependencyPartition) Select(policy DependencySelectionPolicy) []string {
	var selected []string
	if policy.DeclaredInFile {
		selected = append(selected, p.DeclaredInFile...)
	}
	if policy.NotDeclaredInFile {
		selected = append(selected, p.NotDeclaredInFile...)
	}
	return selected
}
