//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

const referencingProject = `<Project>
  <ItemGroup>
    <PackageReference Include="Serilog" Version="3.0.0" />
    <PackageReference INCLUDE="dapper" Version="2.0.0" />
  </ItemGroup>
</Project>`

func TestPartitionDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should place every id in exactly one partition", func(t *testing.T) {
		t.Parallel()

		// given
		ids := []string{"Serilog", "Dapper", "Polly", "Serilog.Sinks.Console", "serilog"}

		// when
		partition := entities.PartitionDependencies(ids, referencingProject)

		// then
		assert.Equal(t, []string{"Serilog", "Dapper"}, partition.DeclaredInFile)
		assert.Equal(t, []string{"Polly", "Serilog.Sinks.Console"}, partition.NotDeclaredInFile)
	})
}

func TestDependencyPartitionSelect(t *testing.T) {
	t.Parallel()

	partition := entities.DependencyPartition{
		DeclaredInFile:    []string{"Serilog"},
		NotDeclaredInFile: []string{"Polly"},
	}

	tests := []struct {
		name     string
		policy   entities.DependencySelectionPolicy
		expected []string
	}{
		{"nothing", entities.DependencySelectionPolicy{}, nil},
		{"declared only", entities.DependencySelectionPolicy{DeclaredInFile: true}, []string{"Serilog"}},
		{"undeclared only", entities.DependencySelectionPolicy{NotDeclaredInFile: true}, []string{"Polly"}},
		{"both", entities.DependencySelectionPolicy{DeclaredInFile: true, NotDeclaredInFile: true},
			[]string{"Serilog", "Polly"}},
	}

	for _, tt := range tests {
		t.Run("should select "+tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			selected := partition.Select(tt.policy)

			// then
			assert.Equal(t, tt.expected, selected)
			assert.Equal(t, tt.policy.IsEmpty(), len(selected) == 0)
		})
	}
}
