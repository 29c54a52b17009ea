//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// GlobalPackageCall records one VerifyGlobalPackage invocation.
type GlobalPackageCall struct {
	Name       string
	MinVersion string
}

// BuildPackageCall records one BuildPackageDirectory invocation.
type BuildPackageCall struct {
	Directory    string
	BuildCommand string
}

// SpyPackageManagerRepository implements repositories.PackageManagerRepository.
type SpyPackageManagerRepository struct {
	ShellErr     error
	GlobalErr    error
	BuildResults map[string]entities.CompileResultType

	ShellCalls  int
	GlobalCalls []GlobalPackageCall
	Updated     [][]string
	BuildCalls  []BuildPackageCall
}

var _ repositories.PackageManagerRepository = (*SpyPackageManagerRepository)(nil)

func (s *SpyPackageManagerRepository) UpdatePackages(
	_ context.Context,
	directories []string,
) entities.PackageManagerUpdates {
	s.Updated = append(s.Updated, directories)
	return entities.PackageManagerUpdates{Directories: directories}
}

func (s *SpyPackageManagerRepository) BuildPackageDirectory(
	_ context.Context,
	directory, buildCommand string,
) entities.CompileResultType {
	s.BuildCalls = append(s.BuildCalls, BuildPackageCall{Directory: directory, BuildCommand: buildCommand})
	if result, ok := s.BuildResults[directory]; ok {
		return result
	}
	return entities.CompileSuccess
}

func (s *SpyPackageManagerRepository) VerifyShell(_ context.Context) error {
	s.ShellCalls++
	return s.ShellErr
}

func (s *SpyPackageManagerRepository) VerifyGlobalPackage(_ context.Context, name, minVersion string) error {
	s.GlobalCalls = append(s.GlobalCalls, GlobalPackageCall{Name: name, MinVersion: minVersion})
	return s.GlobalErr
}
