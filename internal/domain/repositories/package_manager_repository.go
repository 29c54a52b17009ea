package repositories

import (
	"context"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

// PackageManagerRepository drives the package manager of package directories.
type PackageManagerRepository interface {
	// UpdatePackages runs the update command sequence in every directory.
	UpdatePackages(ctx context.Context, directories []string) entities.PackageManagerUpdates

	// BuildPackageDirectory runs the configured build script in directory.
	BuildPackageDirectory(ctx context.Context, directory, buildCommand string) entities.CompileResultType

	// VerifyShell checks that the shell interpreter can be invoked.
	VerifyShell(ctx context.Context) error

	// VerifyGlobalPackage checks that name is installed globally, at least
	// at minVersion when minVersion is set.
	VerifyGlobalPackage(ctx context.Context, name, minVersion string) error
}
