package repositories

import (
	"context"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

// StyleRepository runs the code formatter over one project file.
type StyleRepository interface {
	MaybeFormat(ctx context.Context, projectFile string, enabled bool) entities.StyleResultType
}
