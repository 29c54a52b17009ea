package repositories

import (
	"context"
	"time"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

// ProcessRepository runs external commands to completion, bounded by a timeout.
// It never returns an error for a command that cannot be found; it reports
// Started=false instead.
type ProcessRepository interface {
	// Configure sets the timeout and shell interpreter from the loaded settings.
	Configure(timeout time.Duration, shell []string)

	// Run executes name with args in dir (empty means the current directory).
	Run(ctx context.Context, dir, name string, args ...string) entities.ProcessOutput

	// RunShell executes command through the configured shell interpreter.
	RunShell(ctx context.Context, dir, command string) entities.ProcessOutput
}
