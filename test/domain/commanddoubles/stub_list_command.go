//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/programmeral/codeupdater/internal/domain/commands"
	"github.com/programmeral/codeupdater/internal/domain/entities"
)

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Work             entities.UpdateWork
	LastSettings     *entities.Settings
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(_ context.Context, settings *entities.Settings) (entities.UpdateWork, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Work, s.ExecuteErr
}
