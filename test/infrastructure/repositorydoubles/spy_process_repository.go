//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"
	"time"

	"github.com/programmeral/codeupdater/internal/domain/entities"
	"github.com/programmeral/codeupdater/internal/domain/repositories"
)

// ProcessCall records one command handed to the process repository.
type ProcessCall struct {
	Dir   string
	Shell bool
	// Line is the executable and its arguments joined by spaces, or the raw
	// shell command for RunShell.
	Line string
}

// ProcessRule answers every command line starting with Prefix.
type ProcessRule struct {
	Prefix string
	Output entities.ProcessOutput
}

// SpyProcessRepository implements repositories.ProcessRepository by matching
// command lines against Rules in order. Unmatched commands get Default.
type SpyProcessRepository struct {
	Rules   []ProcessRule
	Default entities.ProcessOutput
	Calls   []ProcessCall

	ConfiguredTimeout time.Duration
	ConfiguredShell   []string
}

var _ repositories.ProcessRepository = (*SpyProcessRepository)(nil)

// NewSpyProcessRepository returns a spy whose unmatched commands succeed silently.
func NewSpyProcessRepository(rules ...ProcessRule) *SpyProcessRepository {
	return &SpyProcessRepository{Rules: rules, Default: SucceededOutput("")}
}

func (s *SpyProcessRepository) Configure(timeout time.Duration, shell []string) {
	s.ConfiguredTimeout = timeout
	s.ConfiguredShell = shell
}

func (s *SpyProcessRepository) Run(_ context.Context, dir, name string, args ...string) entities.ProcessOutput {
	line := strings.Join(append([]string{name}, args...), " ")
	s.Calls = append(s.Calls, ProcessCall{Dir: dir, Line: line})
	return s.answer(line)
}

func (s *SpyProcessRepository) RunShell(_ context.Context, dir, command string) entities.ProcessOutput {
	s.Calls = append(s.Calls, ProcessCall{Dir: dir, Shell: true, Line: command})
	return s.answer(command)
}

// Lines returns the recorded command lines in call order.
func (s *SpyProcessRepository) Lines() []string {
	lines := make([]string, 0, len(s.Calls))
	for _, call := range s.Calls {
		lines = append(lines, call.Line)
	}
	return lines
}

func (s *SpyProcessRepository) answer(line string) entities.ProcessOutput {
	for _, rule := range s.Rules {
		if strings.HasPrefix(line, rule.Prefix) {
			return rule.Output
		}
	}
	return s.Default
}

// SucceededOutput is a clean exit with the given stdout.
func SucceededOutput(stdout string) entities.ProcessOutput {
	return entities.ProcessOutput{Started: true, CompletedWithinTimeout: true, Output: stdout}
}

// FailedOutput is a completed run with a non-zero exit code.
func FailedOutput(exitCode int, stdout string) entities.ProcessOutput {
	return entities.ProcessOutput{Started: true, CompletedWithinTimeout: true, ExitCode: exitCode, Output: stdout}
}

// TimedOutOutput is a run killed at the timeout.
func TimedOutOutput(stdout string) entities.ProcessOutput {
	return entities.ProcessOutput{Started: true, ExitCode: -1, Output: stdout}
}

// NotStartedOutput is a command that could not be launched.
func NotStartedOutput() entities.ProcessOutput {
	return entities.ProcessOutput{ExitCode: -1}
}
