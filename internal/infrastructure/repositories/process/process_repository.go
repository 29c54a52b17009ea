package process

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

// waitDelay bounds how long Wait keeps draining output after a kill, so
// orphaned grandchildren holding the pipes cannot block the run.
const waitDelay = 2 * time.Second

// ProcessRepository runs external commands with a fixed timeout.
type ProcessRepository struct {
	log     logger.FieldLogger
	timeout time.Duration
	shell   []string
}

// NewProcessRepository creates a runner. An empty shell falls back to the
// platform default interpreter.
func NewProcessRepository(log logger.FieldLogger, timeout time.Duration, shell []string) *ProcessRepository {
	if timeout <= 0 {
		timeout = entities.DefaultProcessTimeout
	}
	if len(shell) == 0 {
		shell = entities.DefaultShell()
	}
	return &ProcessRepository{log: log, timeout: timeout, shell: shell}
}

// Configure replaces the timeout and shell. Zero values keep the current ones.
func (it *ProcessRepository) Configure(timeout time.Duration, shell []string) {
	if timeout > 0 {
		it.timeout = timeout
	}
	if len(shell) > 0 {
		it.shell = shell
	}
}

// Timeout returns the bound applied to every command.
func (it *ProcessRepository) Timeout() time.Duration {
	return it.timeout
}

// Run executes name with args in dir and waits for it to exit or time out.
func (it *ProcessRepository) Run(ctx context.Context, dir, name string, args ...string) entities.ProcessOutput {
	//nolint:gosec // commands are fixed by the caller, not user input
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	startInOwnGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	it.log.Debugf("[process] Running %q %v in %q", name, args, dir)

	if err := cmd.Start(); err != nil {
		it.log.Errorf("[process] Could not start %q: %v", name, err)
		return entities.ProcessOutput{Started: false}
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	timer := time.NewTimer(it.timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return entities.ProcessOutput{
			Started:                true,
			CompletedWithinTimeout: true,
			ExitCode:               exitCode(err),
			Output:                 stdout.String(),
			ErrorOutput:            stderr.String(),
		}
	case <-timer.C:
		it.log.Warnf("[process] %q did not finish within %s, killing it", name, it.timeout)
	case <-ctx.Done():
		it.log.Warnf("[process] %q cancelled: %v", name, ctx.Err())
	}

	if killErr := killGroup(cmd); killErr != nil {
		it.log.Debugf("[process] Could not kill %q: %v", name, killErr)
	}
	err := <-done

	return entities.ProcessOutput{
		Started:                true,
		CompletedWithinTimeout: false,
		ExitCode:               exitCode(err),
		Output:                 stdout.String(),
		ErrorOutput:            stderr.String(),
	}
}

// RunShell executes command through the shell interpreter so that
// executable resolution quirks are handled by the shell.
func (it *ProcessRepository) RunShell(ctx context.Context, dir, command string) entities.ProcessOutput {
	args := append(append([]string{}, it.shell[1:]...), command)
	return it.Run(ctx, dir, it.shell[0], args...)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
