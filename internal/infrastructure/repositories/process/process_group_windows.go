//go:build windows

package process

import (
	"errors"
	"os"
	"os/exec"
)

func startInOwnGroup(_ *exec.Cmd) {}

// killGroup kills the command itself. Children are not tracked on Windows.
func killGroup(cmd *exec.Cmd) error {
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
