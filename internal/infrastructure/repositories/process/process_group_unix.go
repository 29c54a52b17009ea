//go:build !windows

package process

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// startInOwnGroup places the command in a new process group so a timeout can
// stop everything it spawned.
func startInOwnGroup(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// killGroup kills the command and every process left in its group.
func killGroup(cmd *exec.Cmd) error {
	if pgid, err := syscall.Getpgid(cmd.Process.Pid); err == nil && pgid > 0 {
		_ = syscall.Kill(-pgid, syscall.SIGKILL)
	}
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
