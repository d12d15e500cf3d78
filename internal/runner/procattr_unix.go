//go:build linux || darwin || freebsd || netbsd || openbsd

package runner

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// configureProcess puts the child in its own process group so cancellation
// also reaches anything it spawned.
func configureProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		err := unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
		if errors.Is(err, unix.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
}

// terminatingSignal returns the name and number of the signal that ended
// the process, or ok=false when it exited on its own.
func terminatingSignal(state *os.ProcessState) (name string, number int, ok bool) {
	if state == nil {
		return "", 0, false
	}
	status, isWait := state.Sys().(syscall.WaitStatus)
	if !isWait || !status.Signaled() {
		return "", 0, false
	}
	sig := status.Signal()
	name = unix.SignalName(sig)
	if name == "" {
		name = sig.String()
	}
	return name, int(sig), true
}
