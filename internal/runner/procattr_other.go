//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package runner

import (
	"os"
	"os/exec"
)

// configureProcess keeps the exec.CommandContext default of killing only the
// direct child.
func configureProcess(cmd *exec.Cmd) {}

func terminatingSignal(state *os.ProcessState) (name string, number int, ok bool) {
	return "", 0, false
}
