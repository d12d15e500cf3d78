package runner

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/alessio/shellescape"
)

// Command is an executable name and its literal argument vector.
type Command struct {
	Name string
	Args []string
}

// String renders the command with arguments joined by single spaces. It is
// for display only and must never be handed to a shell.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// ShellString renders the command with every word quoted for a POSIX shell,
// so a copied preview runs with exactly these arguments.
func (c Command) ShellString() string {
	return shellescape.QuoteCommand(append([]string{c.Name}, c.Args...))
}

// Resolve maps a binary name to an absolute path through PATH.
//
// Names containing path separators are rejected so that only binaries
// installed on PATH can be executed.
func Resolve(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("binary name must not be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("binary name must not contain path separators: %q", name)
	}

	absPath, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("binary %q not found in PATH: %w", name, err)
	}
	if !filepath.IsAbs(absPath) {
		return "", fmt.Errorf("resolved path is not absolute: %q", absPath)
	}
	return absPath, nil
}
