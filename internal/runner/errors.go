package runner

import (
	"fmt"
	"strings"
)

// LaunchFailed is the exit code reported when the process never started.
const LaunchFailed = -1

// NoOutput replaces an empty capture in successful results and error text.
const NoOutput = "(no output)"

// LaunchError means the executable could not be resolved or started.
type LaunchError struct {
	Name string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Name, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// SignalExitBase is added to the signal number to form the exit code of a
// process terminated by a signal, following the shell convention.
const SignalExitBase = 128

// ExitError means the process ran but did not exit cleanly. Output holds
// everything captured from stdout and stderr.
type ExitError struct {
	Name   string
	Code   int
	Signal string // e.g. "SIGKILL" when a signal ended the process
	Output string
	Cause  error // context error when the run was cancelled, otherwise nil
}

func (e *ExitError) Error() string {
	output := e.Output
	if strings.TrimSpace(output) == "" {
		output = NoOutput
	}

	var status string
	switch {
	case e.Cause != nil && e.Signal != "":
		status = fmt.Sprintf("was stopped (%v) by signal %s with code %d", e.Cause, e.Signal, e.Code)
	case e.Cause != nil:
		status = fmt.Sprintf("was stopped (%v) with code %d", e.Cause, e.Code)
	case e.Signal != "":
		status = fmt.Sprintf("was killed by signal %s with code %d", e.Signal, e.Code)
	default:
		status = fmt.Sprintf("exited with code %d", e.Code)
	}
	return fmt.Sprintf("%s %s. Output: %s", e.Name, status, output)
}

func (e *ExitError) Unwrap() error {
	return e.Cause
}
