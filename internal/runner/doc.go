// Package runner executes external reconnaissance binaries and captures their
// combined output.
//
// Key Components:
//
//   - Command: executable name plus literal argument vector
//   - Resolve: PATH lookup that refuses names with path separators
//   - Executor: runs one Command to completion and returns an Outcome
//
// Usage Example:
//
//	exec := runner.NewExecutor(logger)
//	outcome := exec.Run(ctx, runner.Command{
//	    Name: "amass",
//	    Args: []string{"enum", "-d", "example.com"},
//	})
//	if outcome.Err != nil {
//	    // *runner.LaunchError or *runner.ExitError
//	}
//
// Arguments are never interpreted by a shell. Each call owns its own output
// buffer and its own child process; there is no pooling and no retry. When the
// context is cancelled the child's whole process group is killed.
package runner
