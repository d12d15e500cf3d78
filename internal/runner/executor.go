package runner

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/R167/reconmcp/internal/output"
	"github.com/rs/zerolog"
)

// waitDelay bounds how long Wait keeps draining pipes after the child exits
// or is killed; orphaned grandchildren may hold the pipes open.
const waitDelay = 5 * time.Second

// Outcome is the result of one process run.
type Outcome struct {
	Command  Command
	Output   string
	ExitCode int
	Err      error // nil, *LaunchError or *ExitError
	Duration time.Duration
}

// OK reports whether the process exited with status zero.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Executor runs commands. It holds no per-run state and is safe for
// concurrent use.
type Executor struct {
	logger zerolog.Logger
}

func NewExecutor(logger zerolog.Logger) *Executor {
	return &Executor{logger: logger}
}

// Run starts cmd, waits for it to exit and returns the captured output.
func (e *Executor) Run(ctx context.Context, cmd Command) Outcome {
	startedAt := time.Now()
	outcome := Outcome{Command: cmd, ExitCode: LaunchFailed}

	logger := e.logger.With().Str("binary", cmd.Name).Logger()
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		logger = l.With().Str("binary", cmd.Name).Logger()
	}

	absPath, err := Resolve(cmd.Name)
	if err != nil {
		outcome.Err = &LaunchError{Name: cmd.Name, Err: err}
		outcome.Duration = time.Since(startedAt)
		logger.Warn().Err(err).Msg("binary resolve failed")
		return outcome
	}

	// absPath came from exec.LookPath and exec.Cmd never goes through a
	// shell, so arguments cannot be interpreted as shell syntax.
	c := exec.CommandContext(ctx, absPath, cmd.Args...)
	configureProcess(c)
	c.WaitDelay = waitDelay

	buf := output.NewBuffer()
	c.Stdout = buf.Writer(output.Stdout)
	c.Stderr = buf.Writer(output.Stderr)

	logger.Debug().Str("path", absPath).Strs("args", cmd.Args).Msg("starting process")

	if err := c.Start(); err != nil {
		outcome.Err = &LaunchError{Name: cmd.Name, Err: err}
		outcome.Duration = time.Since(startedAt)
		logger.Warn().Err(err).Msg("process start failed")
		return outcome
	}

	waitErr := c.Wait()
	outcome.Duration = time.Since(startedAt)
	outcome.Output = buf.String()

	if errors.Is(waitErr, exec.ErrWaitDelay) && c.ProcessState != nil && c.ProcessState.Success() {
		waitErr = nil
	}

	logger.Debug().
		Int("output_bytes", buf.Len()).
		Int("stdout_bytes", buf.StreamLen(output.Stdout)).
		Int("stderr_bytes", buf.StreamLen(output.Stderr)).
		Dur("duration", outcome.Duration).
		Msg("process finished")

	if waitErr == nil {
		outcome.ExitCode = 0
		if outcome.Output == "" {
			outcome.Output = NoOutput
		}
		return outcome
	}

	code := LaunchFailed
	signal := ""
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		code = exitErr.ExitCode()
		if name, number, ok := terminatingSignal(exitErr.ProcessState); ok {
			code = SignalExitBase + number
			signal = name
		}
	}

	cause := ctx.Err()
	if cause == nil && exitErr == nil {
		cause = waitErr
	}

	outcome.ExitCode = code
	outcome.Err = &ExitError{
		Name:   cmd.Name,
		Code:   code,
		Signal: signal,
		Output: outcome.Output,
		Cause:  cause,
	}
	return outcome
}
