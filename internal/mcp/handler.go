package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

// ToolHandler is the core of a tool: validated input in, result or error out.
// The per-call logger is available through zerolog.Ctx(ctx).
type ToolHandler[In any] func(ctx context.Context, input In) (*mcpsdk.CallToolResult, ToolOutput, error)

// AddTool registers def on server. Every call gets an invocation id, the
// env's MaxDuration deadline and start/finish logging.
func AddTool[In any](server *mcpsdk.Server, env *tool.Env, def *mcpsdk.Tool, h ToolHandler[In]) {
	mcpsdk.AddTool(server, def, func(ctx context.Context, req *mcpsdk.CallToolRequest, input In) (*mcpsdk.CallToolResult, ToolOutput, error) {
		logger := env.Logger.With().
			Str("tool", def.Name).
			Str("invocation_id", uuid.NewString()).
			Logger()

		if env.MaxDuration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, env.MaxDuration)
			defer cancel()
		}
		ctx = logger.WithContext(ctx)

		if env.VerboseLogs {
			logger.Debug().Interface("input", input).Msg("tool call received")
		}

		start := time.Now()
		res, out, err := h(ctx, input)
		logCall(logger, out, err, time.Since(start))
		return res, out, err
	})
}

func logCall(logger zerolog.Logger, out ToolOutput, err error, elapsed time.Duration) {
	var (
		validationErr *security.ValidationError
		launchErr     *runner.LaunchError
		exitErr       *runner.ExitError
	)

	switch {
	case err == nil:
		logger.Info().
			Str("command", out.Command).
			Bool("preview", out.Preview).
			Dur("duration", elapsed).
			Msg("tool call succeeded")
	case errors.As(err, &validationErr):
		logger.Info().
			Str("field", validationErr.Field).
			Str("reason", validationErr.Reason).
			Msg("tool call rejected")
	case errors.As(err, &launchErr):
		logger.Error().Err(launchErr.Err).Str("binary", launchErr.Name).Msg("tool could not be started")
	case errors.As(err, &exitErr):
		logger.Warn().
			Int("exit_code", exitErr.Code).
			Str("signal", exitErr.Signal).
			AnErr("cause", exitErr.Cause).
			Dur("duration", elapsed).
			Msg("tool exited with failure")
	default:
		logger.Error().Err(err).Msg("tool call failed")
	}
}
