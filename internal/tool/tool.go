// Package tool defines the contract every MCP-exposed reconnaissance tool
// implements.
package tool

import (
	"context"
	"time"

	"github.com/R167/reconmcp/internal/runner"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

type Tool interface {
	Name() string
	Description() string
	// Binary is the executable the tool runs or previews. Tools that work
	// in-process, such as HTTP lookups, return "".
	Binary() string
	// Preview reports whether the tool only renders its command line.
	Preview() bool
	Register(server *mcpsdk.Server, env *Env)
}

// Env carries what a registered handler needs at call time.
type Env struct {
	Logger      zerolog.Logger
	VerboseLogs bool
	// MaxDuration is a soft per-call deadline. Zero means no deadline beyond
	// the caller's own context.
	MaxDuration time.Duration
}

// Executor runs a command to completion. *runner.Executor implements it.
type Executor interface {
	Run(ctx context.Context, cmd runner.Command) runner.Outcome
}
