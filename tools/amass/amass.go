package amass

import (
	"context"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/tool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName      = "amass"
	DefaultBinary = "amass"
)

type AmassTool struct {
	binary   string
	executor tool.Executor
}

// New returns the amass tool running binary through executor. An empty
// binary falls back to DefaultBinary.
func New(binary string, executor tool.Executor) tool.Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &AmassTool{binary: binary, executor: executor}
}

func (t *AmassTool) Name() string {
	return ToolName
}

func (t *AmassTool) Description() string {
	return "Advanced subdomain enumeration and reconnaissance tool (runs amass on the server)"
}

func (t *AmassTool) Binary() string {
	return t.binary
}

func (t *AmassTool) Preview() bool {
	return false
}

// Definition is the MCP tool declaration.
func (t *AmassTool) Definition() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        ToolName,
		Description: t.Description(),
		InputSchema: inputSchema(),
	}
}

func (t *AmassTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, t.Definition(), t.handle)
}

func (t *AmassTool) handle(ctx context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	args, err := BuildArgs(req)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	return mcp.OutcomeResult(t.executor.Run(ctx, runner.Command{Name: t.binary, Args: args}))
}
