// Package masscan runs high-rate TCP port scans with masscan. masscan
// needs raw socket privileges on the host running the server.
package masscan

import (
	"context"
	"strconv"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName      = "do_masscan"
	DefaultBinary = "masscan"
	DefaultPorts  = "1-65535"
	DefaultRate   = 1000
)

type Request struct {
	Target string `json:"target" jsonschema:"IP address or CIDR range to scan" validate:"required,arg,ip|cidr"`
	Ports  string `json:"ports,omitempty" jsonschema:"Ports or ranges, e.g. 80,443,8000-8100 (default 1-65535)" validate:"omitempty,portlist"`
	Rate   *int   `json:"rate,omitempty" jsonschema:"Packets per second (default 1000)" validate:"omitempty,min=1,max=1000000"`
}

// BuildArgs returns <target> -p <ports> --rate <rate>.
func BuildArgs(req Request) ([]string, error) {
	if err := security.Check(req); err != nil {
		return nil, err
	}

	ports := req.Ports
	if ports == "" {
		ports = DefaultPorts
	}
	rate := DefaultRate
	if req.Rate != nil {
		rate = *req.Rate
	}
	return []string{req.Target, "-p", ports, "--rate", strconv.Itoa(rate)}, nil
}

type MasscanTool struct {
	binary   string
	executor tool.Executor
}

func New(binary string, executor tool.Executor) tool.Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &MasscanTool{binary: binary, executor: executor}
}

func (t *MasscanTool) Name() string   { return ToolName }
func (t *MasscanTool) Binary() string { return t.binary }
func (t *MasscanTool) Preview() bool  { return false }

func (t *MasscanTool) Description() string {
	return "Scan an IP address or range for open TCP ports with masscan."
}

func (t *MasscanTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, &mcpsdk.Tool{Name: ToolName, Description: t.Description()}, t.handle)
}

func (t *MasscanTool) handle(ctx context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	args, err := BuildArgs(req)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	return mcp.OutcomeResult(t.executor.Run(ctx, runner.Command{Name: t.binary, Args: args}))
}
