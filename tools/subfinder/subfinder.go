// Package subfinder runs ProjectDiscovery's subfinder for passive subdomain
// discovery.
package subfinder

import (
	"context"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName      = "do_subfinder"
	DefaultBinary = "subfinder"
)

type Request struct {
	Domain    string `json:"domain" jsonschema:"Domain to find subdomains for" validate:"required,arg,max=253,fqdn"`
	All       bool   `json:"all,omitempty" jsonschema:"Query every passive source (slower)"`
	Recursive bool   `json:"recursive,omitempty" jsonschema:"Only use sources that handle subdomains recursively"`
}

// BuildArgs returns -d <domain> -silent followed by the optional -all and
// -recursive switches.
func BuildArgs(req Request) ([]string, error) {
	if err := security.Check(req); err != nil {
		return nil, err
	}

	args := []string{"-d", req.Domain, "-silent"}
	if req.All {
		args = append(args, "-all")
	}
	if req.Recursive {
		args = append(args, "-recursive")
	}
	return args, nil
}

type SubfinderTool struct {
	binary   string
	executor tool.Executor
}

func New(binary string, executor tool.Executor) tool.Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &SubfinderTool{binary: binary, executor: executor}
}

func (t *SubfinderTool) Name() string   { return ToolName }
func (t *SubfinderTool) Binary() string { return t.binary }
func (t *SubfinderTool) Preview() bool  { return false }

func (t *SubfinderTool) Description() string {
	return "Discover subdomains from passive sources with subfinder."
}

func (t *SubfinderTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, &mcpsdk.Tool{Name: ToolName, Description: t.Description()}, t.handle)
}

func (t *SubfinderTool) handle(ctx context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	args, err := BuildArgs(req)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	return mcp.OutcomeResult(t.executor.Run(ctx, runner.Command{Name: t.binary, Args: args}))
}
