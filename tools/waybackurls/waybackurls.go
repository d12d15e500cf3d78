// Package waybackurls lists URLs the Wayback Machine has archived for a
// domain.
package waybackurls

import (
	"context"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName      = "do_waybackurls"
	DefaultBinary = "waybackurls"
)

type Request struct {
	Domain string `json:"domain" jsonschema:"Domain to look up in the Wayback Machine" validate:"required,arg,max=253,fqdn"`
	NoSubs bool   `json:"no_subs,omitempty" jsonschema:"Exclude subdomains of the target domain"`
	Dates  bool   `json:"dates,omitempty" jsonschema:"Prefix each URL with its capture date"`
}

// BuildArgs places the switches before the domain, which waybackurls reads
// as its only positional argument.
func BuildArgs(req Request) ([]string, error) {
	if err := security.Check(req); err != nil {
		return nil, err
	}

	var args []string
	if req.NoSubs {
		args = append(args, "-no-subs")
	}
	if req.Dates {
		args = append(args, "-dates")
	}
	return append(args, req.Domain), nil
}

type WaybackurlsTool struct {
	binary   string
	executor tool.Executor
}

func New(binary string, executor tool.Executor) tool.Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &WaybackurlsTool{binary: binary, executor: executor}
}

func (t *WaybackurlsTool) Name() string   { return ToolName }
func (t *WaybackurlsTool) Binary() string { return t.binary }
func (t *WaybackurlsTool) Preview() bool  { return false }

func (t *WaybackurlsTool) Description() string {
	return "Fetch URLs archived by the Wayback Machine for a domain."
}

func (t *WaybackurlsTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, &mcpsdk.Tool{Name: ToolName, Description: t.Description()}, t.handle)
}

func (t *WaybackurlsTool) handle(ctx context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	args, err := BuildArgs(req)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	return mcp.OutcomeResult(t.executor.Run(ctx, runner.Command{Name: t.binary, Args: args}))
}
