// Package wpscan audits WordPress sites with wpscan.
package wpscan

import (
	"context"
	"strings"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName      = "do_wpscan"
	DefaultBinary = "wpscan"
)

type Request struct {
	URL string `json:"url" jsonschema:"WordPress site URL" validate:"required,token,http_url"`
	// Enumerate takes wpscan --enumerate values: vp, ap, p (plugins), vt,
	// at, t (themes), tt, cb, dbe, u, m.
	Enumerate []string `json:"enumerate,omitempty" jsonschema:"What to enumerate: vp, ap, p, vt, at, t, tt, cb, dbe, u, m" validate:"omitempty,dive,oneof=vp ap p vt at t tt cb dbe u m"`
}

// BuildArgs returns --url <url> --no-banner [--enumerate <values>].
func BuildArgs(req Request) ([]string, error) {
	if err := security.Check(req); err != nil {
		return nil, err
	}

	args := []string{"--url", req.URL, "--no-banner"}
	if len(req.Enumerate) > 0 {
		args = append(args, "--enumerate", strings.Join(req.Enumerate, ","))
	}
	return args, nil
}

type WpscanTool struct {
	binary   string
	executor tool.Executor
}

func New(binary string, executor tool.Executor) tool.Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &WpscanTool{binary: binary, executor: executor}
}

func (t *WpscanTool) Name() string   { return ToolName }
func (t *WpscanTool) Binary() string { return t.binary }
func (t *WpscanTool) Preview() bool  { return false }

func (t *WpscanTool) Description() string {
	return "Scan a WordPress site for vulnerable plugins, themes and users with wpscan."
}

func (t *WpscanTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, &mcpsdk.Tool{Name: ToolName, Description: t.Description()}, t.handle)
}

func (t *WpscanTool) handle(ctx context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	args, err := BuildArgs(req)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	return mcp.OutcomeResult(t.executor.Run(ctx, runner.Command{Name: t.binary, Args: args}))
}
