// Package nuclei runs template-based vulnerability scans with nuclei.
package nuclei

import (
	"context"
	"slices"
	"strings"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName      = "do_nuclei"
	DefaultBinary = "nuclei"
)

// Severities are the values nuclei accepts for -severity.
var Severities = []string{"info", "low", "medium", "high", "critical", "unknown"}

type Request struct {
	URL      string `json:"url" jsonschema:"Target URL" validate:"required,token,http_url"`
	Tags     string `json:"tags,omitempty" jsonschema:"Comma-separated template tags, e.g. cve,rce" validate:"omitempty,csvlist"`
	Severity string `json:"severity,omitempty" jsonschema:"Comma-separated severities: info, low, medium, high, critical" validate:"omitempty,csvlist"`
}

// BuildArgs returns -u <url> -silent [-tags t] [-severity s].
func BuildArgs(req Request) ([]string, error) {
	if err := security.Check(req); err != nil {
		return nil, err
	}

	args := []string{"-u", req.URL, "-silent"}
	if req.Tags != "" {
		args = append(args, "-tags", req.Tags)
	}
	if req.Severity != "" {
		for _, s := range strings.Split(req.Severity, ",") {
			if !slices.Contains(Severities, s) {
				return nil, security.Invalid("severity", "unknown severity %q: must be one of %s", s, strings.Join(Severities, ", "))
			}
		}
		args = append(args, "-severity", req.Severity)
	}
	return args, nil
}

type NucleiTool struct {
	binary   string
	executor tool.Executor
}

func New(binary string, executor tool.Executor) tool.Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &NucleiTool{binary: binary, executor: executor}
}

func (t *NucleiTool) Name() string   { return ToolName }
func (t *NucleiTool) Binary() string { return t.binary }
func (t *NucleiTool) Preview() bool  { return false }

func (t *NucleiTool) Description() string {
	return "Scan a URL for known vulnerabilities with nuclei templates, filtered by tags and severity."
}

func (t *NucleiTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, &mcpsdk.Tool{Name: ToolName, Description: t.Description()}, t.handle)
}

func (t *NucleiTool) handle(ctx context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	args, err := BuildArgs(req)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	return mcp.OutcomeResult(t.executor.Run(ctx, runner.Command{Name: t.binary, Args: args}))
}
