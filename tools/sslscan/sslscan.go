// Package sslscan runs sslscan against a TLS endpoint and reports the
// supported protocols and cipher suites.
package sslscan

import (
	"context"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName      = "do_sslscan"
	DefaultBinary = "sslscan"
)

type Request struct {
	Target          string `json:"target" jsonschema:"Host, IP or host:port to scan, e.g. example.com:443" validate:"required,arg,hostname_port|fqdn|ip"`
	ShowCertificate bool   `json:"show_certificate,omitempty" jsonschema:"Include the full server certificate"`
}

// BuildArgs returns the sslscan argument vector. Colour output is always
// disabled since results are returned as plain text.
func BuildArgs(req Request) ([]string, error) {
	if err := security.Check(req); err != nil {
		return nil, err
	}

	args := []string{"--no-colour"}
	if req.ShowCertificate {
		args = append(args, "--show-certificate")
	}
	return append(args, req.Target), nil
}

type SslscanTool struct {
	binary   string
	executor tool.Executor
}

func New(binary string, executor tool.Executor) tool.Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &SslscanTool{binary: binary, executor: executor}
}

func (t *SslscanTool) Name() string   { return ToolName }
func (t *SslscanTool) Binary() string { return t.binary }
func (t *SslscanTool) Preview() bool  { return false }

func (t *SslscanTool) Description() string {
	return "Scan a TLS endpoint for supported protocols and ciphers with sslscan."
}

func (t *SslscanTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, &mcpsdk.Tool{Name: ToolName, Description: t.Description()}, t.handle)
}

func (t *SslscanTool) handle(ctx context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	args, err := BuildArgs(req)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	return mcp.OutcomeResult(t.executor.Run(ctx, runner.Command{Name: t.binary, Args: args}))
}
