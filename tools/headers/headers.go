// Package headers reports which HTTP security headers a site sends. It
// runs in-process and spawns nothing.
package headers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName  = "check_http_headers"
	UserAgent = "Mozilla/5.0 (Security Header Check)"
)

// SecurityHeaders are reported in this order.
var SecurityHeaders = []string{
	"Strict-Transport-Security",
	"Content-Security-Policy",
	"X-Frame-Options",
	"X-Content-Type-Options",
	"X-XSS-Protection",
	"Referrer-Policy",
	"Permissions-Policy",
	"Cross-Origin-Opener-Policy",
	"Cross-Origin-Resource-Policy",
}

type Request struct {
	URL string `json:"url" jsonschema:"URL to check" validate:"required,token,http_url"`
}

type HeadersTool struct {
	client *http.Client
}

func New(client *http.Client) tool.Tool {
	return &HeadersTool{client: client}
}

func (t *HeadersTool) Name() string   { return ToolName }
func (t *HeadersTool) Binary() string { return "" }
func (t *HeadersTool) Preview() bool  { return false }

func (t *HeadersTool) Description() string {
	return "Check which HTTP security headers a URL returns."
}

func (t *HeadersTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, &mcpsdk.Tool{Name: ToolName, Description: t.Description()}, t.handle)
}

func (t *HeadersTool) handle(ctx context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	if err := security.Check(req); err != nil {
		return nil, mcp.ToolOutput{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodHead, req.URL, nil)
	if err != nil {
		return nil, mcp.ToolOutput{}, security.Invalid("url", "invalid url: %v", err)
	}
	httpReq.Header.Set("User-Agent", UserAgent)

	resp, _, err := security.Do(t.client, httpReq, 0)
	if err != nil {
		return nil, mcp.ToolOutput{}, fmt.Errorf("check headers: %w", err)
	}

	text := Report(resp.Header)
	return mcp.TextResult(text), mcp.ToolOutput{Command: "HEAD " + req.URL, Output: text}, nil
}

// Report renders one line per security header, marking missing ones.
func Report(h http.Header) string {
	lines := []string{"=== HTTP Security Headers Analysis ===", ""}
	for _, name := range SecurityHeaders {
		if value := h.Get(name); value != "" {
			lines = append(lines, fmt.Sprintf("✓ %s: %s", name, value))
		} else {
			lines = append(lines, fmt.Sprintf("✗ %s: MISSING", name))
		}
	}
	return strings.Join(lines, "\n")
}
