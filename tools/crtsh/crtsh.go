// Package crtsh finds subdomains in certificate transparency logs through
// the crt.sh JSON API.
package crtsh

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName   = "do_crtsh"
	DefaultURL = "https://crt.sh/"
	maxLogSize = 50 * 1024 * 1024
)

type Request struct {
	Domain string `json:"domain" jsonschema:"Domain whose certificates to search" validate:"required,arg,max=253,fqdn"`
}

type entry struct {
	NameValue string `json:"name_value"`
}

type CrtshTool struct {
	client  *http.Client
	baseURL string
}

// New returns the crt.sh lookup tool. An empty baseURL selects DefaultURL.
func New(client *http.Client, baseURL string) tool.Tool {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &CrtshTool{client: client, baseURL: baseURL}
}

func (t *CrtshTool) Name() string   { return ToolName }
func (t *CrtshTool) Binary() string { return "" }
func (t *CrtshTool) Preview() bool  { return false }

func (t *CrtshTool) Description() string {
	return "Query crt.sh certificate transparency logs for subdomains of a domain."
}

func (t *CrtshTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, &mcpsdk.Tool{Name: ToolName, Description: t.Description()}, t.handle)
}

func (t *CrtshTool) handle(ctx context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	if err := security.Check(req); err != nil {
		return nil, mcp.ToolOutput{}, err
	}

	query := t.baseURL + "?" + url.Values{"q": {"%." + req.Domain}, "output": {"json"}}.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	_, body, err := security.Do(t.client, httpReq, maxLogSize)
	if err != nil {
		return nil, mcp.ToolOutput{}, fmt.Errorf("query crt.sh: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, mcp.ToolOutput{}, fmt.Errorf("decode crt.sh response: %w", err)
	}

	text := strings.Join(hostNames(entries), "\n")
	return mcp.TextResult(text), mcp.ToolOutput{Command: "GET " + query, Output: text}, nil
}

// hostNames returns the sorted, de-duplicated host names of entries with any
// wildcard prefix removed. A single entry may list several names, one per
// line.
func hostNames(entries []entry) []string {
	seen := make(map[string]struct{})
	for _, e := range entries {
		for _, name := range strings.Split(e.NameValue, "\n") {
			name = strings.TrimPrefix(strings.TrimSpace(name), "*.")
			if name != "" {
				seen[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
