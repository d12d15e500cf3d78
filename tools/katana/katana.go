// Package katana crawls a web application with katana and lists the
// endpoints it finds.
package katana

import (
	"context"
	"strconv"
	"strings"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName      = "do_katana"
	DefaultBinary = "katana"
	DefaultDepth  = 2
)

type Request struct {
	URL               string   `json:"url" jsonschema:"Start URL for the crawl" validate:"required,token,http_url"`
	Depth             *int     `json:"depth,omitempty" jsonschema:"Maximum crawl depth (default 2)" validate:"omitempty,min=1,max=10"`
	JSCrawl           bool     `json:"js_crawl,omitempty" jsonschema:"Parse JavaScript files for endpoints"`
	ExcludeExtensions []string `json:"exclude_extensions,omitempty" jsonschema:"File extensions to skip, e.g. png, css" validate:"omitempty,dive,alphanum"`
}

// BuildArgs returns -u <url> -d <depth> -silent [-jc] [-ef <exts>].
func BuildArgs(req Request) ([]string, error) {
	if err := security.Check(req); err != nil {
		return nil, err
	}

	depth := DefaultDepth
	if req.Depth != nil {
		depth = *req.Depth
	}

	args := []string{"-u", req.URL, "-d", strconv.Itoa(depth), "-silent"}
	if req.JSCrawl {
		args = append(args, "-jc")
	}
	if len(req.ExcludeExtensions) > 0 {
		args = append(args, "-ef", strings.Join(req.ExcludeExtensions, ","))
	}
	return args, nil
}

type KatanaTool struct {
	binary   string
	executor tool.Executor
}

func New(binary string, executor tool.Executor) tool.Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &KatanaTool{binary: binary, executor: executor}
}

func (t *KatanaTool) Name() string   { return ToolName }
func (t *KatanaTool) Binary() string { return t.binary }
func (t *KatanaTool) Preview() bool  { return false }

func (t *KatanaTool) Description() string {
	return "Crawl a web application with katana and list discovered endpoints."
}

func (t *KatanaTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, &mcpsdk.Tool{Name: ToolName, Description: t.Description()}, t.handle)
}

func (t *KatanaTool) handle(ctx context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	args, err := BuildArgs(req)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	return mcp.OutcomeResult(t.executor.Run(ctx, runner.Command{Name: t.binary, Args: args}))
}
