package arjun

import (
	"context"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/tool"
	"github.com/google/jsonschema-go/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName      = "do-arjun"
	DefaultBinary = "arjun"
)

type ArjunTool struct {
	binary string
}

func New(binary string) tool.Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ArjunTool{binary: binary}
}

func (t *ArjunTool) Name() string {
	return ToolName
}

func (t *ArjunTool) Description() string {
	return "Run Arjun to discover hidden HTTP parameters."
}

func (t *ArjunTool) Binary() string {
	return t.binary
}

func (t *ArjunTool) Preview() bool {
	return true
}

func (t *ArjunTool) Definition() *mcpsdk.Tool {
	one := 1.0
	methodEnum := make([]any, 0, len(methods))
	for _, m := range methods {
		methodEnum = append(methodEnum, string(m))
	}

	return &mcpsdk.Tool{
		Name:        ToolName,
		Description: t.Description(),
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"url": {
					Type:        "string",
					Format:      "uri",
					Description: "Target URL to scan for parameters",
				},
				"textFile": {
					Type:        "string",
					Description: "Path to a file containing multiple target URLs",
				},
				"wordlist": {
					Type:        "string",
					Description: "Path to a custom parameter wordlist",
				},
				"method": {
					Type:        "string",
					Enum:        methodEnum,
					Description: "HTTP method or injection point to test",
				},
				"rateLimit": {
					Type:        "integer",
					Minimum:     &one,
					Description: "Maximum requests per second",
				},
				"chunkSize": {
					Type:        "integer",
					Minimum:     &one,
					Description: "Number of parameters sent per request",
				},
			},
			Required:             []string{"url"},
			AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
		},
	}
}

func (t *ArjunTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, t.Definition(), t.handle)
}

func (t *ArjunTool) handle(_ context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	args, err := BuildArgs(req)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	return mcp.PreviewResult(runner.Command{Name: t.binary, Args: args})
}
