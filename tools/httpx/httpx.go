package httpx

import (
	"context"
	"strconv"
	"strings"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	"github.com/google/jsonschema-go/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName      = "httpx"
	DefaultBinary = "httpx"
)

type Request struct {
	Targets []string `json:"target" validate:"required,min=1,dive,token,excludesall=0x2C"`
	Ports   []int    `json:"ports,omitempty" validate:"omitempty,dive,min=1,max=65535"`
	// Probes are httpx probe flags such as "title" or "-status-code".
	Probes []string `json:"probes,omitempty" validate:"omitempty,dive,flagname"`
}

// BuildArgs translates req into the httpx argument vector:
// -u <targets> -silent [-p <ports>] [-<probe>...].
func BuildArgs(req Request) ([]string, error) {
	if err := security.Check(req); err != nil {
		return nil, err
	}

	args := []string{"-u", strings.Join(req.Targets, ","), "-silent"}

	if len(req.Ports) > 0 {
		ports := make([]string, 0, len(req.Ports))
		for _, port := range req.Ports {
			ports = append(ports, strconv.Itoa(port))
		}
		args = append(args, "-p", strings.Join(ports, ","))
	}

	for _, probe := range req.Probes {
		args = append(args, "-"+strings.TrimPrefix(probe, "-"))
	}

	return args, nil
}

// HttpxTool renders httpx command lines without running them.
type HttpxTool struct {
	binary string
}

// New returns the httpx preview tool. An empty binary selects DefaultBinary.
func New(binary string) tool.Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &HttpxTool{binary: binary}
}

func (t *HttpxTool) Name() string   { return ToolName }
func (t *HttpxTool) Binary() string { return t.binary }
func (t *HttpxTool) Preview() bool  { return true }

func (t *HttpxTool) Description() string {
	return "Build an httpx command for probing HTTP services on targets."
}

func (t *HttpxTool) Definition() *mcpsdk.Tool {
	minPort, maxPort := 1.0, 65535.0
	return &mcpsdk.Tool{
		Name:        ToolName,
		Description: t.Description(),
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"target": {
					Type:        "array",
					Items:       &jsonschema.Schema{Type: "string"},
					Description: "Domains or URLs to scan",
				},
				"ports": {
					Type:        "array",
					Items:       &jsonschema.Schema{Type: "integer", Minimum: &minPort, Maximum: &maxPort},
					Description: "Port numbers to probe",
				},
				"probes": {
					Type:        "array",
					Items:       &jsonschema.Schema{Type: "string"},
					Description: "Probe flags, e.g. status-code, title, web-server",
				},
			},
			Required:             []string{"target"},
			AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
		},
	}
}

func (t *HttpxTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, t.Definition(), t.handle)
}

func (t *HttpxTool) handle(_ context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	args, err := BuildArgs(req)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	return mcp.PreviewResult(runner.Command{Name: t.binary, Args: args})
}
