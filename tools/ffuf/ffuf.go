// Package ffuf fuzzes web paths and parameters with ffuf. The FUZZ keyword
// in the URL marks where wordlist entries are substituted.
package ffuf

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
	ToolName        = "do_ffuf"
	DefaultBinary   = "ffuf"
	DefaultWordlist = "/usr/share/wordlists/dirb/common.txt"
)

type Request struct {
	URL        string `json:"url" jsonschema:"Target URL containing the FUZZ keyword, e.g. https://example.com/FUZZ" validate:"required,token,http_url,contains=FUZZ"`
	Wordlist   string `json:"wordlist,omitempty" jsonschema:"Wordlist path on the server" validate:"omitempty,arg"`
	MatchCodes []int  `json:"match_codes,omitempty" jsonschema:"Only report these HTTP status codes" validate:"omitempty,dive,min=100,max=599"`
	Threads    *int   `json:"threads,omitempty" jsonschema:"Concurrent requests" validate:"omitempty,min=1,max=200"`
}

// BuildArgs returns -u <url> -w <wordlist> [-mc <codes>] [-t <threads>].
func BuildArgs(req Request) ([]string, error) {
	if err := security.Check(req); err != nil {
		return nil, err
	}

	wordlist := req.Wordlist
	if wordlist == "" {
		wordlist = DefaultWordlist
	}

	args := []string{"-u", req.URL, "-w", wordlist}
	if len(req.MatchCodes) > 0 {
		codes := make([]string, 0, len(req.MatchCodes))
		for _, code := range req.MatchCodes {
			codes = append(codes, strconv.Itoa(code))
		}
		args = append(args, "-mc", strings.Join(codes, ","))
	}
	if req.Threads != nil {
		args = append(args, "-t", strconv.Itoa(*req.Threads))
	}
	return args, nil
}

type FfufTool struct {
	binary   string
	executor tool.Executor
}

func New(binary string, executor tool.Executor) tool.Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &FfufTool{binary: binary, executor: executor}
}

func (t *FfufTool) Name() string   { return ToolName }
func (t *FfufTool) Binary() string { return t.binary }
func (t *FfufTool) Preview() bool  { return false }

func (t *FfufTool) Description() string {
	return "Fuzz web paths or parameters with ffuf, substituting wordlist entries for FUZZ in the URL."
}

func (t *FfufTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, &mcpsdk.Tool{Name: ToolName, Description: t.Description()}, t.handle)
}

func (t *FfufTool) handle(ctx context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	args, err := BuildArgs(req)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	return mcp.OutcomeResult(t.executor.Run(ctx, runner.Command{Name: t.binary, Args: args}))
}
