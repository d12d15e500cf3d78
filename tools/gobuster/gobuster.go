// Package gobuster brute-forces directories, DNS names and virtual hosts
// with gobuster.
package gobuster

import (
	"context"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolName        = "do_gobuster"
	DefaultBinary   = "gobuster"
	DefaultWordlist = "/usr/share/wordlists/dirb/common.txt"
)

// Mode is the gobuster subcommand.
type Mode string

const (
	ModeDir   Mode = "dir"
	ModeDNS   Mode = "dns"
	ModeVhost Mode = "vhost"
)

type Request struct {
	Mode     Mode   `json:"mode,omitempty" jsonschema:"dir (default), dns or vhost" validate:"omitempty,oneof=dir dns vhost"`
	URL      string `json:"url,omitempty" jsonschema:"Target URL for dir and vhost modes" validate:"omitempty,token,http_url"`
	Domain   string `json:"domain,omitempty" jsonschema:"Target domain for dns mode" validate:"omitempty,arg,max=253,fqdn"`
	Wordlist string `json:"wordlist,omitempty" jsonschema:"Wordlist path on the server" validate:"omitempty,arg"`
}

// BuildArgs returns <mode> -u <url> -w <wordlist> for dir and vhost, and
// dns -d <domain> -w <wordlist> for dns.
func BuildArgs(req Request) ([]string, error) {
	if err := security.Check(req); err != nil {
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeDir
	}
	wordlist := req.Wordlist
	if wordlist == "" {
		wordlist = DefaultWordlist
	}

	if mode == ModeDNS {
		if req.Domain == "" {
			return nil, security.Invalid("domain", "domain is required for dns mode")
		}
		return []string{string(mode), "-d", req.Domain, "-w", wordlist}, nil
	}

	if req.URL == "" {
		return nil, security.Invalid("url", "url is required for %s mode", mode)
	}
	return []string{string(mode), "-u", req.URL, "-w", wordlist}, nil
}

type GobusterTool struct {
	binary   string
	executor tool.Executor
}

func New(binary string, executor tool.Executor) tool.Tool {
	if binary == "" {
		binary = DefaultBinary
	}
	return &GobusterTool{binary: binary, executor: executor}
}

func (t *GobusterTool) Name() string   { return ToolName }
func (t *GobusterTool) Binary() string { return t.binary }
func (t *GobusterTool) Preview() bool  { return false }

func (t *GobusterTool) Description() string {
	return "Brute-force directories, DNS subdomains or virtual hosts with gobuster."
}

func (t *GobusterTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[Request](server, env, &mcpsdk.Tool{Name: ToolName, Description: t.Description()}, t.handle)
}

func (t *GobusterTool) handle(ctx context.Context, req Request) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	args, err := BuildArgs(req)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	return mcp.OutcomeResult(t.executor.Run(ctx, runner.Command{Name: t.binary, Args: args}))
}
