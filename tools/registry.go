package tools

import (
	"net/http"

	"github.com/R167/reconmcp/internal/tool"
	"github.com/R167/reconmcp/tools/amass"
	"github.com/R167/reconmcp/tools/arjun"
	"github.com/R167/reconmcp/tools/crtsh"
	"github.com/R167/reconmcp/tools/ffuf"
	"github.com/R167/reconmcp/tools/gobuster"
	"github.com/R167/reconmcp/tools/headers"
	"github.com/R167/reconmcp/tools/httpx"
	"github.com/R167/reconmcp/tools/katana"
	"github.com/R167/reconmcp/tools/masscan"
	"github.com/R167/reconmcp/tools/nuclei"
	"github.com/R167/reconmcp/tools/sslscan"
	"github.com/R167/reconmcp/tools/subfinder"
	"github.com/R167/reconmcp/tools/waybackurls"
	"github.com/R167/reconmcp/tools/wpscan"
)

// Config carries the dependencies shared by the tool constructors.
type Config struct {
	// Binaries maps a tool name to an alternate executable name; tools
	// missing from the map use their default binary.
	Binaries map[string]string
	Executor tool.Executor
	// HTTPClient serves the in-process tools.
	HTTPClient *http.Client
}

// AllTools builds every tool in registration order.
func AllTools(cfg Config) []tool.Tool {
	bin := func(name string) string { return cfg.Binaries[name] }

	return []tool.Tool{
		amass.New(bin(amass.ToolName), cfg.Executor),
		arjun.New(bin(arjun.ToolName)),
		httpx.New(bin(httpx.ToolName)),
		subfinder.New(bin(subfinder.ToolName), cfg.Executor),
		sslscan.New(bin(sslscan.ToolName), cfg.Executor),
		waybackurls.New(bin(waybackurls.ToolName), cfg.Executor),
		nuclei.New(bin(nuclei.ToolName), cfg.Executor),
		nuclei.NewTagsTool(cfg.HTTPClient, ""),
		katana.New(bin(katana.ToolName), cfg.Executor),
		masscan.New(bin(masscan.ToolName), cfg.Executor),
		ffuf.New(bin(ffuf.ToolName), cfg.Executor),
		gobuster.New(bin(gobuster.ToolName), cfg.Executor),
		wpscan.New(bin(wpscan.ToolName), cfg.Executor),
		crtsh.New(cfg.HTTPClient, ""),
		headers.New(cfg.HTTPClient),
	}
}
