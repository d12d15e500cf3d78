package main

import (
	"github.com/R167/reconmcp/internal/cli"
	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/tools"
	"github.com/rs/zerolog"
)

// buildRegistry registers every tool with the configured binaries and
// reports overrides that cannot apply and executing tools whose binary is
// not installed.
func buildRegistry(cfg *cli.Config, logger zerolog.Logger) *mcp.ToolRegistry {
	registry := mcp.NewToolRegistry()
	for _, t := range tools.AllTools(tools.Config{
		Binaries:   cfg.Binaries,
		Executor:   runner.NewExecutor(logger),
		HTTPClient: security.NewHTTPClient(security.DefaultHTTPClientConfig()),
	}) {
		registry.Register(t)
	}

	for name, bin := range cfg.Binaries {
		t, ok := registry.Get(name)
		switch {
		case !ok:
			logger.Warn().Str("tool", name).Str("binary", bin).Msg("binary override for unknown tool ignored")
		case t.Binary() == "":
			logger.Warn().Str("tool", name).Str("binary", bin).Msg("binary override for in-process tool ignored")
		}
	}

	for _, t := range registry.Tools() {
		if t.Preview() || t.Binary() == "" {
			continue
		}
		if _, err := runner.Resolve(t.Binary()); err != nil {
			logger.Warn().Err(err).Str("tool", t.Name()).Msg("tool binary unavailable; calls will fail until it is installed")
		}
	}
	return registry
}
