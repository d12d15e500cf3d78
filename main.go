package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/R167/reconmcp/internal/cli"
	"github.com/R167/reconmcp/internal/discovery"
	"github.com/R167/reconmcp/internal/health"
	"github.com/R167/reconmcp/internal/logging"
	"github.com/R167/reconmcp/internal/mcp"
	"github.com/hashicorp/mdns"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.ShowUsage()
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "❌ %v\n\n", err)
		cli.ShowUsage()
		os.Exit(2)
	}

	logger := logging.New(cfg.VerboseLogs, cfg.LogFormat, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *cli.Config, logger zerolog.Logger) error {
	registry := buildRegistry(cfg, logger)
	opts := cfg.Options()
	server := mcp.NewServer(registry, opts, logger)

	// Everything that can fail is set up before the first goroutine starts.
	var listeners []net.Listener
	closeListeners := func() {
		for _, lis := range listeners {
			lis.Close()
		}
	}
	listen := func(addr string) (net.Listener, error) {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			closeListeners()
			return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
		}
		listeners = append(listeners, lis)
		return lis, nil
	}

	var healthLis, httpLis net.Listener
	var err error
	if cfg.HealthAddr != "" {
		if healthLis, err = listen(cfg.HealthAddr); err != nil {
			return err
		}
	}
	if cfg.Transport == cli.TransportHTTP {
		if httpLis, err = listen(cfg.Addr); err != nil {
			return err
		}
	}

	var service *mdns.MDNSService
	if cfg.Advertise && httpLis != nil {
		if service, err = newAdvertisement(httpLis, opts, registry); err != nil {
			closeListeners()
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if healthLis != nil {
		checker := health.NewChecker(registry.Tools(), cfg.HealthInterval, logger)
		g.Go(func() error {
			return checker.Serve(ctx, healthLis)
		})
	}

	switch cfg.Transport {
	case cli.TransportStdio:
		logger.Info().Int("tools", len(registry.Tools())).Msg("serving MCP over stdio")
		g.Go(func() error {
			// The client closing stdin ends the whole process.
			defer cancel()
			return mcp.ServeStdio(ctx, server)
		})

	case cli.TransportHTTP:
		g.Go(func() error {
			return mcp.ServeHTTP(ctx, httpLis, server, opts, logger)
		})
		if service != nil {
			g.Go(func() error {
				return discovery.Advertise(ctx, service, logger)
			})
		}
	}

	return g.Wait()
}

func newAdvertisement(lis net.Listener, opts mcp.Options, registry *mcp.ToolRegistry) (*mdns.MDNSService, error) {
	port, err := discovery.PortOf(lis.Addr())
	if err != nil {
		return nil, err
	}

	var names []string
	for _, t := range registry.Tools() {
		names = append(names, t.Name())
	}
	return discovery.NewService(discovery.Advertisement{
		Port:     port,
		Endpoint: opts.Endpoint(),
		Tools:    names,
		Version:  mcp.ServerVersion,
	})
}
