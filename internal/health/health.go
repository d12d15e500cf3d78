// Package health serves the standard gRPC health protocol for the MCP
// server. Each tool is reported as its own service: preview tools are always
// SERVING, executing tools only while their binary resolves on PATH. The
// statuses are re-evaluated on a fixed interval while the server runs.
package health

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/tool"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// DefaultInterval is how often binaries are looked up again while serving.
const DefaultInterval = 30 * time.Second

// Checker owns the health status of every registered tool.
type Checker struct {
	tools    []tool.Tool
	server   *health.Server
	logger   zerolog.Logger
	interval time.Duration

	mu       sync.Mutex
	lookPath func(string) (string, error)
	status   map[string]healthpb.HealthCheckResponse_ServingStatus
}

// NewChecker creates a checker that refreshes every interval while serving.
// A non-positive interval selects DefaultInterval.
func NewChecker(tools []tool.Tool, interval time.Duration, logger zerolog.Logger) *Checker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Checker{
		tools:    tools,
		server:   health.NewServer(),
		logger:   logger.With().Str("component", "health").Logger(),
		interval: interval,
		lookPath: runner.Resolve,
		status:   make(map[string]healthpb.HealthCheckResponse_ServingStatus),
	}
}

// Refresh re-evaluates every tool and publishes the result.
func (c *Checker) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.server.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	for _, t := range c.tools {
		status := c.check(t)
		if prev, ok := c.status[t.Name()]; !ok || prev != status {
			c.logger.Info().
				Str("tool", t.Name()).
				Str("binary", t.Binary()).
				Str("status", status.String()).
				Msg("tool health changed")
		}
		c.status[t.Name()] = status
		c.server.SetServingStatus(t.Name(), status)
	}
}

func (c *Checker) check(t tool.Tool) healthpb.HealthCheckResponse_ServingStatus {
	if t.Preview() || t.Binary() == "" {
		return healthpb.HealthCheckResponse_SERVING
	}
	if _, err := c.lookPath(t.Binary()); err != nil {
		c.logger.Debug().Err(err).Str("tool", t.Name()).Msg("binary not available")
		return healthpb.HealthCheckResponse_NOT_SERVING
	}
	return healthpb.HealthCheckResponse_SERVING
}

// Status returns the last published status for a tool.
func (c *Checker) Status(name string) healthpb.HealthCheckResponse_ServingStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	status, ok := c.status[name]
	if !ok {
		return healthpb.HealthCheckResponse_SERVICE_UNKNOWN
	}
	return status
}

// Register adds the health and reflection services to server.
func (c *Checker) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, c.server)
	reflection.Register(server)
}

// Serve refreshes the statuses, serves gRPC on lis and keeps refreshing
// every interval until ctx is done.
func (c *Checker) Serve(ctx context.Context, lis net.Listener) error {
	c.Refresh()

	server := grpc.NewServer()
	c.Register(server)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(lis)
	}()
	c.logger.Info().
		Str("addr", lis.Addr().String()).
		Dur("interval", c.interval).
		Msg("health server listening")

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Refresh()
		case <-ctx.Done():
			c.server.Shutdown()
			server.GracefulStop()
			<-errCh
			return nil
		case err := <-errCh:
			if errors.Is(err, grpc.ErrServerStopped) {
				return nil
			}
			return fmt.Errorf("health server: %w", err)
		}
	}
}
