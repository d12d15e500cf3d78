package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/R167/reconmcp/internal/tool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

const (
	ServerName    = "reconmcp"
	ServerVersion = "1.0.0"

	shutdownTimeout = 5 * time.Second
)

// Options configures how tools are exposed.
type Options struct {
	// BasePath prefixes the HTTP route; the endpoint is BasePath + "/mcp".
	BasePath string
	// VerboseLogs enables diagnostic logging of every call.
	VerboseLogs bool
	// MaxDuration is a soft execution deadline per call.
	MaxDuration time.Duration
	// DisableStreaming answers HTTP calls with plain JSON instead of SSE streams.
	DisableStreaming bool
}

// Endpoint is the HTTP path the MCP handler is mounted on.
func (o Options) Endpoint() string {
	return strings.TrimRight(o.BasePath, "/") + "/mcp"
}

// Env builds the per-handler environment.
func (o Options) Env(logger zerolog.Logger) *tool.Env {
	return &tool.Env{
		Logger:      logger,
		VerboseLogs: o.VerboseLogs,
		MaxDuration: o.MaxDuration,
	}
}

type ToolRegistry struct {
	tools map[string]tool.Tool
	order []string
}

func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]tool.Tool),
	}
}

// Register adds t, replacing any earlier tool with the same name.
func (r *ToolRegistry) Register(t tool.Tool) {
	if _, exists := r.tools[t.Name()]; !exists {
		r.order = append(r.order, t.Name())
	}
	r.tools[t.Name()] = t
}

func (r *ToolRegistry) Get(name string) (tool.Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Tools returns the registered tools in registration order.
func (r *ToolRegistry) Tools() []tool.Tool {
	out := make([]tool.Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// NewServer creates an MCP server with every registered tool added.
func NewServer(registry *ToolRegistry, opts Options, logger zerolog.Logger) *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, nil)

	env := opts.Env(logger)
	for _, t := range registry.Tools() {
		t.Register(server, env)
		logger.Debug().Str("tool", t.Name()).Bool("preview", t.Preview()).Msg("registered tool")
	}

	return server
}

// ServeStdio runs server over stdin/stdout until the client disconnects or
// ctx is done.
func ServeStdio(ctx context.Context, server *mcpsdk.Server) error {
	err := server.Run(ctx, &mcpsdk.StdioTransport{})
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

// ServeHTTP serves the streamable HTTP transport on lis until ctx is done,
// then shuts down gracefully.
func ServeHTTP(ctx context.Context, lis net.Listener, server *mcpsdk.Server, opts Options, logger zerolog.Logger) error {
	srv := &http.Server{
		Handler:           HTTPHandler(server, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()
	logger.Info().
		Str("addr", lis.Addr().String()).
		Str("endpoint", opts.Endpoint()).
		Bool("streaming", !opts.DisableStreaming).
		Msg("MCP HTTP server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}

// HTTPHandler mounts the streamable HTTP transport at opts.Endpoint().
func HTTPHandler(server *mcpsdk.Server, opts Options) http.Handler {
	handler := mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
		return server
	}, &mcpsdk.StreamableHTTPOptions{
		JSONResponse: opts.DisableStreaming,
	})

	mux := http.NewServeMux()
	mux.Handle(opts.Endpoint(), handler)
	return mux
}
