// Package mcptest connects an in-memory MCP client to a server for tests and
// provides a recording executor for tools that spawn processes.
package mcptest

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/R167/reconmcp/internal/runner"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Connect starts server on an in-memory transport and returns a connected
// client session that is closed when the test ends.
func Connect(t *testing.T, server *mcpsdk.Server) *mcpsdk.ClientSession {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := mcpsdk.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "mcptest", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}

	t.Cleanup(func() {
		session.Close()
		serverSession.Wait()
	})
	return session
}

// Call invokes a tool and reports whether the call failed, either as a
// protocol error or as an isError result, together with its text.
func Call(t *testing.T, session *mcpsdk.ClientSession, name string, args map[string]any) (text string, failed bool) {
	t.Helper()

	res, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return err.Error(), true
	}
	return Text(res), res.IsError
}

// Text concatenates every text block of res.
func Text(res *mcpsdk.CallToolResult) string {
	if res == nil {
		return ""
	}
	var parts []string
	for _, c := range res.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// Executor records every command and answers with Output, or with Err when
// it is set.
type Executor struct {
	Output string
	Err    error

	mu       sync.Mutex
	commands []runner.Command
}

func (e *Executor) Run(ctx context.Context, cmd runner.Command) runner.Outcome {
	e.mu.Lock()
	e.commands = append(e.commands, cmd)
	e.mu.Unlock()

	if e.Err != nil {
		return runner.Outcome{Command: cmd, Output: e.Output, ExitCode: 1, Err: e.Err}
	}
	return runner.Outcome{Command: cmd, Output: e.Output}
}

// Commands returns the commands run so far.
func (e *Executor) Commands() []runner.Command {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]runner.Command(nil), e.commands...)
}
