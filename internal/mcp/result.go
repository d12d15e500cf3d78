package mcp

import (
	"github.com/R167/reconmcp/internal/runner"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// PreviewPrefix starts the text of every preview result.
const PreviewPrefix = "Command: "

// TextResult wraps text in a single text content block.
func TextResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: text},
		},
	}
}

// OutcomeResult maps a process outcome onto a tool result. Any failure is
// returned as an error so the caller never sees a success-shaped result for
// a failed run.
func OutcomeResult(outcome runner.Outcome) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if !outcome.OK() {
		return nil, ToolOutput{}, outcome.Err
	}

	return TextResult(outcome.Output), ToolOutput{
		Command:  outcome.Command.String(),
		Output:   outcome.Output,
		ExitCode: outcome.ExitCode,
	}, nil
}

// PreviewResult reports the command line a preview tool would run. Every
// word is shell-quoted so the line can be pasted into a shell as is.
func PreviewResult(cmd runner.Command) (*mcpsdk.CallToolResult, ToolOutput, error) {
	line := cmd.ShellString()
	return TextResult(PreviewPrefix + line), ToolOutput{
		Command: line,
		Preview: true,
	}, nil
}
