package mcp

// ToolOutput is the structured result attached to every successful call.
type ToolOutput struct {
	Command  string `json:"command"`
	Output   string `json:"output,omitempty"`
	ExitCode int    `json:"exit_code"`
	Preview  bool   `json:"preview,omitempty"`
}
