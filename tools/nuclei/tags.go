package nuclei

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/R167/reconmcp/internal/mcp"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	TagsToolName = "get_nuclei_tags"
	// TemplateStatsURL publishes per-tag template counts, most used first.
	TemplateStatsURL = "https://raw.githubusercontent.com/projectdiscovery/nuclei-templates/main/TEMPLATES-STATS.json"
	defaultTagLimit  = 100
	maxStatsSize     = 5 * 1024 * 1024
)

type TagsRequest struct {
	Limit *int `json:"limit,omitempty" jsonschema:"Number of tags to return (default 100)" validate:"omitempty,min=1,max=5000"`
}

type templateStats struct {
	Tags []struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	} `json:"tags"`
}

// TagsTool lists the most used nuclei template tags so callers can pick
// values for do_nuclei.
type TagsTool struct {
	client   *http.Client
	statsURL string
}

// NewTagsTool returns the tag lister. An empty statsURL selects
// TemplateStatsURL.
func NewTagsTool(client *http.Client, statsURL string) tool.Tool {
	if statsURL == "" {
		statsURL = TemplateStatsURL
	}
	return &TagsTool{client: client, statsURL: statsURL}
}

func (t *TagsTool) Name() string   { return TagsToolName }
func (t *TagsTool) Binary() string { return "" }
func (t *TagsTool) Preview() bool  { return false }

func (t *TagsTool) Description() string {
	return "List the most used nuclei template tags as a JSON array."
}

func (t *TagsTool) Register(server *mcpsdk.Server, env *tool.Env) {
	mcp.AddTool[TagsRequest](server, env, &mcpsdk.Tool{Name: TagsToolName, Description: t.Description()}, t.handle)
}

func (t *TagsTool) handle(ctx context.Context, req TagsRequest) (*mcpsdk.CallToolResult, mcp.ToolOutput, error) {
	if err := security.Check(req); err != nil {
		return nil, mcp.ToolOutput{}, err
	}
	limit := defaultTagLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	tags, err := t.fetch(ctx, limit)
	if err != nil {
		return nil, mcp.ToolOutput{}, err
	}

	out, err := json.MarshalIndent(tags, "", "  ")
	if err != nil {
		return nil, mcp.ToolOutput{}, fmt.Errorf("encode tags: %w", err)
	}
	text := string(out)
	return mcp.TextResult(text), mcp.ToolOutput{Command: "GET " + t.statsURL, Output: text}, nil
}

func (t *TagsTool) fetch(ctx context.Context, limit int) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.statsURL, nil)
	if err != nil {
		return nil, err
	}
	_, body, err := security.Do(t.client, req, maxStatsSize)
	if err != nil {
		return nil, fmt.Errorf("fetch nuclei template stats: %w", err)
	}

	var stats templateStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("decode nuclei template stats: %w", err)
	}

	tags := make([]string, 0, min(limit, len(stats.Tags)))
	for _, tag := range stats.Tags {
		if len(tags) == limit {
			break
		}
		if tag.Name != "" {
			tags = append(tags, tag.Name)
		}
	}
	return tags, nil
}
