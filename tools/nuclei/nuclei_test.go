package nuclei

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/R167/reconmcp/internal/mcptest"
	"github.com/R167/reconmcp/internal/runner"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	"github.com/google/go-cmp/cmp"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{"url only", Request{URL: "https://example.com"}, []string{"-u", "https://example.com", "-silent"}},
		{"tags", Request{URL: "https://example.com", Tags: "cve,rce"}, []string{"-u", "https://example.com", "-silent", "-tags", "cve,rce"}},
		{
			name: "tags and severity",
			req:  Request{URL: "https://example.com", Tags: "wordpress", Severity: "high,critical"},
			want: []string{"-u", "https://example.com", "-silent", "-tags", "wordpress", "-severity", "high,critical"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildArgs(tt.req)
			if err != nil {
				t.Fatalf("BuildArgs() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildArgs_Errors(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		wantField string
	}{
		{"missing url", Request{}, "url"},
		{"url smuggles a flag", Request{URL: "https://example.com -o /tmp/x"}, "url"},
		{"tags with space", Request{URL: "https://example.com", Tags: "cve -t /tmp"}, "tags"},
		{"tags leading flag", Request{URL: "https://example.com", Tags: "-t"}, "tags"},
		{"unknown severity", Request{URL: "https://example.com", Severity: "high,severe"}, "severity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildArgs(tt.req)
			var validationErr *security.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("BuildArgs() error = %v, want *security.ValidationError", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", validationErr.Field, tt.wantField)
			}
		})
	}
}

func TestNucleiTool_Call(t *testing.T) {
	exec := &mcptest.Executor{Output: "[CVE-2021-0000] [http] [high] https://example.com\n"}
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "test", Version: "0.0.1"}, nil)
	New("", exec).Register(server, &tool.Env{Logger: zerolog.Nop()})
	session := mcptest.Connect(t, server)

	text, failed := mcptest.Call(t, session, ToolName, map[string]any{"url": "https://example.com", "severity": "high"})
	if failed {
		t.Fatalf("call failed: %s", text)
	}
	want := []runner.Command{{Name: "nuclei", Args: []string{"-u", "https://example.com", "-silent", "-severity", "high"}}}
	if diff := cmp.Diff(want, exec.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

const statsFixture = `{
  "tags": [
    {"name": "cve", "count": 2500},
    {"name": "panel", "count": 900},
    {"name": "", "count": 5},
    {"name": "wordpress", "count": 800}
  ],
  "authors": []
}`

func newTagsSession(t *testing.T, handler http.HandlerFunc) *mcpsdk.ClientSession {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "test", Version: "0.0.1"}, nil)
	NewTagsTool(srv.Client(), srv.URL+"/TEMPLATES-STATS.json").Register(server, &tool.Env{Logger: zerolog.Nop()})
	return mcptest.Connect(t, server)
}

func TestTagsTool_ListsTagsInOrder(t *testing.T) {
	session := newTagsSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statsFixture))
	})

	text, failed := mcptest.Call(t, session, TagsToolName, map[string]any{})
	if failed {
		t.Fatalf("call failed: %s", text)
	}
	want := "[\n  \"cve\",\n  \"panel\",\n  \"wordpress\"\n]"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestTagsTool_Limit(t *testing.T) {
	session := newTagsSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(statsFixture))
	})

	text, failed := mcptest.Call(t, session, TagsToolName, map[string]any{"limit": 1})
	if failed {
		t.Fatalf("call failed: %s", text)
	}
	if text != "[\n  \"cve\"\n]" {
		t.Errorf("text = %q, want only the first tag", text)
	}
}

func TestTagsTool_UpstreamFailure(t *testing.T) {
	session := newTagsSession(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})

	text, failed := mcptest.Call(t, session, TagsToolName, map[string]any{})
	if !failed {
		t.Fatalf("404 upstream should fail the call, got %q", text)
	}
	if !strings.Contains(text, "404") {
		t.Errorf("text = %q, want the upstream status", text)
	}
}

func TestTagsTool_Metadata(t *testing.T) {
	tl := NewTagsTool(http.DefaultClient, "")
	if tl.Binary() != "" {
		t.Errorf("Binary() = %q, in-process tools have no binary", tl.Binary())
	}
	if tl.(*TagsTool).statsURL != TemplateStatsURL {
		t.Errorf("statsURL = %q, want the default", tl.(*TagsTool).statsURL)
	}
}
