package arjun

import (
	"errors"
	"strings"
	"testing"

	"github.com/R167/reconmcp/internal/mcptest"
	"github.com/R167/reconmcp/internal/security"
	"github.com/R167/reconmcp/internal/tool"
	"github.com/google/go-cmp/cmp"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

func intPtr(n int) *int {
	return &n
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{
			name: "url only",
			req:  Request{URL: "http://example.com"},
			want: []string{"-u", "http://example.com"},
		},
		{
			name: "method and rate limit",
			req:  Request{URL: "http://example.com", Method: MethodPOST, RateLimit: intPtr(5)},
			want: []string{"-u", "http://example.com", "-m", "POST", "--rate-limit", "5"},
		},
		{
			name: "every option in fixed order",
			req: Request{
				ChunkSize:   intPtr(250),
				RateLimit:   intPtr(10),
				Method:      MethodJSON,
				Wordlist:    "/usr/share/arjun/large.txt",
				URLListFile: "targets.txt",
				URL:         "https://example.com/api",
			},
			want: []string{
				"-u", "https://example.com/api",
				"-f", "targets.txt",
				"-w", "/usr/share/arjun/large.txt",
				"-m", "JSON",
				"--rate-limit", "10",
				"--chunk-size", "250",
			},
		},
		{
			name: "headers method",
			req:  Request{URL: "https://example.com", Method: MethodHeaders},
			want: []string{"-u", "https://example.com", "-m", "HEADERS"},
		},
		{
			name: "chunk size without rate limit",
			req:  Request{URL: "https://example.com", ChunkSize: intPtr(1)},
			want: []string{"-u", "https://example.com", "--chunk-size", "1"},
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
		{"relative url", Request{URL: "example.com/path"}, "url"},
		{"unsupported scheme", Request{URL: "ftp://example.com"}, "url"},
		{"url option injection", Request{URL: "--stable"}, "url"},
		{"unknown method", Request{URL: "http://example.com", Method: "PUT"}, "method"},
		{"zero rate limit", Request{URL: "http://example.com", RateLimit: intPtr(0)}, "rateLimit"},
		{"negative rate limit", Request{URL: "http://example.com", RateLimit: intPtr(-3)}, "rateLimit"},
		{"zero chunk size", Request{URL: "http://example.com", ChunkSize: intPtr(0)}, "chunkSize"},
		{"wordlist option injection", Request{URL: "http://example.com", Wordlist: "-oJ out.json"}, "wordlist"},
		{"text file with newline", Request{URL: "http://example.com", URLListFile: "a.txt\nb.txt"}, "textFile"},
		{"url smuggles a flag", Request{URL: "http://example.com/a -w /etc/shadow"}, "url"},
		{"url smuggles a tab", Request{URL: "http://example.com/a\t-w"}, "url"},
		{"wordlist with space", Request{URL: "http://example.com", Wordlist: "words.txt -o out"}, "wordlist"},
		{"text file with space", Request{URL: "http://example.com", URLListFile: "my targets.txt"}, "textFile"},
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

func TestBuildArgs_Deterministic(t *testing.T) {
	req := Request{URL: "http://example.com", Method: MethodGET, RateLimit: intPtr(3), ChunkSize: intPtr(500)}

	first, _ := BuildArgs(req)
	second, _ := BuildArgs(req)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("BuildArgs() not deterministic (-first +second):\n%s", diff)
	}
}

func TestArjunTool_Preview(t *testing.T) {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "test", Version: "0.0.1"}, nil)
	New("").Register(server, &tool.Env{Logger: zerolog.Nop()})
	session := mcptest.Connect(t, server)

	text, failed := mcptest.Call(t, session, ToolName, map[string]any{
		"url":       "http://example.com",
		"method":    "POST",
		"rateLimit": 5,
	})
	if failed {
		t.Fatalf("call failed: %s", text)
	}

	if !strings.HasPrefix(text, "Command: arjun ") {
		t.Errorf("text = %q, want the Command: arjun prefix", text)
	}
	u := strings.Index(text, "-u http://example.com")
	m := strings.Index(text, "-m POST")
	r := strings.Index(text, "--rate-limit 5")
	if u < 0 || m < 0 || r < 0 || !(u < m && m < r) {
		t.Errorf("text = %q, want -u, -m and --rate-limit in that order", text)
	}
	for _, absent := range []string{"-f", "-w", "--chunk-size"} {
		if strings.Contains(text, " "+absent+" ") || strings.HasSuffix(text, " "+absent) {
			t.Errorf("text = %q should not contain %s", text, absent)
		}
	}
}

func TestArjunTool_RejectsInvalidURL(t *testing.T) {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "test", Version: "0.0.1"}, nil)
	New("").Register(server, &tool.Env{Logger: zerolog.Nop()})
	session := mcptest.Connect(t, server)

	text, failed := mcptest.Call(t, session, ToolName, map[string]any{"url": "not a url"})
	if !failed {
		t.Errorf("invalid url should fail, got %q", text)
	}
}

func TestArjunTool_RejectsSmuggledFlags(t *testing.T) {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "test", Version: "0.0.1"}, nil)
	New("").Register(server, &tool.Env{Logger: zerolog.Nop()})
	session := mcptest.Connect(t, server)

	text, failed := mcptest.Call(t, session, ToolName, map[string]any{
		"url": "http://example.com/a -w /etc/shadow",
	})
	if !failed {
		t.Fatalf("url with embedded flags should fail, got %q", text)
	}
	if strings.Contains(text, "Command:") {
		t.Errorf("text = %q, no command line may be rendered", text)
	}
	if !strings.Contains(text, "whitespace") {
		t.Errorf("text = %q, want the whitespace reason", text)
	}
}

func TestArjunTool_PreviewQuotesQuery(t *testing.T) {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "test", Version: "0.0.1"}, nil)
	New("").Register(server, &tool.Env{Logger: zerolog.Nop()})
	session := mcptest.Connect(t, server)

	text, failed := mcptest.Call(t, session, ToolName, map[string]any{
		"url": "http://example.com/search?q=1&debug=$(id)",
	})
	if failed {
		t.Fatalf("call failed: %s", text)
	}
	if want := "Command: arjun -u 'http://example.com/search?q=1&debug=$(id)'"; text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestArjunTool_Metadata(t *testing.T) {
	tl := New("")
	if !tl.Preview() {
		t.Error("arjun should be a preview tool")
	}
	if tl.Binary() != "arjun" {
		t.Errorf("Binary() = %q, want arjun", tl.Binary())
	}
}
