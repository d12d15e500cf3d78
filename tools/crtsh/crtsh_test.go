package crtsh

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/R167/reconmcp/internal/mcptest"
	"github.com/R167/reconmcp/internal/tool"
	"github.com/google/go-cmp/cmp"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

func TestHostNames(t *testing.T) {
	entries := []entry{
		{NameValue: "*.example.com"},
		{NameValue: "www.example.com\nmail.example.com"},
		{NameValue: "example.com"},
		{NameValue: "www.example.com"},
		{NameValue: ""},
	}

	want := []string{"example.com", "mail.example.com", "www.example.com"}
	if diff := cmp.Diff(want, hostNames(entries)); diff != "" {
		t.Errorf("hostNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestCrtshTool_Call(t *testing.T) {
	var gotQuery, gotOutput string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotOutput = r.URL.Query().Get("output")
		w.Write([]byte(`[{"name_value":"api.example.com"},{"name_value":"*.example.com"}]`))
	}))
	defer srv.Close()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "test", Version: "0.0.1"}, nil)
	New(srv.Client(), srv.URL+"/").Register(server, &tool.Env{Logger: zerolog.Nop()})
	session := mcptest.Connect(t, server)

	text, failed := mcptest.Call(t, session, ToolName, map[string]any{"domain": "example.com"})
	if failed {
		t.Fatalf("call failed: %s", text)
	}
	if gotQuery != "%.example.com" || gotOutput != "json" {
		t.Errorf("query = q:%q output:%q, want q:%%.example.com output:json", gotQuery, gotOutput)
	}
	if text != "api.example.com\nexample.com" {
		t.Errorf("text = %q", text)
	}
}

func TestCrtshTool_BadResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>busy</html>"))
	}))
	defer srv.Close()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "test", Version: "0.0.1"}, nil)
	New(srv.Client(), srv.URL+"/").Register(server, &tool.Env{Logger: zerolog.Nop()})
	session := mcptest.Connect(t, server)

	text, failed := mcptest.Call(t, session, ToolName, map[string]any{"domain": "example.com"})
	if !failed {
		t.Fatalf("non-JSON response should fail, got %q", text)
	}
	if !strings.Contains(text, "decode crt.sh response") {
		t.Errorf("text = %q, want a decode error", text)
	}
}
