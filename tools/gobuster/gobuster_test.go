package gobuster

import (
	"errors"
	"testing"

	"github.com/R167/reconmcp/internal/security"
	"github.com/google/go-cmp/cmp"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{"dir default", Request{URL: "https://example.com"}, []string{"dir", "-u", "https://example.com", "-w", DefaultWordlist}},
		{"vhost", Request{Mode: ModeVhost, URL: "https://example.com", Wordlist: "vhosts.txt"}, []string{"vhost", "-u", "https://example.com", "-w", "vhosts.txt"}},
		{"dns", Request{Mode: ModeDNS, Domain: "example.com"}, []string{"dns", "-d", "example.com", "-w", DefaultWordlist}},
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
		{"dir without url", Request{}, "url"},
		{"dns without domain", Request{Mode: ModeDNS, URL: "https://example.com"}, "domain"},
		{"unknown mode", Request{Mode: "fuzz", URL: "https://example.com"}, "mode"},
		{"url smuggles a flag", Request{URL: "https://example.com -o /tmp/x"}, "url"},
		{"wordlist flag", Request{URL: "https://example.com", Wordlist: "--output=/tmp/x"}, "wordlist"},
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
