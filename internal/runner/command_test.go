package runner

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCommand_String(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{Name: "amass"}, "amass"},
		{Command{Name: "amass", Args: []string{"enum", "-d", "example.com"}}, "amass enum -d example.com"},
		{Command{Name: "arjun", Args: []string{"-u", "http://example.com"}}, "arjun -u http://example.com"},
	}

	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestResolve_RejectsPathSeparators(t *testing.T) {
	for _, name := range []string{"../bin/sh", "/bin/sh", `..\evil`, "./amass"} {
		if _, err := Resolve(name); err == nil {
			t.Errorf("Resolve(%q) should reject path separators", name)
		}
	}
}

func TestResolve_RejectsEmpty(t *testing.T) {
	for _, name := range []string{"", "   "} {
		if _, err := Resolve(name); err == nil {
			t.Errorf("Resolve(%q) should reject empty names", name)
		}
	}
}

func TestResolve_FindsStub(t *testing.T) {
	installStub(t, "recon-stub-resolve", "exit 0")

	path, err := Resolve("recon-stub-resolve")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !strings.HasSuffix(path, "recon-stub-resolve") {
		t.Errorf("Resolve() = %q, want path ending in the stub name", path)
	}
}

func TestExitError_Unwrap(t *testing.T) {
	cause := errors.New("deadline")
	err := &ExitError{Name: "amass", Code: -1, Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("ExitError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "stopped") {
		t.Errorf("Error() = %q, should say the process was stopped", err.Error())
	}
}

func TestExitError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "plain exit",
			err:  &ExitError{Name: "amass", Code: 3, Output: "boom"},
			want: "amass exited with code 3. Output: boom",
		},
		{
			name: "signal",
			err:  &ExitError{Name: "amass", Code: 137, Signal: "SIGKILL"},
			want: "amass was killed by signal SIGKILL with code 137. Output: (no output)",
		},
		{
			name: "cancelled",
			err:  &ExitError{Name: "amass", Code: 137, Signal: "SIGKILL", Cause: context.DeadlineExceeded, Output: "partial"},
			want: "amass was stopped (context deadline exceeded) by signal SIGKILL with code 137. Output: partial",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_ShellString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{Name: "arjun", Args: []string{"-u", "http://example.com"}}, "arjun -u http://example.com"},
		{Command{Name: "arjun", Args: []string{"-u", "http://example.com/?a=1&b=2"}}, "arjun -u 'http://example.com/?a=1&b=2'"},
		{Command{Name: "amass", Args: []string{"intel", "-org", "Example Inc"}}, "amass intel -org 'Example Inc'"},
	}

	for _, tt := range tests {
		if got := tt.cmd.ShellString(); got != tt.want {
			t.Errorf("ShellString() = %q, want %q", got, tt.want)
		}
	}
}

func TestLaunchError_Unwrap(t *testing.T) {
	inner := errors.New("permission denied")
	err := &LaunchError{Name: "amass", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("LaunchError should unwrap to the underlying error")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("Error() = %q, should carry the system message", err.Error())
	}
}
