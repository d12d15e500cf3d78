// Package logging builds the zerolog logger shared by the server and tools.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New returns a logger writing to w (stderr when nil). Debug events are only
// emitted when verbose is set. stdout is never used because the stdio
// transport owns it.
func New(verbose bool, format string, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	if w == nil {
		w = os.Stderr
	}
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
