// Package logging builds the zerolog loggers used by the CLI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05"

// Options configures New.
type Options struct {
	// Out receives log lines; stderr when nil so stdout stays free for
	// command output.
	Out io.Writer
	// Verbose enables debug level.
	Verbose bool
	// JSON switches from the console writer to raw JSON lines.
	JSON bool
}

// New returns a timestamped logger configured by opts.
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if !opts.JSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: timeFormat,
			NoColor:    true,
		}
	}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}
