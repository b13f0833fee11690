// Package logging builds the zerolog logger used by the refnet CLI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the zerolog logger type, re-exported so callers need not import
// zerolog for a field declaration.
type Logger = zerolog.Logger

// Options selects the logger's level and output format.
type Options struct {
	Level  string
	Pretty bool
	Out    io.Writer
}

// New returns a logger writing JSON lines (or console output when Pretty) to
// opts.Out, stderr by default. An unknown level falls back to info. Level
// and timestamps are set per logger; zerolog's package globals are left
// alone, so timestamps use its default RFC 3339 format.
func New(opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
