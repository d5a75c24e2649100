// Package log configures structured logging for gptresearch using log/slog.
//
// Logs always go to stderr: stdout carries the MCP stdio transport and the
// research command's result.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Setup configures the default slog logger based on verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// format selects slog.TextHandler ("text" or "") or slog.JSONHandler ("json").
func Setup(verbose, quiet bool, format string) error {
	return SetupWriter(os.Stderr, verbose, quiet, format)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, verbose, quiet bool, format string) error {
	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "", FormatText:
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("unsupported log format %q (supported: text, json)", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
