// Package logging sets up structured logging for the application using
// log/slog, plus HTTP middleware that logs requests and bodies.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Setup returns a JSON slog.Logger writing to out at the given level.
// Level is one of debug, info, warn, error (case-insensitive).
func Setup(out io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %s", level)
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler), nil
}
