// ABOUTME: Structured logging configuration using log/slog.
// ABOUTME: Installs the default logger with level and format taken from the environment.

package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs the process-wide logger from LOG_LEVEL (debug, info, warn,
// error) and LOG_FORMAT (text or json). Unknown values fall back to info/text.
func Init() {
	slog.SetDefault(New(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT")))
}

// New returns a logger writing to w that tags every record with service=assetdex.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With("service", "assetdex")
}

// parseLevel accepts slog level names, offsets like "debug+2", and "warning".
func parseLevel(s string) slog.Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
