package app

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger builds the build logger. Unknown levels fall back to info and
// any format other than "json" selects the text handler. The global default
// logger is left untouched so tests can run several apps side by side.
func newLogger(levelStr, formatStr string, logW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(levelStr))); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(logW, opts))
	}
	return slog.New(slog.NewTextHandler(logW, opts))
}
