package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns JSON logger with level taken from LOG_LEVEL (fallback to cfg level).
// Output goes to stderr: stdout is the MCP protocol stream and must stay clean.
func New(level string) *slog.Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter строит логгер с явным назначением вывода (для тестов).
func NewWithWriter(level string, w io.Writer) *slog.Logger {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	parsed := slog.LevelInfo
	if level != "" {
		var lv slog.Level
		if err := lv.UnmarshalText([]byte(level)); err == nil {
			parsed = lv
		}
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parsed})
	return slog.New(h)
}
