// Package logger provides a logger implementation using slog
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/8thgencore/kvrepl/internal/config"
	"github.com/golang-cz/devslog"
)

// New creates a new logger with configured formatting and logging level
// and sets it as the default logger
func New(env config.Environment, cfg config.LoggingConfig) *slog.Logger {
	var w io.Writer = os.Stderr
	if cfg.Output == "stdout" {
		w = os.Stdout
	}

	log := NewWithWriter(w, env, ParseLevel(cfg.Level))

	// Set the logger as the default logger
	slog.SetDefault(log)

	return log
}

// NewWithWriter creates a logger that writes to w
func NewWithWriter(w io.Writer, env config.Environment, level slog.Level) *slog.Logger {
	if env == config.Production {
		slogOpts := &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		}
		return slog.New(slog.NewJSONHandler(w, slogOpts))
	}

	slogOpts := &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}
	opts := &devslog.Options{
		HandlerOptions:    slogOpts,
		MaxSlicePrintSize: 10,
		SortKeys:          true,
		NewLineAfterLog:   true,
		StringerFormatter: true,
		TimeFormat:        "[15:04:05.000]",
	}

	return slog.New(devslog.NewHandler(w, opts))
}

// ParseLevel converts a level name to slog.Level, falling back to info
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}

	return l
}
