package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// Output is stdout, stderr or file.
	Output string `mapstructure:"output"`
	// File is the log file used when Output is "file".
	File string `mapstructure:"file"`
}

// ParseLevel maps a level name to a slog level. Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// OpenOutput resolves the configured destination. The returned close function
// is always non-nil.
func OpenOutput(cfg Config) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Output {
	case "stdout":
		return os.Stdout, noop, nil
	case "file":
		name := cfg.File
		if name == "" {
			name = "accel-pr.log"
		}
		f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return os.Stderr, noop, fmt.Errorf("failed to open log file %s: %w", name, err)
		}
		return f, f.Close, nil
	default:
		return os.Stderr, noop, nil
	}
}

// NewLogger initializes a new slog logger based on the provided configuration.
// A nil output means the destination named in cfg.Output.
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		output, _, _ = OpenOutput(cfg)
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler)
}
