package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/psptechhub/leadcap/internal/filex"
)

// NewFileLogger builds the client logger. The terminal belongs to the
// screens, so logs go to a rotating JSON file at path. An empty path sends
// text logs to stderr instead. The returned closer releases the file.
func NewFileLogger(path string, level string) (*SlogLogger, io.Closer, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if path == "" {
		return NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, opts))), io.NopCloser(os.Stderr), nil
	}

	if err := filex.EnsureParentDir(path); err != nil {
		return nil, nil, err
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	return NewSlogLogger(slog.New(slog.NewJSONHandler(sink, opts))), sink, nil
}
