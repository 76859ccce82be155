// Package logging configures the process-wide zerolog logger and hands out
// per-component child loggers.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls where and how much we log.
type Options struct {
	// File receives JSON log lines. Empty means Console decides.
	File string

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	Level string

	// Console writes human-readable lines to stderr instead of a file.
	// The TUI owns the terminal, so only CLI subcommands set this.
	Console bool
}

var (
	mu     sync.RWMutex
	root   = zerolog.Nop()
	closer io.Closer
)

// Init replaces the root logger. It is safe to call more than once; the
// previous log file is closed.
func Init(opts Options) error {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("parsing log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var (
		w io.Writer
		c io.Closer
	)
	switch {
	case opts.Console:
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		w, c = f, f
	default:
		w = io.Discard
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
	}
	root, closer = logger, c
	return nil
}

// Logger returns the root logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// Component returns a child logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return Logger().With().Str("component", name).Logger()
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	root = zerolog.Nop()
	return err
}
