// Package logger provides file-backed debug logging for tabcast.
// The TUI owns the terminal, so log output never goes to stdout.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// L is the global logger. It discards everything until Init enables it.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init configures logging. When enabled, entries are appended to
// ~/.tabcast/debug.log as JSON.
func Init(enabled bool) error {
	if !enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".tabcast")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// Debug logs at debug level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
