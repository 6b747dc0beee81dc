// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/gaecom/arco-cli/internal/core/ports"
	"github.com/gaecom/arco-cli/internal/ui/style"
)

// messager is implemented by *zerr.Error: the error's own message without its cause.
type messager interface {
	Message() string
}

// metadataCarrier is implemented by *zerr.Error.
type metadataCarrier interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain as printed by Logger.Error.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a Logger writing human-readable lines to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(newHandler(os.Stderr, false)),
		output: os.Stderr,
	}
}

func newHandler(w io.Writer, jsonMode bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// SetOutput redirects the logger. A nil writer selects stderr.
// The current JSON mode is kept.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(newHandler(w, l.jsonMode))
}

// SetJSON switches between JSON and pretty output on the current writer.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(newHandler(w, enable))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err together with its cause chain. Nil errors are ignored.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	entries := collectErrorEntries(err)
	var args []any
	if run, ok := entries[0].Metadata[RunKey]; ok {
		args = append(args, slog.Any(RunKey, run))
		entries[0].Metadata = maps.Clone(entries[0].Metadata)
		delete(entries[0].Metadata, RunKey)
	}

	if l.jsonMode {
		l.logger.Error("operation failed", append(args, "error", err)...)
		return
	}

	l.logger.Error(formatErrorEntries(entries), args...)
}

// collectErrorEntries walks the chain of zerr errors. The first error that is
// not a zerr error ends the walk with its full message.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entry := ErrorEntry{Message: m.Message()}
		if mc, ok := current.(metadataCarrier); ok {
			entry.Metadata = mc.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}
	return entries
}

func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			lines = appendIndented(lines, "       ", msgLines[1:])
			lines = appendIndented(lines, "       ", metadataLines(entry.Metadata))
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    "+style.Arrow+" "+msgLines[0])
		lines = appendIndented(lines, "      ", msgLines[1:])
		lines = appendIndented(lines, "      ", metadataLines(entry.Metadata))
	}

	return strings.Join(lines, "\n")
}

func appendIndented(dst []string, indent string, lines []string) []string {
	for _, line := range lines {
		dst = append(dst, indent+line)
	}
	return dst
}

func metadataLines(meta map[string]any) []string {
	if len(meta) == 0 {
		return nil
	}
	keys := slices.Sorted(maps.Keys(meta))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s: %v", k, meta[k]))
	}
	return out
}
