// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"go.trai.ch/justrun/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger on top of a LineHandler.
type Logger struct {
	base atomic.Pointer[slog.Logger]
}

// New returns a Logger writing to stderr.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter returns a Logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	l := &Logger{}
	l.SetOutput(w)
	return l
}

// SetOutput redirects subsequent messages to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.base.Store(slog.New(NewLineHandler(w, nil)))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.base.Load().Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.base.Load().Warn(msg)
}

// Error logs err with its cause chain and metadata. A nil error is ignored.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.base.Load().Error(formatErrorEntries(collectErrorEntries(err)))
}

type discard struct{}

// Discard returns a Logger that drops every message.
func Discard() ports.Logger {
	return discard{}
}

func (discard) Info(string) {}
func (discard) Warn(string) {}
func (discard) Error(error) {}
