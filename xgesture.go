// Package xgesture turns streams of pointer positions into geometric
// gestures on rectangular elements. The actual gestures live in
// sub-packages, such as [deedles.dev/xgesture/resize].
package xgesture

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by xgesture and all of its
// sub-packages. By default nothing is logged. Passing nil restores
// that default.
//
// Gestures log at [slog.LevelDebug] only, so a logger at a higher
// level will usually see nothing.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

// Logger returns the logger most recently set with [SetLogger].
func Logger() *slog.Logger {
	return logger.Load()
}
