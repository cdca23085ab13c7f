// Package logging holds the structured logger shared by the chartmotion
// packages. Nothing is logged until a host calls SetLogger.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false so callers skip
// attribute construction entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger for all chartmotion packages.
// Pass nil to restore the silent default.
//
// Levels in use:
//   - [slog.LevelDebug]: per-frame summaries, pruning, ticker lifecycle
//   - [slog.LevelInfo]: settings reloads
//   - [slog.LevelWarn]: recoverable failures (watcher errors, failed frames)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the active logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Enabled reports whether the active logger emits records at level.
func Enabled(level slog.Level) bool {
	return Logger().Enabled(context.Background(), level)
}
