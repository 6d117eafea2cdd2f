package gghost

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
	"github.com/gogpu/wgpu"

	"github.com/gogpu/gghost/surface"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for gghost, its surface backends, the
// gg rasterizer and the wgpu HAL. By default gghost produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by gghost:
//   - [slog.LevelDebug]: dropped events, staging conflicts, transient frame errors
//   - [slog.LevelInfo]: adapter selected, renderer created, window promoted
//   - [slog.LevelWarn]: surface reconfiguration failures
//   - [slog.LevelError]: renderer creation failures, fatal out of memory
//
// Example:
//
//	gghost.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	propagateLogger(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func slogger() *slog.Logger { return loggerPtr.Load() }

// propagateLogger hands l to the packages gghost drives.
func propagateLogger(l *slog.Logger) {
	surface.SetLogger(l)
	gg.SetLogger(l)
	wgpu.SetLogger(l)
}
