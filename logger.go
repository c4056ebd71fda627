package pagemesh

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled is false, so logGenerated returns
// before building any attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the logger shared by Generate, NewGrid and the bridge.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes mesh logging to l. Until it is called nothing is logged;
// nil switches logging off again. It may be called while meshes are being
// generated on other goroutines.
//
// Records written:
//   - Debug "pagemesh: generated mesh" from Generate and NewGrid, with the
//     spec, vertex count, origin and whether a transform was applied
//   - Warn from the host bridge when a buffer is rejected or a fill fails
//   - Info "mesh written" from the pagemesh command when -output is used
//
// The pagemesh command's -v flag installs
//
//	slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
