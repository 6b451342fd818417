//go:build !notrace

package forest

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"runtime"
	"time"
)

type traceLoggerKey struct{}
type spanIDKey struct{}

// TracingEnabled reports whether trace logging is compiled in. Build
// with -tags notrace to remove it.
const TracingEnabled = true

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

// Span marks the extent of a traced operation.
type Span interface {
	End()
}

type span struct {
	tlog  *slog.Logger
	name  string
	start time.Time
}

func (s *span) End() {
	s.tlog.Debug("END", slog.String("span_name", s.name), slog.Duration("duration", time.Since(s.start)))
}

// WithTraceLogger returns a context carrying tlog. Parse and
// ParseFragment log every construction event to it at debug level.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	// If the context already has a trace logger, return the context as is
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}
	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger)
	if !ok {
		return nullLogger
	}

	// Retrieve the function name of the caller for tracing
	if pc, _, _, ok := runtime.Caller(2); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			tlog = tlog.With(slog.String("fn", fn.Name()))
		}
	}
	if id, ok := ctx.Value(spanIDKey{}).(string); ok {
		tlog = tlog.With(slog.String("span_id", id))
	}
	return tlog
}

func generateSpanID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// StartSpan logs the start of the named operation and returns a context
// whose trace logger is tagged with a fresh span id.
func StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx = context.WithValue(ctx, spanIDKey{}, generateSpanID())
	tlog := getTraceLogFromContext(ctx)
	tlog.Debug("START", slog.String("span_name", name))
	return ctx, &span{tlog: tlog, name: name, start: time.Now()}
}

// TraceEvent logs msg to the trace logger in ctx.
func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	getTraceLogFromContext(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
