//go:build notrace

package forest

import (
	"context"
	"log/slog"
)

// No-op implementations when built with -tags notrace

const TracingEnabled = false

var nullLogger = slog.New(slog.DiscardHandler)

type Span interface {
	End()
}

type noOpSpan struct{}

func (noOpSpan) End() {}

func WithTraceLogger(ctx context.Context, _ *slog.Logger) context.Context {
	return ctx
}

func getTraceLogFromContext(context.Context) *slog.Logger {
	return nullLogger
}

func StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, noOpSpan{}
}

func TraceEvent(context.Context, string, ...slog.Attr) {}
