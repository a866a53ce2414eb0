package render

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// DefaultMaxUpdateDepth bounds the re-render passes of one flush.
const DefaultMaxUpdateDepth = 1000

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDebug enables debug tracing of hooks and DOM patches.
func WithDebug(debug bool) Option {
	return func(r *Renderer) {
		r.debug = debug
	}
}

// WithMetrics records render metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(r *Renderer) {
		r.metrics = m
	}
}

// WithTracer emits a span for every render and re-render pass.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Renderer) {
		r.tracer = tracer
	}
}

// WithMaxUpdateDepth sets the maximum number of queued re-render passes one
// flush may drain. Values below 1 select DefaultMaxUpdateDepth.
func WithMaxUpdateDepth(n int) Option {
	return func(r *Renderer) {
		r.maxDepth = n
	}
}

// WithErrorHandler sets the function receiving errors of re-renders started
// by state setters outside a render. Those errors have no caller to return
// to. The default handler logs them.
func WithErrorHandler(fn func(error)) Option {
	return func(r *Renderer) {
		r.onError = fn
	}
}
