package main

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/hookdom/internal/config"
	"github.com/vango-dev/hookdom/pkg/render"
)

// tracer returns the tracer selected by tracing.enabled, or nil.
//
// Spans go to the global OpenTelemetry provider. The hookdom binary does
// not install one, so unless a program embedding the command sets
// otel.SetTracerProvider first, the spans are discarded.
func tracer(cfg *config.Config, logger *slog.Logger) trace.Tracer {
	if !cfg.Tracing.Enabled {
		return nil
	}
	logger.Warn("tracing: spans are sent to the global OpenTelemetry provider, which is a no-op unless one is installed",
		"tracer", cfg.Tracing.TracerName)
	return render.GlobalTracer(cfg.Tracing.TracerName)
}
