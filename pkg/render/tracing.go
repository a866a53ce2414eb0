package render

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTracerName is the instrumentation name used by GlobalTracer.
const DefaultTracerName = "hookdom"

// GlobalTracer returns a tracer from the global OpenTelemetry provider.
// Configure the provider before creating the renderer:
//
//	otel.SetTracerProvider(tp)
//	r := render.New(doc, render.WithTracer(render.GlobalTracer("")))
func GlobalTracer(name string) trace.Tracer {
	if name == "" {
		name = DefaultTracerName
	}
	return otel.Tracer(name)
}

func (r *Renderer) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if r.tracer == nil {
		return ctx, nil
	}
	attrs = append(attrs, attribute.Int("hookdom.instances", len(r.instances)))
	return r.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
