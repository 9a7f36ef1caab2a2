// Package telemetry records the phases of a run.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/justrun/internal/core/domain"
	"go.trai.ch/justrun/internal/core/ports"
)

// InstrumentationName names the tracer used for run phases.
const InstrumentationName = "go.trai.ch/justrun"

var _ ports.Telemetry = (*Tracing)(nil)

// Tracing wraps a ports.Telemetry and mirrors every vertex as an OpenTelemetry span.
type Tracing struct {
	inner  ports.Telemetry
	tracer trace.Tracer
}

// WithTracing returns inner decorated with spans from tracer.
func WithTracing(inner ports.Telemetry, tracer trace.Tracer) *Tracing {
	return &Tracing{inner: inner, tracer: tracer}
}

// Record starts a span and a vertex. The returned context carries the span.
func (t *Tracing) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	ctx, span := t.tracer.Start(ctx, name)
	ctx, v := t.inner.Record(ctx, name)
	return ctx, &tracedVertex{Vertex: v, span: span}
}

// Close closes the wrapped telemetry.
func (t *Tracing) Close() error {
	return t.inner.Close()
}

type tracedVertex struct {
	ports.Vertex
	span trace.Span
}

func (v *tracedVertex) Log(level domain.LogLevel, msg string) {
	v.span.AddEvent("log", trace.WithAttributes(
		attribute.String("level", level.String()),
		attribute.String("message", msg),
	))
	v.Vertex.Log(level, msg)
}

func (v *tracedVertex) Cached() {
	v.span.SetAttributes(attribute.Bool("cached", true))
	v.Vertex.Cached()
}

func (v *tracedVertex) Complete(err error) {
	if err != nil {
		v.span.RecordError(err)
		v.span.SetStatus(codes.Error, err.Error())
	}
	v.Vertex.Complete(err)
	v.span.End()
}
