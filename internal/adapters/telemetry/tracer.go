// Package telemetry implements tracing for query and daemon operations.
//
// Spans are produced through the OpenTelemetry SDK and bridged to the
// application logger, which is the only consumer: there is no exporter and
// no network egress.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cflags/internal/core/ports"
)

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
}

// New creates a tracer whose spans are reported to the given logger.
func New(name string, logger ports.Logger) *OTelTracer {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
	return &OTelTracer{
		tracer:   tp.Tracer(name),
		provider: tp,
	}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, span := t.tracer.Start(ctx, name)
	return ctx, &otelSpan{span: span}
}

// Shutdown flushes and releases tracer resources.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

// otelSpan wraps an OTel span behind ports.Span.
type otelSpan struct {
	span trace.Span
}

// End completes the span. A non-nil err marks the span as failed.
func (s *otelSpan) End(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}
