package ports

import "context"

//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks

// Span represents a single traced operation.
type Span interface {
	// End completes the span. A non-nil err marks the span as failed.
	End(err error)
}

// Tracer is the abstraction for tracing query and daemon operations.
// It decouples the adapters from the OpenTelemetry SDK so tests can
// substitute a no-op implementation.
type Tracer interface {
	// Start begins a new span with the given name.
	Start(ctx context.Context, name string) (context.Context, Span)

	// Shutdown flushes and releases tracer resources.
	Shutdown(ctx context.Context) error
}
