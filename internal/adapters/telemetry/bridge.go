package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cflags/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to report finished spans to the
// application logger. Failed spans are logged as warnings; the underlying
// error is reported by the caller.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	duration := s.EndTime().Sub(s.StartTime())

	if s.Status().Code == codes.Error {
		b.logger.Warn(fmt.Sprintf("%s failed after %s", s.Name(), duration))
		return
	}
	b.logger.Info(fmt.Sprintf("%s completed in %s", s.Name(), duration))
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}
