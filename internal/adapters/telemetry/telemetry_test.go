package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/cflags/internal/adapters/telemetry"
	"go.trai.ch/cflags/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestTracer_SuccessSpanLoggedAsInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Regex(`^flags\.query completed in `)).Times(1)

	tracer := telemetry.New("cflags-test", mockLogger)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "flags.query")
	span.End(nil)
}

func TestTracer_FailedSpanLoggedAsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Regex(`^flags\.query failed after `)).Times(1)

	tracer := telemetry.New("cflags-test", mockLogger)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "flags.query")
	span.End(errors.New("boom"))
}

func TestTracer_NestedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(2)

	tracer := telemetry.New("cflags-test", mockLogger)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	ctx, outer := tracer.Start(context.Background(), "daemon.request")
	_, inner := tracer.Start(ctx, "flags.query")
	inner.End(nil)
	outer.End(nil)
}

func TestTracer_ShutdownIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	tracer := telemetry.New("cflags-test", mockLogger)
	require.NoError(t, tracer.Shutdown(context.Background()))
	require.NoError(t, tracer.Shutdown(context.Background()))
}
