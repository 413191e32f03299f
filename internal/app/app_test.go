package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cflags/internal/app"
	"go.trai.ch/cflags/internal/core/domain"
	"go.trai.ch/cflags/internal/core/ports"
	"go.trai.ch/cflags/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type noopSpan struct{}

func (noopSpan) End(error) {}

func stubTracer(ctrl *gomock.Controller) *mocks.MockTracer {
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, noopSpan{}
		},
	).AnyTimes()
	tracer.EXPECT().Shutdown(gomock.Any()).Return(nil).AnyTimes()
	return tracer
}

func testConfig() domain.FlagConfiguration {
	return domain.FlagConfiguration{
		Flags:   []string{"-Wall", "-Wextra", "-x", "c++", "-std=c++14", "-I", "/proj/include"},
		DoCache: true,
	}
}

func TestApp_Query_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockProvider := mocks.NewMockFlagProvider(ctrl)
	mockProvider.EXPECT().FlagsForFile("src/foo.cpp").Return(testConfig(), nil)

	var buf bytes.Buffer
	a := app.New(mockProvider, mocks.NewMockLogger(ctrl), mocks.NewMockDaemonConnector(ctrl), stubTracer(ctrl)).
		WithOutput(&buf)

	err := a.Query(context.Background(), []string{"src/foo.cpp"}, app.QueryOptions{Format: "json"})
	require.NoError(t, err)

	var decoded domain.FlagConfiguration
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.True(t, testConfig().Equal(decoded))
}

func TestApp_Query_MultipleFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockProvider := mocks.NewMockFlagProvider(ctrl)
	mockProvider.EXPECT().FlagsForFile(gomock.Any()).Return(testConfig(), nil).Times(3)

	var buf bytes.Buffer
	a := app.New(mockProvider, mocks.NewMockLogger(ctrl), mocks.NewMockDaemonConnector(ctrl), stubTracer(ctrl)).
		WithOutput(&buf)

	err := a.Query(
		context.Background(),
		[]string{"a.cpp", "b.cpp", "c.hpp"},
		app.QueryOptions{Format: "json", Compact: true},
	)
	require.NoError(t, err)

	// One single-line record per file.
	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 3, lines)
}

func TestApp_Query_NoFiles(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := app.New(
		mocks.NewMockFlagProvider(ctrl),
		mocks.NewMockLogger(ctrl),
		mocks.NewMockDaemonConnector(ctrl),
		stubTracer(ctrl),
	)

	err := a.Query(context.Background(), nil, app.QueryOptions{Format: "json"})
	require.ErrorIs(t, err, domain.ErrNoFilesSpecified)
}

func TestApp_Query_UnknownFormat(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := app.New(
		mocks.NewMockFlagProvider(ctrl),
		mocks.NewMockLogger(ctrl),
		mocks.NewMockDaemonConnector(ctrl),
		stubTracer(ctrl),
	)

	err := a.Query(context.Background(), []string{"a.cpp"}, app.QueryOptions{Format: "xml"})
	require.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestApp_Query_ViaDaemon(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockClient := mocks.NewMockDaemonClient(ctrl)
	mockClient.EXPECT().FlagsForFile(gomock.Any(), "src/foo.cpp").Return(testConfig(), nil)
	mockClient.EXPECT().Close().Return(nil)

	mockConnector := mocks.NewMockDaemonConnector(ctrl)
	mockConnector.EXPECT().Connect(gomock.Any()).Return(mockClient, nil)

	// The in-process provider must not be consulted.
	mockProvider := mocks.NewMockFlagProvider(ctrl)

	var buf bytes.Buffer
	a := app.New(mockProvider, mocks.NewMockLogger(ctrl), mockConnector, stubTracer(ctrl)).
		WithOutput(&buf)

	err := a.Query(
		context.Background(),
		[]string{"src/foo.cpp"},
		app.QueryOptions{Format: "json", ViaDaemon: true},
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"do_cache": true`)
}

func TestApp_Query_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockProvider := mocks.NewMockFlagProvider(ctrl)
	mockProvider.EXPECT().
		FlagsForFile(gomock.Any()).
		Return(domain.FlagConfiguration{}, domain.ErrWorkingDirUnavailable)

	a := app.New(
		mockProvider,
		mocks.NewMockLogger(ctrl),
		mocks.NewMockDaemonConnector(ctrl),
		stubTracer(ctrl),
	)

	err := a.Query(context.Background(), []string{"a.cpp"}, app.QueryOptions{Format: "json"})
	require.Error(t, err)
}

func TestApp_DaemonStatus_NotRunning(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockConnector := mocks.NewMockDaemonConnector(ctrl)
	mockConnector.EXPECT().IsRunning().Return(false)

	a := app.New(
		mocks.NewMockFlagProvider(ctrl),
		mocks.NewMockLogger(ctrl),
		mockConnector,
		stubTracer(ctrl),
	)

	err := a.DaemonStatus(context.Background())
	require.ErrorIs(t, err, domain.ErrDaemonNotRunning)
}

func TestApp_StopDaemon_NotRunning(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockConnector := mocks.NewMockDaemonConnector(ctrl)
	mockConnector.EXPECT().IsRunning().Return(false)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("daemon is not running")

	a := app.New(mocks.NewMockFlagProvider(ctrl), mockLogger, mockConnector, stubTracer(ctrl))

	require.NoError(t, a.StopDaemon(context.Background()))
}

func TestApp_StopDaemon_Running(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockClient := mocks.NewMockDaemonClient(ctrl)
	mockClient.EXPECT().Shutdown(gomock.Any()).Return(nil)
	mockClient.EXPECT().Close().Return(nil)

	mockConnector := mocks.NewMockDaemonConnector(ctrl)
	mockConnector.EXPECT().IsRunning().Return(true)
	mockConnector.EXPECT().Connect(gomock.Any()).Return(mockClient, nil)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("daemon stopped")

	a := app.New(mocks.NewMockFlagProvider(ctrl), mockLogger, mockConnector, stubTracer(ctrl))

	require.NoError(t, a.StopDaemon(context.Background()))
}
