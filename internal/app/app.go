// Package app implements the application layer for cflags.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/cflags/internal/adapters/daemon"
	"go.trai.ch/cflags/internal/adapters/encoder"
	"go.trai.ch/cflags/internal/core/domain"
	"go.trai.ch/cflags/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	provider  ports.FlagProvider
	logger    ports.Logger
	connector ports.DaemonConnector
	tracer    ports.Tracer
	out       io.Writer
}

// New creates a new App instance.
func New(
	provider ports.FlagProvider,
	log ports.Logger,
	connector ports.DaemonConnector,
	tracer ports.Tracer,
) *App {
	return &App{
		provider:  provider,
		logger:    log,
		connector: connector,
		tracer:    tracer,
		out:       os.Stdout,
	}
}

// WithOutput redirects query output. This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// QueryOptions configuration for the Query method.
type QueryOptions struct {
	Format    string
	Compact   bool
	ViaDaemon bool
}

// Query prints the flag configuration for each of the given files.
//
// Every file receives the same configuration; the loop exists because hosts
// and humans alike pass several files in one invocation and expect one
// record per file.
func (a *App) Query(ctx context.Context, files []string, opts QueryOptions) error {
	if len(files) == 0 {
		return domain.ErrNoFilesSpecified
	}

	format, err := encoder.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	enc := encoder.New(format)
	if opts.Compact {
		enc = enc.WithCompact()
	}

	lookup, closeLookup, err := a.lookupFunc(ctx, opts.ViaDaemon)
	if err != nil {
		return err
	}
	defer closeLookup()

	for _, file := range files {
		ctx, span := a.tracer.Start(ctx, "flags.query")

		cfg, err := lookup(ctx, file)
		if err != nil {
			span.End(err)
			return zerr.Wrap(err, domain.ErrQueryExecutionFailed.Error())
		}

		if err := enc.Encode(a.out, file, cfg); err != nil {
			span.End(err)
			return err
		}
		span.End(nil)
	}

	return nil
}

// lookupFunc returns the configuration source: the in-process provider, or a
// daemon client when the query should go through the background daemon.
func (a *App) lookupFunc(
	ctx context.Context,
	viaDaemon bool,
) (func(context.Context, string) (domain.FlagConfiguration, error), func(), error) {
	if !viaDaemon {
		lookup := func(_ context.Context, file string) (domain.FlagConfiguration, error) {
			return a.provider.FlagsForFile(file)
		}
		return lookup, func() {}, nil
	}

	client, err := a.connector.Connect(ctx)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to connect to daemon")
	}
	return client.FlagsForFile, func() { _ = client.Close() }, nil
}

// ServeDaemon runs the daemon server in the foreground until it is stopped
// or its idle timeout fires.
func (a *App) ServeDaemon(ctx context.Context) error {
	defer func() { _ = a.tracer.Shutdown(ctx) }()

	lifecycle := daemon.NewLifecycle(daemon.DefaultIdleTimeout)
	server := daemon.NewServer(lifecycle, a.provider, a.logger, a.tracer)
	return server.Serve(ctx)
}

// DaemonStatus reports the state of the background daemon.
func (a *App) DaemonStatus(ctx context.Context) error {
	if !a.connector.IsRunning() {
		return domain.ErrDaemonNotRunning
	}

	client, err := a.connector.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	status, err := client.Status(ctx)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("daemon running (pid %d)", status.PID))
	a.logger.Info(fmt.Sprintf("uptime: %s", status.Uptime))
	a.logger.Info(fmt.Sprintf("idle shutdown in: %s", status.IdleRemaining))
	return nil
}

// StopDaemon requests a graceful daemon shutdown.
func (a *App) StopDaemon(ctx context.Context) error {
	if !a.connector.IsRunning() {
		a.logger.Info("daemon is not running")
		return nil
	}

	client, err := a.connector.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := client.Shutdown(ctx); err != nil {
		return err
	}
	a.logger.Info("daemon stopped")
	return nil
}
