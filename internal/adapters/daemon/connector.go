package daemon

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"go.trai.ch/cflags/internal/core/domain"
	"go.trai.ch/cflags/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	pollInterval    = 100 * time.Millisecond
	maxPollDuration = 5 * time.Second
)

// Connector implements ports.DaemonConnector.
type Connector struct {
	executablePath string
}

// NewConnector creates a new daemon connector.
func NewConnector() (*Connector, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine executable path")
	}
	return &Connector{executablePath: exe}, nil
}

// Connect returns a client, spawning the daemon if necessary.
func (c *Connector) Connect(ctx context.Context) (ports.DaemonClient, error) {
	client, err := Dial()
	if err == nil {
		if pingErr := client.Ping(ctx); pingErr == nil {
			return client, nil
		}
		_ = client.Close()
	}

	if spawnErr := c.Spawn(ctx); spawnErr != nil {
		return nil, spawnErr
	}

	return c.awaitResponsive(ctx)
}

// awaitResponsive polls the socket until the freshly spawned daemon answers.
func (c *Connector) awaitResponsive(ctx context.Context) (ports.DaemonClient, error) {
	deadline := time.Now().Add(maxPollDuration)

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}

		client, err := Dial()
		if err != nil {
			continue
		}
		if pingErr := client.Ping(ctx); pingErr == nil {
			return client, nil
		}
		_ = client.Close()
	}

	return nil, domain.ErrDaemonUnresponsive
}

// IsRunning checks if the daemon is running and responsive.
func (c *Connector) IsRunning() bool {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	client, err := Dial()
	if err != nil {
		return false
	}
	defer func() { _ = client.Close() }()

	return client.Ping(ctx) == nil
}

// Spawn starts the daemon process in the background.
func (c *Connector) Spawn(_ context.Context) error {
	if err := os.MkdirAll(filepath.Dir(domain.DefaultDaemonSocketPath()), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create daemon directory")
	}

	logPath := domain.DefaultDaemonLogPath()
	//nolint:gosec // G304: logPath is built from domain constants, not user input
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.PrivateFilePerm)
	if err != nil {
		return zerr.Wrap(err, "failed to open daemon log")
	}
	defer func() { _ = logFile.Close() }()

	//nolint:gosec // G204: executablePath is controlled, args are fixed literals
	cmd := exec.Command(c.executablePath, "daemon", "serve")
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := cmd.Start(); err != nil {
		return zerr.Wrap(err, "failed to spawn daemon")
	}

	// The daemon outlives us; let the OS reap it.
	return cmd.Process.Release()
}
