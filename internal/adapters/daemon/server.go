package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"

	"go.trai.ch/cflags/internal/core/domain"
	"go.trai.ch/cflags/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Server answers flag queries over the project's Unix domain socket.
type Server struct {
	lifecycle *Lifecycle
	provider  ports.FlagProvider
	logger    ports.Logger
	tracer    ports.Tracer
}

// NewServer creates a new daemon server.
func NewServer(
	lifecycle *Lifecycle,
	provider ports.FlagProvider,
	logger ports.Logger,
	tracer ports.Tracer,
) *Server {
	return &Server{
		lifecycle: lifecycle,
		provider:  provider,
		logger:    logger,
		tracer:    tracer,
	}
}

// Serve listens on the UDS until the context is canceled, the idle timeout
// fires, or a shutdown request arrives.
func (s *Server) Serve(ctx context.Context) error {
	socketPath := domain.DefaultDaemonSocketPath()

	if err := os.MkdirAll(filepath.Dir(socketPath), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create daemon directory")
	}

	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return zerr.Wrap(err, "failed to remove stale socket")
	}

	lis, err := net.Listen("unix", socketPath)
	if err != nil {
		return zerr.Wrap(err, "failed to listen on UDS")
	}

	if err := os.Chmod(socketPath, domain.SocketPerm); err != nil {
		_ = lis.Close()
		return zerr.Wrap(err, "failed to set socket permissions")
	}

	if err := s.writePIDFile(); err != nil {
		_ = lis.Close()
		return err
	}

	defer s.cleanup()

	s.logger.Info("daemon listening on " + socketPath)

	g, ctx := errgroup.WithContext(ctx)

	// Closing the listener is the only way to unblock Accept.
	g.Go(func() error {
		select {
		case <-ctx.Done():
			_ = lis.Close()
			return ctx.Err()
		case <-s.lifecycle.ShutdownChan():
			_ = lis.Close()
			return nil
		}
	})

	g.Go(func() error {
		for {
			conn, acceptErr := lis.Accept()
			if acceptErr != nil {
				select {
				case <-s.lifecycle.ShutdownChan():
					return nil
				case <-ctx.Done():
					return nil
				default:
					return zerr.Wrap(acceptErr, "accept failed")
				}
			}
			go s.handleConn(ctx, conn)
		}
	})

	return g.Wait()
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer func() { _ = conn.Close() }()

	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)

	for {
		var req Request
		if err := dec.Decode(&req); err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				s.logger.Warn("dropping malformed request: " + err.Error())
			}
			return
		}

		resp := s.handle(ctx, &req)
		if err := enc.Encode(resp); err != nil {
			return
		}

		if req.Method == MethodShutdown {
			return
		}
	}
}

func (s *Server) handle(ctx context.Context, req *Request) *Response {
	s.lifecycle.Touch()

	_, span := s.tracer.Start(ctx, "daemon."+req.Method)

	var resp *Response
	switch req.Method {
	case MethodFlags:
		resp = s.handleFlags(req)
	case MethodPing:
		resp = &Response{OK: true}
	case MethodStatus:
		resp = s.handleStatus()
	case MethodShutdown:
		s.lifecycle.Shutdown()
		resp = &Response{OK: true}
	default:
		resp = &Response{OK: false, Error: "unknown method: " + req.Method}
	}

	if resp.OK {
		span.End(nil)
	} else {
		span.End(errors.New(resp.Error))
	}
	return resp
}

func (s *Server) handleFlags(req *Request) *Response {
	cfg, err := s.provider.FlagsForFile(req.Filename)
	if err != nil {
		return &Response{OK: false, Error: err.Error()}
	}
	return &Response{OK: true, Config: &cfg}
}

func (s *Server) handleStatus() *Response {
	return &Response{
		OK: true,
		Status: &StatusPayload{
			PID:                  os.Getpid(),
			UptimeSeconds:        int64(s.lifecycle.Uptime().Seconds()),
			LastActivityUnix:     s.lifecycle.LastActivity().Unix(),
			IdleRemainingSeconds: int64(s.lifecycle.IdleRemaining().Seconds()),
		},
	}
}

func (s *Server) writePIDFile() error {
	pid := os.Getpid()
	err := os.WriteFile(domain.DefaultDaemonPIDPath(), []byte(fmt.Sprintf("%d", pid)), domain.PrivateFilePerm)
	if err != nil {
		return zerr.Wrap(err, "failed to write pid file")
	}
	return nil
}

func (s *Server) cleanup() {
	_ = os.Remove(domain.DefaultDaemonSocketPath())
	_ = os.Remove(domain.DefaultDaemonPIDPath())
}
