package daemon

import (
	"context"
	"encoding/json"
	"net"
	"sync"
	"time"

	"go.trai.ch/cflags/internal/core/domain"
	"go.trai.ch/cflags/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.DaemonClient over the ND-JSON socket protocol.
type Client struct {
	mu   sync.Mutex
	conn net.Conn
	dec  *json.Decoder
	enc  *json.Encoder
}

// Dial connects to the daemon over UDS.
func Dial() (*Client, error) {
	conn, err := net.Dial("unix", domain.DefaultDaemonSocketPath())
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrDaemonNotRunning.Error())
	}

	return &Client{
		conn: conn,
		dec:  json.NewDecoder(conn),
		enc:  json.NewEncoder(conn),
	}, nil
}

// roundTrip writes one request and reads one response. The protocol is
// strictly request/response per line, so a single lock serializes users of
// a shared client.
func (c *Client) roundTrip(ctx context.Context, req *Request) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(5 * time.Second)
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, zerr.Wrap(err, "failed to set request deadline")
	}

	if err := c.enc.Encode(req); err != nil {
		return nil, zerr.Wrap(err, "failed to send request")
	}

	var resp Response
	if err := c.dec.Decode(&resp); err != nil {
		return nil, zerr.Wrap(err, "failed to read response")
	}

	if !resp.OK {
		return nil, zerr.With(domain.ErrDaemonRequestFailed, "reason", resp.Error)
	}
	return &resp, nil
}

// FlagsForFile implements ports.DaemonClient.
func (c *Client) FlagsForFile(ctx context.Context, filename string) (domain.FlagConfiguration, error) {
	resp, err := c.roundTrip(ctx, &Request{Method: MethodFlags, Filename: filename})
	if err != nil {
		return domain.FlagConfiguration{}, err
	}
	if resp.Config == nil {
		return domain.FlagConfiguration{}, zerr.With(domain.ErrDaemonRequestFailed, "reason", "missing config in response")
	}
	return *resp.Config, nil
}

// Ping implements ports.DaemonClient.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.roundTrip(ctx, &Request{Method: MethodPing})
	return err
}

// Status implements ports.DaemonClient.
func (c *Client) Status(ctx context.Context) (*ports.DaemonStatus, error) {
	resp, err := c.roundTrip(ctx, &Request{Method: MethodStatus})
	if err != nil {
		return nil, err
	}
	if resp.Status == nil {
		return nil, zerr.With(domain.ErrDaemonRequestFailed, "reason", "missing status in response")
	}
	return &ports.DaemonStatus{
		Running:       true,
		PID:           resp.Status.PID,
		Uptime:        time.Duration(resp.Status.UptimeSeconds) * time.Second,
		LastActivity:  time.Unix(resp.Status.LastActivityUnix, 0),
		IdleRemaining: time.Duration(resp.Status.IdleRemainingSeconds) * time.Second,
	}, nil
}

// Shutdown implements ports.DaemonClient.
func (c *Client) Shutdown(ctx context.Context) error {
	_, err := c.roundTrip(ctx, &Request{Method: MethodShutdown})
	return err
}

// Close implements ports.DaemonClient.
func (c *Client) Close() error {
	return c.conn.Close()
}
