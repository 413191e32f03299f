// Package daemon implements the background daemon adapter for cflags.
//
// Editor hosts query flags often enough that process-spawn latency matters,
// so a long-lived per-project daemon serves configurations over a Unix
// domain socket. The wire protocol is newline-delimited JSON: one request
// object per line, answered by one response object per line.
package daemon

import (
	"go.trai.ch/cflags/internal/core/domain"
)

// Request methods.
const (
	// MethodFlags asks for the flag configuration of a file.
	MethodFlags = "flags"
	// MethodPing checks liveness and resets the inactivity timer.
	MethodPing = "ping"
	// MethodStatus reports daemon uptime and idle state.
	MethodStatus = "status"
	// MethodShutdown requests a graceful shutdown.
	MethodShutdown = "shutdown"
)

// Request is a single client request.
type Request struct {
	Method   string `json:"method"`
	Filename string `json:"filename,omitempty"`
}

// Response is a single daemon response.
type Response struct {
	OK     bool                      `json:"ok"`
	Error  string                    `json:"error,omitempty"`
	Config *domain.FlagConfiguration `json:"config,omitempty"`
	Status *StatusPayload            `json:"status,omitempty"`
}

// StatusPayload carries daemon state for the status method.
type StatusPayload struct {
	PID                  int   `json:"pid"`
	UptimeSeconds        int64 `json:"uptime_seconds"`
	LastActivityUnix     int64 `json:"last_activity_unix"`
	IdleRemainingSeconds int64 `json:"idle_remaining_seconds"`
}
