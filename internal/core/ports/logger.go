package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)

	// Warn logs a warning message.
	Warn(msg string)

	// Error logs an error, rendering cause chains when available.
	Error(err error)

	// SetOutput redirects log output. Used by the daemon to write to its log file.
	SetOutput(w io.Writer)

	// SetJSON switches between JSON and pretty log output.
	SetJSON(enable bool)
}
