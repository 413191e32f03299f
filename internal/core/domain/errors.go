package domain

import "go.trai.ch/zerr"

var (
	// ErrWorkingDirUnavailable is returned when the process working directory
	// cannot be determined for include-path resolution.
	ErrWorkingDirUnavailable = zerr.New("failed to determine working directory")

	// ErrUnknownFormat is returned when an output format is not one of json, yaml or text.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'json', 'yaml' or 'text'")

	// ErrNoFilesSpecified is returned when the query command is invoked without file arguments.
	ErrNoFilesSpecified = zerr.New("no files specified")

	// ErrDaemonNotRunning is returned when a client operation requires a running daemon.
	ErrDaemonNotRunning = zerr.New("daemon is not running")

	// ErrDaemonUnresponsive is returned when the daemon socket exists but does not answer.
	ErrDaemonUnresponsive = zerr.New("daemon started but is not responsive")

	// ErrDaemonRequestFailed is returned when the daemon reports a request-level failure.
	ErrDaemonRequestFailed = zerr.New("daemon request failed")

	// ErrQueryExecutionFailed is returned when one or more flag queries fail.
	ErrQueryExecutionFailed = zerr.New("query execution failed")
)
