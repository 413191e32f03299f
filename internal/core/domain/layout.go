package domain

import "path/filepath"

const (
	// CflagsDirName is the name of the internal workspace directory.
	CflagsDirName = ".cflags"

	// DaemonSocketFile is the name of the daemon Unix domain socket.
	DaemonSocketFile = "daemon.sock"

	// DaemonPIDFile is the name of the daemon pid file.
	DaemonPIDFile = "daemon.pid"

	// DaemonLogFile is the name of the daemon log file.
	DaemonLogFile = "daemon.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// SocketPerm is the permission for the daemon socket (rw-------).
	SocketPerm = 0o600
)

// DefaultCflagsPath returns the default root directory for cflags metadata.
func DefaultCflagsPath() string {
	return CflagsDirName
}

// DefaultDaemonSocketPath returns the default path for the daemon socket.
// It joins .cflags and daemon.sock.
func DefaultDaemonSocketPath() string {
	return filepath.Join(CflagsDirName, DaemonSocketFile)
}

// DefaultDaemonPIDPath returns the default path for the daemon pid file.
// It joins .cflags and daemon.pid.
func DefaultDaemonPIDPath() string {
	return filepath.Join(CflagsDirName, DaemonPIDFile)
}

// DefaultDaemonLogPath returns the default path for the daemon log.
// It joins .cflags and daemon.log.
func DefaultDaemonLogPath() string {
	return filepath.Join(CflagsDirName, DaemonLogFile)
}
