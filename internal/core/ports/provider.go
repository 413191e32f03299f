// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/cflags/internal/core/domain"

// FlagProvider answers the question "how should this file be parsed?".
//
// Implementations return the same configuration for every filename. The
// argument is part of the host contract but is never inspected, so every
// file in the project receives identical flags.
//
//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks
type FlagProvider interface {
	// FlagsForFile returns the flag configuration for the given source file.
	// The filename is accepted but never validated; the only failure mode is
	// an unresolvable working directory.
	FlagsForFile(filename string) (domain.FlagConfiguration, error)
}
