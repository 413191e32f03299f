// Package provider implements the flag provider adapter.
//
// The provider answers every query with the same configuration: the base
// warning and language-standard flags followed by `-I` pairs for the
// project's include directories, resolved to absolute paths against the
// working directory at call time. Completion-engine hosts call this once per
// file they parse; the do_cache marker tells them the answer is safe to
// memoize.
package provider

import (
	"os"
	"path/filepath"

	"go.trai.ch/cflags/internal/core/domain"
	"go.trai.ch/zerr"
)

// Provider implements ports.FlagProvider.
type Provider struct {
	// getwd is swappable for tests. Defaults to os.Getwd.
	getwd func() (string, error)
}

// New creates a new Provider.
func New() *Provider {
	return &Provider{getwd: os.Getwd}
}

// NewWithGetwd creates a Provider with a custom working-directory lookup.
// Used by tests to simulate an unresolvable working directory.
func NewWithGetwd(getwd func() (string, error)) *Provider {
	return &Provider{getwd: getwd}
}

// FlagsForFile returns the flag configuration for the given source file.
//
// The filename is part of the host contract but is intentionally ignored:
// every file in the project receives identical flags, regardless of path,
// extension or existence. Nothing about the argument is validated, so the
// only failure mode is an unresolvable working directory.
func (p *Provider) FlagsForFile(_ string) (domain.FlagConfiguration, error) {
	cwd, err := p.getwd()
	if err != nil {
		return domain.FlagConfiguration{}, zerr.Wrap(err, domain.ErrWorkingDirUnavailable.Error())
	}

	flags := make([]string, 0, len(domain.BaseFlags)+2*len(domain.IncludeDirs))
	flags = append(flags, domain.BaseFlags...)

	for _, dir := range domain.IncludeDirs {
		// Stat-free resolution: missing directories are tolerated here and
		// surface, if at all, as missing headers in the host's own parser.
		flags = append(flags, "-I", filepath.Join(cwd, dir))
	}

	return domain.FlagConfiguration{
		Flags:   flags,
		DoCache: true,
	}, nil
}
