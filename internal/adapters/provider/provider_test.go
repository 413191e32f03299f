package provider_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cflags/internal/adapters/provider"
	"go.trai.ch/cflags/internal/core/domain"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(dir))
}

func TestProvider_FlagsForFile_Layout(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	p := provider.New()
	cfg, err := p.FlagsForFile(filepath.Join(tmpDir, "src", "foo.cpp"))
	require.NoError(t, err)

	// Symlinked temp dirs (macOS) make tmpDir and Getwd disagree, so resolve
	// the expectation the same way the provider does.
	cwd, err := os.Getwd()
	require.NoError(t, err)

	expected := []string{
		"-Wall", "-Wextra", "-x", "c++", "-std=c++14",
		"-I", filepath.Join(cwd, "include"),
		"-I", filepath.Join(cwd, "build", "include"),
		"-I", filepath.Join(cwd, "build", "target"),
	}
	assert.Equal(t, expected, cfg.Flags)
	assert.True(t, cfg.DoCache)
}

func TestProvider_FlagsForFile_FilenameIgnored(t *testing.T) {
	chdir(t, t.TempDir())

	p := provider.New()

	inputs := []string{
		"",
		"src/foo.cpp",
		"/absolute/path/bar.cc",
		"does-not-exist.hpp",
		"not-even-c++.py",
	}

	var first domain.FlagConfiguration
	for i, name := range inputs {
		cfg, err := p.FlagsForFile(name)
		require.NoError(t, err, "input %q", name)
		require.True(t, cfg.DoCache)
		if i == 0 {
			first = cfg
			continue
		}
		assert.True(t, first.Equal(cfg), "configuration for %q differs", name)
	}
}

func TestProvider_FlagsForFile_Idempotent(t *testing.T) {
	chdir(t, t.TempDir())

	p := provider.New()
	a, err := p.FlagsForFile("a.cpp")
	require.NoError(t, err)
	b, err := p.FlagsForFile("b.cpp")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestProvider_FlagsForFile_TracksWorkingDir(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	p := provider.New()

	chdir(t, dirA)
	cfgA, err := p.FlagsForFile("main.cpp")
	require.NoError(t, err)

	require.NoError(t, os.Chdir(dirB))
	cfgB, err := p.FlagsForFile("main.cpp")
	require.NoError(t, err)

	// Same relative structure, different roots.
	assert.False(t, cfgA.Equal(cfgB))
	assert.Len(t, cfgA.Flags, len(cfgB.Flags))

	cwdB, err := os.Getwd()
	require.NoError(t, err)
	assert.Contains(t, cfgB.Flags, filepath.Join(cwdB, "include"))
}

func TestProvider_FlagsForFile_GetwdFailure(t *testing.T) {
	p := provider.NewWithGetwd(func() (string, error) {
		return "", os.ErrPermission
	})

	_, err := p.FlagsForFile("main.cpp")
	require.Error(t, err)
}

func TestProvider_FlagsForFile_DoesNotAliasBaseFlags(t *testing.T) {
	chdir(t, t.TempDir())

	p := provider.New()
	cfg, err := p.FlagsForFile("main.cpp")
	require.NoError(t, err)

	cfg.Flags[0] = "-Wmutated"

	again, err := p.FlagsForFile("main.cpp")
	require.NoError(t, err)
	assert.Equal(t, "-Wall", again.Flags[0])
	assert.Equal(t, "-Wall", domain.BaseFlags[0])
}
