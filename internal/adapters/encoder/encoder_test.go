package encoder_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cflags/internal/adapters/encoder"
	"go.trai.ch/cflags/internal/core/domain"
)

// fixtureConfig is a synthetic configuration with a stable fake root so the
// golden files do not depend on the test machine.
func fixtureConfig() domain.FlagConfiguration {
	return domain.FlagConfiguration{
		Flags: []string{
			"-Wall", "-Wextra", "-x", "c++", "-std=c++14",
			"-I", "/proj/include",
			"-I", "/proj/build/include",
			"-I", "/proj/build/target",
		},
		DoCache: true,
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"json", "yaml", "text"} {
		f, err := encoder.ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(f))
	}

	_, err := encoder.ParseFormat("xml")
	require.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestEncoder_JSON_Golden(t *testing.T) {
	var buf bytes.Buffer
	err := encoder.New(encoder.FormatJSON).Encode(&buf, "/proj/src/foo.cpp", fixtureConfig())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "json_pretty", buf.Bytes())
}

func TestEncoder_JSON_Compact_Golden(t *testing.T) {
	var buf bytes.Buffer
	err := encoder.New(encoder.FormatJSON).WithCompact().Encode(&buf, "/proj/src/foo.cpp", fixtureConfig())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "json_compact", buf.Bytes())
}

func TestEncoder_YAML_Golden(t *testing.T) {
	var buf bytes.Buffer
	err := encoder.New(encoder.FormatYAML).Encode(&buf, "/proj/src/foo.cpp", fixtureConfig())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "yaml", buf.Bytes())
}

func TestEncoder_Text_Golden(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	err := encoder.New(encoder.FormatText).Encode(&buf, "/proj/src/foo.cpp", fixtureConfig())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "text", buf.Bytes())
}

func TestEncoder_Text_EmptyFilename(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	err := encoder.New(encoder.FormatText).Encode(&buf, "", fixtureConfig())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "(any file)")
}
