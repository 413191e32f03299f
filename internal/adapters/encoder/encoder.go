// Package encoder renders flag configurations for the CLI and daemon.
//
// JSON is the host protocol format; YAML and text exist for humans poking at
// the tool. All formats carry the same `flags` / `do_cache` record.
package encoder

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/cflags/internal/core/domain"
	"go.trai.ch/cflags/internal/ui/output"
	"go.trai.ch/cflags/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Format identifies an output format.
type Format string

const (
	// FormatJSON emits the host-protocol JSON record.
	FormatJSON Format = "json"
	// FormatYAML emits a YAML rendering of the record.
	FormatYAML Format = "yaml"
	// FormatText emits a human-readable listing.
	FormatText Format = "text"
)

// ParseFormat validates a format string from the CLI.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML, FormatText:
		return Format(s), nil
	default:
		return "", zerr.With(domain.ErrUnknownFormat, "format", s)
	}
}

// Encoder writes flag configurations to an io.Writer.
type Encoder struct {
	format  Format
	compact bool
}

// New creates an Encoder for the given format.
func New(format Format) *Encoder {
	return &Encoder{format: format}
}

// WithCompact switches JSON output to a single line.
// Other formats are unaffected.
func (e *Encoder) WithCompact() *Encoder {
	e.compact = true
	return e
}

// Encode writes the configuration for filename to w.
func (e *Encoder) Encode(w io.Writer, filename string, cfg domain.FlagConfiguration) error {
	switch e.format {
	case FormatJSON:
		return e.encodeJSON(w, cfg)
	case FormatYAML:
		return e.encodeYAML(w, cfg)
	case FormatText:
		return e.encodeText(w, filename, cfg)
	default:
		return zerr.With(domain.ErrUnknownFormat, "format", string(e.format))
	}
}

func (e *Encoder) encodeJSON(w io.Writer, cfg domain.FlagConfiguration) error {
	enc := json.NewEncoder(w)
	if !e.compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(cfg); err != nil {
		return zerr.Wrap(err, "failed to encode configuration as JSON")
	}
	return nil
}

func (e *Encoder) encodeYAML(w io.Writer, cfg domain.FlagConfiguration) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return zerr.Wrap(err, "failed to encode configuration as YAML")
	}
	return enc.Close()
}

func (e *Encoder) encodeText(w io.Writer, filename string, cfg domain.FlagConfiguration) error {
	out := output.New(w)

	header := style.Dot + " " + filename
	if filename == "" {
		header = style.Dot + " (any file)"
	}

	var b strings.Builder
	b.WriteString(out.String(header).Foreground(termenv.RGBColor(string(style.Iris))).Bold().String())
	b.WriteString("\n")

	for _, flag := range cfg.Flags {
		b.WriteString("  ")
		b.WriteString(out.String(flag).Foreground(termenv.RGBColor(string(style.Slate))).String())
		b.WriteString("\n")
	}

	cache := style.Check + " cacheable"
	color := style.Green
	if !cfg.DoCache {
		cache = style.Cross + " not cacheable"
		color = style.Red
	}
	b.WriteString("  ")
	b.WriteString(out.String(cache).Foreground(termenv.RGBColor(string(color))).String())
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write text output")
	}
	return nil
}
