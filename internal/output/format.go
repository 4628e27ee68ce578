// Package output renders lastword results as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

// Output format constants.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatAuto Format = "auto"
)

// ANSI sequences used when color is enabled.
const (
	ansiBold  = "\033[1m"
	ansiReset = "\033[0m"
)

// Formatter writes command results in a resolved (never auto) format.
type Formatter struct {
	format Format
	writer io.Writer
	color  bool
}

// NewFormatter creates a formatter. An auto format is resolved against w.
func NewFormatter(format Format, w io.Writer) *Formatter {
	return &Formatter{
		format: DetectFormat(w, format),
		writer: w,
	}
}

// WithColor enables or disables ANSI emphasis for text output.
func (f *Formatter) WithColor(enabled bool) *Formatter {
	f.color = enabled && f.format == FormatText
	return f
}

// Format returns the current output format.
func (f *Formatter) Format() Format {
	return f.format
}

// Writer returns the output writer.
func (f *Formatter) Writer() io.Writer {
	return f.writer
}

// IsJSON returns true if the formatter outputs JSON.
func (f *Formatter) IsJSON() bool {
	return f.format == FormatJSON
}

// Emphasize wraps s in bold when color is enabled.
func (f *Formatter) Emphasize(s string) string {
	if !f.color {
		return s
	}
	return ansiBold + s + ansiReset
}

// JSON writes v as indented JSON.
func (f *Formatter) JSON(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Printf writes formatted text output.
func (f *Formatter) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(f.writer, format, args...)
	return err
}

// Println writes a line of text output.
func (f *Formatter) Println(args ...any) error {
	_, err := fmt.Fprintln(f.writer, args...)
	return err
}

// DetectFormat resolves auto to text on a terminal and JSON otherwise.
func DetectFormat(w io.Writer, explicit Format) Format {
	if explicit != FormatAuto && explicit != "" {
		return explicit
	}
	if IsTerminal(w) {
		return FormatText
	}
	return FormatJSON
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
}

// ParseFormat parses a format string. Unknown values mean auto.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatAuto
	}
}

// ColorEnabled resolves the output.color setting ("auto", "always", "never").
func ColorEnabled(setting string, w io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case "always":
		return true
	case "never":
		return false
	default:
		return IsTerminal(w)
	}
}
