package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/fontproxy/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command results are written
type Format int

const (
	// FormatAuto picks terminal or text output for the destination
	FormatAuto Format = iota
	FormatTerminal
	FormatText
	FormatJSON
	FormatYAML
)

var formatNames = []string{"auto", "term", "text", "json", "yaml"}

// formatAliases are extra spellings accepted by ParseFormat
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"terminal": FormatTerminal,
	"plain":    FormatText,
	"yml":      FormatYAML,
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// FormatNames lists the canonical format names
func FormatNames() []string {
	return append([]string(nil), formatNames...)
}

// ParseFormat parses a format name or alias, ignoring case
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("format", s)
}

// DetectFormat resolves FormatAuto for w. Styled output needs a color
// capable terminal and no NO_COLOR; everything else gets plain text.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
