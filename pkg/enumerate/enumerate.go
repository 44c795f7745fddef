// Package enumerate lists the font families installed on the system,
// filtered by character set and pitch.
package enumerate

import (
	"os"

	"github.com/arthur-debert/fontproxy/pkg/fontname"
	"github.com/arthur-debert/fontproxy/pkg/logging"
	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Enumerator returns the distinct face names matching a charset, optionally
// restricted to fixed-pitch faces.
type Enumerator interface {
	EnumerateFonts(charset Charset, monospacedOnly bool) ([]string, error)
}

// pitchProbes must all share one advance width in a fixed-pitch face
var pitchProbes = []rune{'i', 'W', '.'}

// System enumerates the font files found in the platform font directories.
type System struct {
	// List returns candidate font file paths. Defaults to findfont.List.
	List func() []string

	// ReadFile defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

// NewSystem returns an Enumerator over the system font directories.
func NewSystem() *System {
	return &System{List: findfont.List, ReadFile: os.ReadFile}
}

// EnumerateFonts parses every listed font file and keeps the faces that pass
// the charset and pitch filters. Unreadable files are skipped.
func (s *System) EnumerateFonts(charset Charset, monospacedOnly bool) ([]string, error) {
	logger := logging.GetLogger("enumerate")
	seen := make(map[string]bool)
	var names []string

	for _, path := range s.List() {
		data, err := s.ReadFile(path)
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable font file")
			continue
		}
		fonts, err := fontname.ParseAll(data)
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("Skipping unparsable font file")
			continue
		}
		for _, f := range fonts {
			name, err := fontname.FamilyName(f)
			if err != nil || seen[name] {
				continue
			}
			if !Supports(f, charset) {
				continue
			}
			if monospacedOnly && !IsMonospaced(f) {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	logger.Debug().Int("count", len(names)).Str("charset", charset.String()).Bool("mono", monospacedOnly).Msg("Fonts enumerated")
	return names, nil
}

// Supports reports whether f maps every probe character of charset.
func Supports(f *sfnt.Font, charset Charset) bool {
	var buf sfnt.Buffer
	for _, r := range charset.Probes() {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			return false
		}
	}
	return true
}

// IsMonospaced reports whether the pitch probes share one advance width.
func IsMonospaced(f *sfnt.Font) bool {
	var buf sfnt.Buffer
	ppem := fixed.I(int(f.UnitsPerEm()))
	var first fixed.Int26_6
	for i, r := range pitchProbes {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil || idx == 0 {
			return false
		}
		adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			return false
		}
		if i == 0 {
			first = adv
		} else if adv != first {
			return false
		}
	}
	return true
}
