// Package fontname extracts the declared family name from raw font data.
package fontname

import (
	"bytes"

	"github.com/arthur-debert/fontproxy/pkg/errors"
	"golang.org/x/image/font/sfnt"
)

// Extractor returns the family name a font file declares.
type Extractor interface {
	ExtractFamilyName(data []byte) (string, error)
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc func(data []byte) (string, error)

// ExtractFamilyName calls f(data).
func (f ExtractorFunc) ExtractFamilyName(data []byte) (string, error) {
	return f(data)
}

// collectionTag starts every TrueType/OpenType collection (.ttc)
var collectionTag = []byte("ttcf")

// SFNT reads the family name from the OpenType 'name' table.
type SFNT struct{}

// NewSFNT returns an Extractor backed by golang.org/x/image/font/sfnt.
func NewSFNT() Extractor {
	return SFNT{}
}

// ExtractFamilyName parses data as a single font or, when it starts with the
// collection tag, as a collection whose first font names the family.
func (SFNT) ExtractFamilyName(data []byte) (string, error) {
	f, err := parse(data)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFontRead, "cannot parse font data")
	}
	return FamilyName(f)
}

// FamilyName returns the legacy family name (name ID 1), falling back to the
// typographic family name (name ID 16).
func FamilyName(f *sfnt.Font) (string, error) {
	var buf sfnt.Buffer
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDTypographicFamily} {
		name, err := f.Name(&buf, id)
		if err == nil && name != "" {
			return name, nil
		}
	}
	return "", errors.New(errors.ErrFontRead, "font declares no family name")
}

func parse(data []byte) (*sfnt.Font, error) {
	if !bytes.HasPrefix(data, collectionTag) {
		return sfnt.Parse(data)
	}
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if c.NumFonts() == 0 {
		return nil, errors.New(errors.ErrFontRead, "empty font collection")
	}
	return c.Font(0)
}

// ParseAll returns every font contained in data, one for a plain font file
// and one per member for a collection.
func ParseAll(data []byte) ([]*sfnt.Font, error) {
	if !bytes.HasPrefix(data, collectionTag) {
		f, err := sfnt.Parse(data)
		if err != nil {
			return nil, err
		}
		return []*sfnt.Font{f}, nil
	}
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	fonts := make([]*sfnt.Font, 0, c.NumFonts())
	for i := 0; i < c.NumFonts(); i++ {
		f, err := c.Font(i)
		if err != nil {
			return nil, err
		}
		fonts = append(fonts, f)
	}
	return fonts, nil
}
