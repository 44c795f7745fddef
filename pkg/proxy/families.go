package proxy

import (
	"github.com/arthur-debert/fontproxy/pkg/enumerate"
	"github.com/arthur-debert/fontproxy/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FindFamilies lists the distinct installed families covering charset,
// restricted to fixed-pitch faces when monospacedOnly is set. Names are
// sorted case-insensitively.
func (p *Proxy) FindFamilies(charset enumerate.Charset, monospacedOnly bool) ([]string, error) {
	if p.enumerator == nil {
		return nil, errors.New(errors.ErrNotImplemented, "font enumeration is not available")
	}
	names, err := p.enumerator.EnumerateFonts(charset, monospacedOnly)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(names))
	families := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		families = append(families, name)
	}

	collate.New(language.Und, collate.IgnoreCase).SortStrings(families)
	p.logger.Debug().
		Stringer("charset", charset).
		Bool("monospaced", monospacedOnly).
		Int("count", len(families)).
		Msg("Families enumerated")
	return families, nil
}
