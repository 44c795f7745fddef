package proxy

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/fontproxy/pkg/fontref"
	"github.com/arthur-debert/fontproxy/pkg/store"
)

// FontStatus is the state a face is in as far as fontproxy can tell.
type FontStatus int

const (
	// StatusUnknown means the face is in neither table or could not be resolved
	StatusUnknown FontStatus = iota
	// StatusReplaced means the face is backed by a file installed through Replace
	StatusReplaced
	// StatusRedirected means requests for the face go to another face
	StatusRedirected
	// StatusOriginal means the face is backed by its original file
	StatusOriginal
)

var statusNames = map[FontStatus]string{
	StatusUnknown:    "Unknown",
	StatusReplaced:   "Replaced",
	StatusRedirected: "Redirected",
	StatusOriginal:   "Original",
}

func (s FontStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("FontStatus(%d)", int(s))
}

// MarshalText renders the status by name
func (s FontStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StatusReport explains how a status was reached.
type StatusReport struct {
	Reference string     `json:"reference" yaml:"reference"`
	Face      string     `json:"face,omitempty" yaml:"face,omitempty"`
	Status    FontStatus `json:"status" yaml:"status"`

	// RedirectedTo is the substitute face of a redirected face
	RedirectedTo string `json:"redirected_to,omitempty" yaml:"redirected_to,omitempty"`

	// FontKey and FontFile are the installed-font entry that decided the status
	FontKey  string `json:"font_key,omitempty" yaml:"font_key,omitempty"`
	FontFile string `json:"font_file,omitempty" yaml:"font_file,omitempty"`

	// Reason is set when the reference could not be resolved to a face
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// GetFontStatus classifies reference. A redirection always wins over an
// installed-font entry. With searchMode the first installed face containing
// the name decides; otherwise only an exact, case-insensitive key does.
// Any failure yields StatusUnknown.
func (p *Proxy) GetFontStatus(reference string, searchMode bool) FontStatus {
	report, err := p.Report(reference, searchMode)
	if err != nil {
		p.logger.Debug().Err(err).Str("reference", reference).Msg("Status lookup failed")
		return StatusUnknown
	}
	return report.Status
}

// Report computes the status of reference along with the table entries
// behind it. It only fails when a table cannot be read; an unresolvable
// reference is reported as StatusUnknown with a Reason.
func (p *Proxy) Report(reference string, searchMode bool) (StatusReport, error) {
	report := StatusReport{Reference: reference, Status: StatusUnknown}

	face, err := p.statusFace(reference)
	if err != nil {
		report.Reason = err.Error()
		return report, nil
	}
	report.Face = face

	key, target, ok, err := store.GetFold(p.subs, face)
	if err != nil {
		return report, err
	}
	if ok {
		report.Status = StatusRedirected
		report.FontKey = key
		report.RedirectedTo = target
		return report, nil
	}

	key, file, ok, err := p.installedEntry(face, searchMode)
	if err != nil {
		return report, err
	}
	if !ok {
		return report, nil
	}
	report.FontKey = key
	report.FontFile = file
	if strings.Contains(strings.ToLower(file), strings.ToLower(fontref.CustomFontPrefix)) {
		report.Status = StatusReplaced
	} else {
		report.Status = StatusOriginal
	}
	return report, nil
}

// statusFace reduces a reference to a face name. File names are read from
// the font directory; paths are read where they are.
func (p *Proxy) statusFace(reference string) (string, error) {
	switch kind := p.resolver.Kind(reference); kind {
	case fontref.FontFileName:
		return p.resolver.FamilyAt(p.layout.InstalledPath(reference))
	case fontref.InstalledFontPath, fontref.UninstalledFontPath:
		return p.resolver.FamilyAt(reference)
	default:
		return reference, nil
	}
}

func (p *Proxy) installedEntry(face string, searchMode bool) (string, string, bool, error) {
	if !searchMode {
		return store.GetFold(p.fonts, face)
	}

	needle := strings.ToLower(face)
	keys, err := p.fonts.Keys()
	if err != nil {
		return "", "", false, err
	}
	for _, key := range keys {
		if !strings.Contains(strings.ToLower(key), needle) {
			continue
		}
		file, ok, err := p.fonts.Get(key)
		if err != nil {
			return "", "", false, err
		}
		if ok {
			return key, file, true, nil
		}
	}
	return "", "", false, nil
}
