package fontref

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/fontproxy/pkg/paths"
)

// Kind is the representation a font reference is written in.
type Kind int

const (
	// FaceName is a human-readable family name such as "Times New Roman"
	FaceName Kind = iota
	// FontFileName is a bare file name with a known font extension
	FontFileName
	// InstalledFontPath is an absolute path inside the system font directory
	InstalledFontPath
	// UninstalledFontPath is an absolute path outside the system font directory
	UninstalledFontPath

	kindCount
)

// Kinds lists every kind in classification table order
var Kinds = []Kind{FaceName, FontFileName, InstalledFontPath, UninstalledFontPath}

// CustomFontPrefix marks the base name of a file installed by a replacement.
// Its presence in an installed-font table value is what distinguishes a
// replaced face from an original one.
const CustomFontPrefix = "_force"

// DefaultExtensions are the font file extensions recognised out of the box
var DefaultExtensions = []string{".otf", ".ttf", ".ttc"}

var kindNames = [kindCount]string{
	FaceName:            "FaceName",
	FontFileName:        "FontFileName",
	InstalledFontPath:   "InstalledFontPath",
	UninstalledFontPath: "UninstalledFontPath",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText renders the kind by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind accepts a kind name, case-insensitively, with or without the
// "Font" infix ("installedpath" and "InstalledFontPath" are equivalent).
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for _, k := range Kinds {
		name := strings.ToLower(k.String())
		if norm == name || norm == strings.Replace(name, "font", "", 1) {
			return k, nil
		}
	}
	switch norm {
	case "face", "family":
		return FaceName, nil
	case "file":
		return FontFileName, nil
	}
	return FaceName, fmt.Errorf("unknown reference kind: %s", s)
}

// Layout describes where the system keeps its fonts.
type Layout struct {
	// FontDir always ends with a path separator
	FontDir    string
	Extensions []string
}

// NewLayout returns a Layout for fontDir. Without extensions the defaults
// are used.
func NewLayout(fontDir string, extensions ...string) Layout {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return Layout{
		FontDir:    paths.WithTrailingSeparator(fontDir),
		Extensions: extensions,
	}
}

// Classify returns the kind of raw. It is total: every string is exactly one
// kind. Checks run in order: uninstalled path, installed path, file name,
// with face name as the fallback.
func (l Layout) Classify(raw string) Kind {
	if len(raw) < 3 {
		return FaceName
	}
	installed := l.inFontDir(raw)
	if !installed && isAbsolute(raw) {
		return UninstalledFontPath
	}
	if installed {
		return InstalledFontPath
	}
	if l.hasFontExtension(raw) && raw[1] != ':' {
		return FontFileName
	}
	return FaceName
}

// InstalledPath joins a file name onto the font directory
func (l Layout) InstalledPath(fileName string) string {
	return l.FontDir + fileName
}

func (l Layout) inFontDir(raw string) bool {
	return l.FontDir != "" && strings.HasPrefix(raw, l.FontDir)
}

func (l Layout) hasFontExtension(raw string) bool {
	ext := strings.ToLower(Ext(raw))
	for _, known := range l.Extensions {
		if ext == strings.ToLower(known) {
			return true
		}
	}
	return false
}

// isAbsolute accepts drive-letter paths ("C:...") and rooted paths
func isAbsolute(raw string) bool {
	return raw[1] == ':' || raw[0] == '/' || raw[0] == '\\'
}

// Base returns the last element of a slash or backslash separated path
func Base(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Ext returns the extension of the last path element, including the dot
func Ext(path string) string {
	base := Base(path)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return base[i:]
	}
	return ""
}

// Stem returns the last path element without its extension
func Stem(path string) string {
	base := Base(path)
	return strings.TrimSuffix(base, Ext(base))
}
