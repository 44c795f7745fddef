package fontref

import (
	"github.com/arthur-debert/fontproxy/pkg/errors"
	"github.com/arthur-debert/fontproxy/pkg/filesystem"
	"github.com/arthur-debert/fontproxy/pkg/fontname"
	"github.com/arthur-debert/fontproxy/pkg/logging"
	"github.com/arthur-debert/fontproxy/pkg/store"
	"github.com/rs/zerolog"
)

// Resolver converts font references between kinds. It reads the
// installed-font table, the filesystem and font data on every call.
type Resolver struct {
	layout    Layout
	fonts     store.Table
	fs        filesystem.FS
	extractor fontname.Extractor
	logger    zerolog.Logger
}

// NewResolver creates a Resolver over the installed-font table fonts.
func NewResolver(layout Layout, fonts store.Table, fs filesystem.FS, extractor fontname.Extractor) *Resolver {
	return &Resolver{
		layout:    layout,
		fonts:     fonts,
		fs:        fs,
		extractor: extractor,
		logger:    logging.GetLogger("fontref"),
	}
}

// conversion turns a reference of a known source kind into one target kind
type conversion func(r *Resolver, raw string) (string, error)

// conversions is indexed [source][target]. A nil cell has no rule.
// It is filled in init because SearchFont resolves references itself.
var conversions [kindCount][kindCount]conversion

func init() {
	conversions = [kindCount][kindCount]conversion{
		FaceName: {
			FaceName:          identity,
			FontFileName:      (*Resolver).installedFileOf,
			InstalledFontPath: (*Resolver).installedPathOf,
		},
		FontFileName: {
			FaceName:          (*Resolver).reverseSearch,
			FontFileName:      identity,
			InstalledFontPath: (*Resolver).fileNameToInstalled,
		},
		InstalledFontPath: {
			FaceName:          (*Resolver).FamilyAt,
			FontFileName:      baseName,
			InstalledFontPath: identity,
		},
		UninstalledFontPath: {
			FaceName:            (*Resolver).FamilyAt,
			FontFileName:        baseName,
			InstalledFontPath:   (*Resolver).replacementPath,
			UninstalledFontPath: identity,
		},
	}
}

// Layout returns the font directory layout the resolver classifies against
func (r *Resolver) Layout() Layout {
	return r.layout
}

// Kind classifies raw against the resolver's layout
func (r *Resolver) Kind(raw string) Kind {
	return r.layout.Classify(raw)
}

// Resolve converts raw into the target kind.
func (r *Resolver) Resolve(raw string, target Kind) (string, error) {
	if target < 0 || target >= kindCount {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown target kind %d", int(target))
	}
	source := r.layout.Classify(raw)
	convert := conversions[source][target]
	if convert == nil {
		return "", errors.Newf(errors.ErrInvalidConversion, "no conversion from %s to %s", source, target).
			WithDetail("source", source.String()).
			WithDetail("target", target.String())
	}

	out, err := convert(r, raw)
	if err != nil {
		return "", err
	}
	r.logger.Trace().
		Str("input", raw).
		Stringer("from", source).
		Stringer("to", target).
		Str("output", out).
		Msg("Reference resolved")
	return out, nil
}

// FamilyAt reads the font file at path and returns its declared family name.
func (r *Resolver) FamilyAt(path string) (string, error) {
	if !r.fs.Exists(path) {
		return "", errors.Newf(errors.ErrFontRead, "font file %s does not exist", path).WithDetail("path", path)
	}
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFontRead, "cannot read font file %s", path).WithDetail("path", path)
	}
	family, err := r.extractor.ExtractFamilyName(data)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrFontRead) {
			return "", err
		}
		return "", errors.Wrapf(err, errors.ErrFontRead, "cannot extract family name from %s", path).WithDetail("path", path)
	}
	return family, nil
}

func identity(_ *Resolver, raw string) (string, error) {
	return raw, nil
}

func baseName(_ *Resolver, raw string) (string, error) {
	return Base(raw), nil
}

func (r *Resolver) installedFileOf(face string) (string, error) {
	_, file, ok, err := store.GetFold(r.fonts, face)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.Newf(errors.ErrUnresolvableReference, "face %q is not in the installed font table", face).
			WithDetail("reference", face)
	}
	return file, nil
}

func (r *Resolver) installedPathOf(face string) (string, error) {
	file, err := r.installedFileOf(face)
	if err != nil {
		return "", err
	}
	return r.layout.InstalledPath(file), nil
}

// reverseSearch finds the face an installed file name belongs to
func (r *Resolver) reverseSearch(file string) (string, error) {
	face, err := r.SearchFont(file)
	if errors.IsErrorCode(err, errors.ErrNotFound) {
		return "", errors.Wrapf(err, errors.ErrUnresolvableReference, "no installed face matches %q", file).
			WithDetail("reference", file)
	}
	return face, err
}

func (r *Resolver) fileNameToInstalled(file string) (string, error) {
	return r.layout.InstalledPath(file), nil
}

// replacementPath is where an outside font file lands when it replaces an
// installed face: its stem gets CustomFontPrefix appended.
func (r *Resolver) replacementPath(path string) (string, error) {
	return r.layout.InstalledPath(Stem(path) + CustomFontPrefix + Ext(path)), nil
}
