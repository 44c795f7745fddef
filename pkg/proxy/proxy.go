package proxy

import (
	"github.com/arthur-debert/fontproxy/pkg/enumerate"
	"github.com/arthur-debert/fontproxy/pkg/errors"
	"github.com/arthur-debert/fontproxy/pkg/filesystem"
	"github.com/arthur-debert/fontproxy/pkg/fontname"
	"github.com/arthur-debert/fontproxy/pkg/fontref"
	"github.com/arthur-debert/fontproxy/pkg/logging"
	"github.com/arthur-debert/fontproxy/pkg/reboot"
	"github.com/arthur-debert/fontproxy/pkg/store"
	"github.com/rs/zerolog"
)

// Options holds the collaborators of a Proxy. Layout, Store and FS are
// required.
type Options struct {
	Layout     fontref.Layout
	Store      store.Store
	FS         filesystem.FS
	Extractor  fontname.Extractor
	Enumerator enumerate.Enumerator
	Rebooter   reboot.Rebooter
}

// Proxy performs font redirections, replacements and installations.
type Proxy struct {
	layout     fontref.Layout
	subs       store.Table
	fonts      store.Table
	fs         filesystem.FS
	resolver   *fontref.Resolver
	enumerator enumerate.Enumerator
	rebooter   reboot.Rebooter
	logger     zerolog.Logger
}

// Outcome describes what a mutation did. Changed is false when the call
// was a no-op.
type Outcome struct {
	Changed bool   `json:"changed" yaml:"changed"`
	Detail  string `json:"detail" yaml:"detail"`
}

// New creates a Proxy. A nil Extractor defaults to the sfnt extractor and a
// nil Rebooter to one that does nothing.
func New(opts Options) *Proxy {
	if opts.Extractor == nil {
		opts.Extractor = fontname.NewSFNT()
	}
	if opts.Rebooter == nil {
		opts.Rebooter = reboot.Noop{}
	}
	fonts := opts.Store.Table(store.Fonts)
	return &Proxy{
		layout:     opts.Layout,
		subs:       opts.Store.Table(store.Substitutes),
		fonts:      fonts,
		fs:         opts.FS,
		resolver:   fontref.NewResolver(opts.Layout, fonts, opts.FS, opts.Extractor),
		enumerator: opts.Enumerator,
		rebooter:   opts.Rebooter,
		logger:     logging.GetLogger("proxy"),
	}
}

// Resolver returns the reference resolver bound to the installed-font table
func (p *Proxy) Resolver() *fontref.Resolver {
	return p.resolver
}

// Redirect makes the system answer requests for original with target when
// enable is set, and removes that redirection otherwise. Both references
// are resolved to face names first.
func (p *Proxy) Redirect(original, target string, enable bool) (Outcome, error) {
	done := logging.LogOperationStart(p.logger, "redirect")
	defer done()

	from, err := p.faceName(original)
	if err != nil {
		return Outcome{}, err
	}
	to, err := p.faceName(target)
	if err != nil {
		return Outcome{}, err
	}

	// an existing entry keeps the spelling it was stored under
	key, previous, existed, err := store.GetFold(p.subs, from)
	if err != nil {
		return Outcome{}, err
	}
	if existed {
		from = key
	}

	var out Outcome
	if enable {
		if err := p.subs.Set(from, to); err != nil {
			return Outcome{}, err
		}
		out = Outcome{Changed: !existed || previous != to, Detail: from + " -> " + to}
	} else {
		if err := p.subs.Delete(from); err != nil {
			return Outcome{}, err
		}
		out = Outcome{Changed: existed, Detail: from + " restored"}
	}

	p.logger.Info().
		Str("original", from).
		Str("target", to).
		Bool("enable", enable).
		Bool("changed", out.Changed).
		Msg("Redirection updated")
	p.rebooter.Reboot()
	return out, nil
}

// Replace points the installed face original at the font named by newRef.
//
// A bare file name must already exist in the font directory. A path outside
// the font directory is copied in under its stem plus fontref.CustomFontPrefix;
// an existing copy is never overwritten.
func (p *Proxy) Replace(original, newRef string) (Outcome, error) {
	done := logging.LogOperationStart(p.logger, "replace")
	defer done()

	face, err := p.faceName(original)
	if err != nil {
		return Outcome{}, err
	}

	var (
		file   string
		copied bool
	)
	switch p.resolver.Kind(newRef) {
	case fontref.FontFileName:
		if !p.fs.Exists(p.layout.InstalledPath(newRef)) {
			return Outcome{}, errors.Newf(errors.ErrInvalidTarget, "font file %s is not in %s", newRef, p.layout.FontDir).
				WithDetail("target", newRef)
		}
	case fontref.UninstalledFontPath:
		dest, err := p.resolver.Resolve(newRef, fontref.InstalledFontPath)
		if err != nil {
			return Outcome{}, err
		}
		copied, err = p.fs.Copy(newRef, dest)
		if err != nil {
			return Outcome{}, errors.Wrapf(err, errors.ErrFileCopy, "cannot copy %s to %s", newRef, dest).
				WithDetail("from", newRef).
				WithDetail("to", dest)
		}
		// the table must name the marked copy, not the source
		newRef = dest
	}

	file, err = p.resolver.Resolve(newRef, fontref.FontFileName)
	if err != nil {
		return Outcome{}, err
	}

	key, previous, existed, err := store.GetFold(p.fonts, face)
	if err != nil {
		return Outcome{}, err
	}
	if existed {
		face = key
	}
	if err := p.fonts.Set(face, file); err != nil {
		return Outcome{}, err
	}

	p.logger.Info().
		Str("face", face).
		Str("file", file).
		Bool("copied", copied).
		Msg("Font replaced")
	p.rebooter.Reboot()
	return Outcome{
		Changed: copied || !existed || previous != file,
		Detail:  face + " -> " + file,
	}, nil
}

// Install copies a font file from outside the font directory into it and
// registers the family it declares. Anything that is not such a path, and
// any file whose name is already taken in the font directory, is left alone.
func (p *Proxy) Install(path string) (Outcome, error) {
	done := logging.LogOperationStart(p.logger, "install")
	defer done()

	if kind := p.resolver.Kind(path); kind != fontref.UninstalledFontPath {
		p.logger.Debug().Str("path", path).Stringer("kind", kind).Msg("Not an uninstalled font, skipping")
		return Outcome{Detail: path + " is not a font file outside " + p.layout.FontDir}, nil
	}

	base := fontref.Base(path)
	dest := p.layout.InstalledPath(base)
	if p.fs.Exists(dest) {
		p.logger.Debug().Str("path", dest).Msg("Font file already installed")
		return Outcome{Detail: base + " is already installed"}, nil
	}

	copied, err := p.fs.Copy(path, dest)
	if err != nil {
		return Outcome{}, errors.Wrapf(err, errors.ErrFileCopy, "cannot copy %s to %s", path, dest).
			WithDetail("from", path).
			WithDetail("to", dest)
	}

	family, err := p.resolver.FamilyAt(path)
	if err != nil {
		return Outcome{}, err
	}
	if err := p.fonts.Set(family, base); err != nil {
		return Outcome{}, err
	}

	p.logger.Info().Str("family", family).Str("file", base).Bool("copied", copied).Msg("Font installed")
	p.rebooter.Reboot()
	return Outcome{Changed: true, Detail: family + " -> " + base}, nil
}

// InstallAll installs every path in order and stops at the first failure.
// It returns how many installations changed anything.
func (p *Proxy) InstallAll(paths []string) (int, error) {
	installed := 0
	for _, path := range paths {
		out, err := p.Install(path)
		if err != nil {
			return installed, err
		}
		if out.Changed {
			installed++
		}
	}
	return installed, nil
}

// faceName resolves a reference to a face name. Every failure is reported
// as an unresolvable reference, wrapping the cause.
func (p *Proxy) faceName(ref string) (string, error) {
	face, err := p.resolver.Resolve(ref, fontref.FaceName)
	if err == nil {
		return face, nil
	}
	if errors.IsErrorCode(err, errors.ErrUnresolvableReference) {
		return "", err
	}
	return "", errors.Wrapf(err, errors.ErrUnresolvableReference, "cannot resolve %q to a face name", ref).
		WithDetail("reference", ref)
}
