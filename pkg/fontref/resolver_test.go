// pkg/fontref/resolver_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: In-memory filesystem, memory store, Go fonts
// PURPOSE: Cover every cell of the conversion table and font search

package fontref_test

import (
	"testing"

	"github.com/arthur-debert/fontproxy/pkg/errors"
	"github.com/arthur-debert/fontproxy/pkg/filesystem"
	"github.com/arthur-debert/fontproxy/pkg/fontname"
	"github.com/arthur-debert/fontproxy/pkg/fontref"
	"github.com/arthur-debert/fontproxy/pkg/store"
	"github.com/arthur-debert/fontproxy/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fontDir = "/fonts/"

func newResolver(t *testing.T) (*fontref.Resolver, store.Table, filesystem.FS) {
	t.Helper()

	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.InstallFont("Courier New", "cour.ttf", nil)
	env.InstallFont(testutil.RegularFamily, "go.ttf", testutil.RegularTTF)
	env.PlaceFont("bad.ttf", testutil.GarbageTTF)
	env.WriteFile("/home/user/mono.ttf", testutil.MonoTTF)

	r := fontref.NewResolver(env.Layout, env.Fonts(), env.FS, fontname.NewSFNT())
	return r, env.Fonts(), env.FS
}

func TestResolve_Identity(t *testing.T) {
	r, _, _ := newResolver(t)

	refs := []string{"Courier New", "cour.ttf", fontDir + "go.ttf", "/home/user/mono.ttf", "ab"}
	for _, raw := range refs {
		t.Run(raw, func(t *testing.T) {
			got, err := r.Resolve(raw, r.Kind(raw))
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		})
	}
}

func TestResolve_Table(t *testing.T) {
	r, _, _ := newResolver(t)

	tests := []struct {
		name    string
		raw     string
		target  fontref.Kind
		want    string
		errCode errors.ErrorCode
	}{
		// face name row
		{"face to file", "Courier New", fontref.FontFileName, "cour.ttf", ""},
		{"face to file ignores case", "courier new", fontref.FontFileName, "cour.ttf", ""},
		{"face to installed", "Courier New", fontref.InstalledFontPath, fontDir + "cour.ttf", ""},
		{"unknown face to file", "Wingdings", fontref.FontFileName, "", errors.ErrUnresolvableReference},
		{"unknown face to installed", "Wingdings", fontref.InstalledFontPath, "", errors.ErrUnresolvableReference},
		{"face to uninstalled", "Courier New", fontref.UninstalledFontPath, "", errors.ErrInvalidConversion},

		// file name row
		{"file to face by stem", "cour.ttf", fontref.FaceName, "Courier New", ""},
		{"file to face by declared family", "go.ttf", fontref.FaceName, "Go", ""},
		{"unknown file to face", "zzz.ttf", fontref.FaceName, "", errors.ErrUnresolvableReference},
		{"file to installed", "cour.ttf", fontref.InstalledFontPath, fontDir + "cour.ttf", ""},
		{"file to uninstalled", "cour.ttf", fontref.UninstalledFontPath, "", errors.ErrInvalidConversion},

		// installed path row
		{"installed to face", fontDir + "go.ttf", fontref.FaceName, "Go", ""},
		{"installed to file", fontDir + "go.ttf", fontref.FontFileName, "go.ttf", ""},
		{"missing installed to face", fontDir + "missing.ttf", fontref.FaceName, "", errors.ErrFontRead},
		{"garbage installed to face", fontDir + "bad.ttf", fontref.FaceName, "", errors.ErrFontRead},
		{"installed to uninstalled", fontDir + "go.ttf", fontref.UninstalledFontPath, "", errors.ErrInvalidConversion},

		// uninstalled path row
		{"uninstalled to face", "/home/user/mono.ttf", fontref.FaceName, "Go Mono", ""},
		{"uninstalled to file", "/home/user/mono.ttf", fontref.FontFileName, "mono.ttf", ""},
		{"uninstalled to installed", "/home/user/mono.ttf", fontref.InstalledFontPath, fontDir + "mono_force.ttf", ""},
		{"missing uninstalled to face", "/home/user/gone.ttf", fontref.FaceName, "", errors.ErrFontRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.raw, tt.target)
			if tt.errCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_InvalidConversionDetails(t *testing.T) {
	r, _, _ := newResolver(t)

	_, err := r.Resolve("Courier New", fontref.UninstalledFontPath)
	require.Error(t, err)
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "FaceName", details["source"])
	assert.Equal(t, "UninstalledFontPath", details["target"])
}

func TestResolve_UnknownTarget(t *testing.T) {
	r, _, _ := newResolver(t)

	_, err := r.Resolve("Courier New", fontref.Kind(9))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestResolve_WindowsLayout(t *testing.T) {
	fonts := store.NewMemory().Table(store.Fonts)
	require.NoError(t, fonts.Set("Arial", "arial.ttf"))
	r := fontref.NewResolver(fontref.NewLayout(`C:\Windows\Fonts`), fonts, filesystem.NewMemory(), fontname.NewSFNT())

	path, err := r.Resolve("Arial", fontref.InstalledFontPath)
	require.NoError(t, err)
	assert.Equal(t, `C:\Windows\Fonts\arial.ttf`, path)
	assert.Equal(t, fontref.InstalledFontPath, r.Kind(path))

	file, err := r.Resolve(path, fontref.FontFileName)
	require.NoError(t, err)
	assert.Equal(t, "arial.ttf", file)

	replaced, err := r.Resolve(`D:\new\arial.ttf`, fontref.InstalledFontPath)
	require.NoError(t, err)
	assert.Equal(t, `C:\Windows\Fonts\arial_force.ttf`, replaced)
}

func TestSearchFont(t *testing.T) {
	r, fonts, fs := newResolver(t)
	require.NoError(t, fonts.Set("Arial", "arial.ttf"))
	require.NoError(t, fs.WriteFile(fontDir+"renamed.ttf", testutil.RegularTTF, 0644))

	tests := []struct {
		name    string
		query   string
		want    string
		errCode errors.ErrorCode
	}{
		{"substring of face", "cour", "Courier New", ""},
		{"upper case query", "COURIER", "Courier New", ""},
		{"substring of file", "arial.t", "Arial", ""},
		{"file name compared without extension", "cour.ttf", "Courier New", ""},
		{"family hint from installed file", "renamed.ttf", "Go", ""},
		{"no match", "helvetica", "", errors.ErrNotFound},
		{"empty query", "  ", "", errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.SearchFont(tt.query)
			if tt.errCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchFont_FirstMatchWins(t *testing.T) {
	fonts := store.NewMemory().Table(store.Fonts)
	require.NoError(t, fonts.Set("Arial Black", "ariblk.ttf"))
	require.NoError(t, fonts.Set("Arial", "arial.ttf"))
	r := fontref.NewResolver(fontref.NewLayout(fontDir), fonts, filesystem.NewMemory(), fontname.NewSFNT())

	got, err := r.SearchFont("arial")
	require.NoError(t, err)
	assert.Equal(t, "Arial Black", got)
}

func TestInspect(t *testing.T) {
	r, _, _ := newResolver(t)

	in := r.Inspect("Courier New")
	assert.Equal(t, "Courier New", in.Input)
	assert.Equal(t, fontref.FaceName, in.Kind)
	require.Len(t, in.Conversions, len(fontref.Kinds))

	assert.Equal(t, "Courier New", in.Conversions[fontref.FaceName].Value)
	assert.Equal(t, "cour.ttf", in.Conversions[fontref.FontFileName].Value)
	assert.Equal(t, fontDir+"cour.ttf", in.Conversions[fontref.InstalledFontPath].Value)
	assert.Empty(t, in.Conversions[fontref.UninstalledFontPath].Value)
	assert.NotEmpty(t, in.Conversions[fontref.UninstalledFontPath].Error)
}
