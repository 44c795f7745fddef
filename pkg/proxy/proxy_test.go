// pkg/proxy/proxy_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: In-memory filesystem, memory store, Go fonts
// PURPOSE: Verify redirect, replace and install transactions and their idempotence

package proxy

import (
	"testing"

	"github.com/arthur-debert/fontproxy/pkg/errors"
	"github.com/arthur-debert/fontproxy/pkg/filesystem"
	"github.com/arthur-debert/fontproxy/pkg/store"
	"github.com/arthur-debert/fontproxy/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fontDir = "/fonts/"

// countingFS records how many copies actually took place
type countingFS struct {
	filesystem.FS
	copies int
}

func (c *countingFS) Copy(from, to string) (bool, error) {
	copied, err := c.FS.Copy(from, to)
	if copied {
		c.copies++
	}
	return copied, err
}

type fixture struct {
	env     *testutil.TestEnvironment
	proxy   *Proxy
	fs      *countingFS
	subs    store.Table
	fonts   store.Table
	reboots *testutil.Counter
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.InstallFont("Arial", "arial.ttf", testutil.RegularTTF)
	env.InstallFont("Courier New", "cour.ttf", nil)
	env.InstallFont(testutil.RegularFamily, "go.ttf", testutil.RegularTTF)
	env.WriteFile(env.HomePath("mono.ttf"), testutil.MonoTTF)
	env.WriteFile(env.HomePath("arial.ttf"), testutil.RegularTTF)

	f := &fixture{
		env:     env,
		fs:      &countingFS{FS: env.FS},
		subs:    env.Substitutes(),
		fonts:   env.Fonts(),
		reboots: &testutil.Counter{},
	}
	f.proxy = New(Options{
		Layout:   env.Layout,
		Store:    env.Store,
		FS:       f.fs,
		Rebooter: f.reboots,
	})
	return f
}

func tableValue(t *testing.T, table store.Table, key string) string {
	t.Helper()
	v, ok, err := table.Get(key)
	require.NoError(t, err)
	require.True(t, ok, "missing key %q", key)
	return v
}

func TestRedirect(t *testing.T) {
	f := newFixture(t)

	out, err := f.proxy.Redirect("Arial", "Courier New", true)
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, "Courier New", tableValue(t, f.subs, "Arial"))

	out, err = f.proxy.Redirect("Arial", "Courier New", true)
	require.NoError(t, err)
	assert.False(t, out.Changed)

	out, err = f.proxy.Redirect("Arial", "Courier New", false)
	require.NoError(t, err)
	assert.True(t, out.Changed)
	_, ok, err := f.subs.Get("Arial")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 3, f.reboots.Count())
}

func TestRedirect_KeepsStoredKeySpelling(t *testing.T) {
	f := newFixture(t)

	_, err := f.proxy.Redirect("Arial", "Go", true)
	require.NoError(t, err)

	out, err := f.proxy.Redirect("ARIAL", "Courier New", true)
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, "Courier New", tableValue(t, f.subs, "Arial"))
	keys, err := f.subs.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"Arial"}, keys)

	out, err = f.proxy.Redirect("arial", "Go", false)
	require.NoError(t, err)
	assert.True(t, out.Changed)
	keys, err = f.subs.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Equal(t, StatusOriginal, f.proxy.GetFontStatus("Arial", false))
}

func TestRedirect_DisableAbsentIsNoop(t *testing.T) {
	f := newFixture(t)

	out, err := f.proxy.Redirect("Wingdings", "Arial", false)
	require.NoError(t, err)
	assert.False(t, out.Changed)
}

func TestRedirect_ResolvesReferences(t *testing.T) {
	f := newFixture(t)

	_, err := f.proxy.Redirect("/home/user/mono.ttf", fontDir+"go.ttf", true)
	require.NoError(t, err)
	assert.Equal(t, "Go", tableValue(t, f.subs, "Go Mono"))
}

func TestRedirect_Unresolvable(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		original string
		target   string
	}{
		{"missing original file", "/home/user/gone.ttf", "Arial"},
		{"unknown target file", "Arial", "zzz.ttf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.proxy.Redirect(tt.original, tt.target, true)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnresolvableReference), "got %v", err)
		})
	}
	assert.Zero(t, f.reboots.Count())
}

func TestRedirect_DominatesInstalledEntry(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, StatusOriginal, f.proxy.GetFontStatus("Arial", false))

	_, err := f.proxy.Redirect("Arial", "Go", true)
	require.NoError(t, err)

	assert.Equal(t, StatusRedirected, f.proxy.GetFontStatus("Arial", false))
	assert.Equal(t, StatusRedirected, f.proxy.GetFontStatus("arial", true))
}

func TestReplace_UninstalledPathIsIdempotent(t *testing.T) {
	f := newFixture(t)

	first, err := f.proxy.Replace("Arial", "/home/user/mono.ttf")
	require.NoError(t, err)
	assert.True(t, first.Changed)
	assert.Equal(t, "mono_force.ttf", tableValue(t, f.fonts, "Arial"))
	assert.True(t, f.fs.Exists(fontDir+"mono_force.ttf"))

	second, err := f.proxy.Replace("Arial", "/home/user/mono.ttf")
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Equal(t, "mono_force.ttf", tableValue(t, f.fonts, "Arial"))

	assert.Equal(t, 1, f.fs.copies)
	assert.Equal(t, 2, f.reboots.Count())
	assert.Equal(t, StatusReplaced, f.proxy.GetFontStatus("Arial", false))
}

func TestReplace_KeepsStoredKeySpelling(t *testing.T) {
	f := newFixture(t)

	out, err := f.proxy.Replace("arial", "/home/user/mono.ttf")
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, "Arial -> mono_force.ttf", out.Detail)

	assert.Equal(t, "mono_force.ttf", tableValue(t, f.fonts, "Arial"))
	_, ok, err := f.fonts.Get("arial")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, StatusReplaced, f.proxy.GetFontStatus("Arial", false))
	assert.Equal(t, StatusReplaced, f.proxy.GetFontStatus("arial", false))
}

func TestReplace_Targets(t *testing.T) {
	tests := []struct {
		name   string
		newRef string
		want   string
	}{
		{"installed file name", "go.ttf", "go.ttf"},
		{"installed path", fontDir + "go.ttf", "go.ttf"},
		{"face name", "Go", "go.ttf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.proxy.Replace("Courier New", tt.newRef)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tableValue(t, f.fonts, "Courier New"))
			assert.Zero(t, f.fs.copies)
		})
	}
}

func TestReplace_MissingFileNameIsInvalidTarget(t *testing.T) {
	f := newFixture(t)

	_, err := f.proxy.Replace("Arial", "missing.ttf")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTarget))
	assert.Equal(t, "arial.ttf", tableValue(t, f.fonts, "Arial"))
	assert.Zero(t, f.reboots.Count())
}

func TestReplace_UnresolvableOriginal(t *testing.T) {
	f := newFixture(t)

	_, err := f.proxy.Replace("zzz.ttf", "go.ttf")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnresolvableReference))
}

func TestInstall(t *testing.T) {
	f := newFixture(t)

	out, err := f.proxy.Install("/home/user/mono.ttf")
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, "mono.ttf", tableValue(t, f.fonts, "Go Mono"))
	assert.True(t, f.fs.Exists(fontDir+"mono.ttf"))
	assert.Equal(t, 1, f.fs.copies)
	assert.Equal(t, 1, f.reboots.Count())

	again, err := f.proxy.Install("/home/user/mono.ttf")
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Equal(t, 1, f.fs.copies)
	assert.Equal(t, 1, f.reboots.Count())
}

func TestInstall_BaseNameAlreadyInFontDir(t *testing.T) {
	f := newFixture(t)
	before, err := store.Snapshot(f.fonts)
	require.NoError(t, err)

	out, err := f.proxy.Install("/home/user/arial.ttf")
	require.NoError(t, err)
	assert.False(t, out.Changed)

	after, err := store.Snapshot(f.fonts)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Zero(t, f.fs.copies)
	assert.Zero(t, f.reboots.Count())
}

func TestInstall_IgnoresOtherKinds(t *testing.T) {
	f := newFixture(t)

	for _, ref := range []string{"Arial", "mono.ttf", fontDir + "go.ttf"} {
		out, err := f.proxy.Install(ref)
		require.NoError(t, err, ref)
		assert.False(t, out.Changed, ref)
	}
	assert.Zero(t, f.fs.copies)
}

func TestInstall_MissingSource(t *testing.T) {
	f := newFixture(t)

	_, err := f.proxy.Install("/home/user/gone.ttf")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFontRead))
}

func TestInstallAll(t *testing.T) {
	f := newFixture(t)

	n, err := f.proxy.InstallAll([]string{"/home/user/mono.ttf", "/home/user/arial.ttf", "Arial"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = f.proxy.InstallAll([]string{"/home/user/gone.ttf", "/home/user/mono.ttf"})
	require.Error(t, err)
	assert.Zero(t, n)
}

func TestTransactionsOnDisk(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.InstallFont(testutil.RegularFamily, "go.ttf", testutil.RegularTTF)
	source := env.HomePath("mono.ttf")
	env.WriteFile(source, testutil.MonoTTF)

	reboots := &testutil.Counter{}
	p := New(Options{Layout: env.Layout, Store: env.Store, FS: env.FS, Rebooter: reboots})

	_, err := p.Install(source)
	require.NoError(t, err)
	assert.Equal(t, "mono.ttf", env.Value(store.Fonts, testutil.MonoFamily))

	_, err = p.Redirect("Arial", testutil.MonoFamily, true)
	require.NoError(t, err)
	assert.Equal(t, testutil.MonoFamily, env.Value(store.Substitutes, "Arial"))

	_, err = p.Replace(testutil.RegularFamily, source)
	require.NoError(t, err)
	assert.Equal(t, "mono_force.ttf", env.Value(store.Fonts, testutil.RegularFamily))
	assert.True(t, env.FS.Exists(env.InstalledPath("mono_force.ttf")))

	assert.Equal(t, StatusReplaced, p.GetFontStatus(testutil.RegularFamily, false))
	assert.Equal(t, 3, reboots.Count())
}
