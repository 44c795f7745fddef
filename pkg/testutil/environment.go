// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate font test environments with consistent tables and files

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fontproxy/pkg/filesystem"
	"github.com/arthur-debert/fontproxy/pkg/fontref"
	"github.com/arthur-debert/fontproxy/pkg/paths"
	"github.com/arthur-debert/fontproxy/pkg/store"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // memory filesystem and memory tables
	EnvIsolated                  // OS filesystem and file tables under t.TempDir()
)

// TestEnvironment is a font directory plus the collaborators that see it
type TestEnvironment struct {
	FontDir string
	HomeDir string

	FS     filesystem.FS
	Store  store.Store
	Layout fontref.Layout

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates an empty environment of the given type
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		env.FontDir = "/fonts/"
		env.HomeDir = "/home/user"
		env.FS = filesystem.NewMemory()
		env.Store = store.NewMemory()
	case EnvIsolated:
		root := t.TempDir()
		env.FontDir = paths.WithTrailingSeparator(filepath.Join(root, "fonts"))
		env.HomeDir = filepath.Join(root, "home")
		env.FS = filesystem.NewOS()
		env.Store = store.NewFile(env.FS, filepath.Join(root, "data", paths.TablesFileName))
	default:
		t.Fatalf("unknown environment type %d", envType)
	}

	for _, dir := range []string{env.FontDir, env.HomeDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	env.Layout = fontref.NewLayout(env.FontDir)
	return env
}

// Fonts returns the installed-font table
func (env *TestEnvironment) Fonts() store.Table {
	return env.Store.Table(store.Fonts)
}

// Substitutes returns the substitution table
func (env *TestEnvironment) Substitutes() store.Table {
	return env.Store.Table(store.Substitutes)
}

// InstalledPath returns where file lives inside the font directory
func (env *TestEnvironment) InstalledPath(file string) string {
	return env.Layout.InstalledPath(file)
}

// HomePath returns a path below the home directory, outside the font directory
func (env *TestEnvironment) HomePath(name string) string {
	return filepath.Join(env.HomeDir, name)
}

// WriteFile writes data to path, creating parent directories
func (env *TestEnvironment) WriteFile(path string, data []byte) {
	env.t.Helper()
	if err := env.FS.WriteFile(path, data, 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// PlaceFont writes data into the font directory without registering it
func (env *TestEnvironment) PlaceFont(file string, data []byte) string {
	env.t.Helper()
	path := env.InstalledPath(file)
	env.WriteFile(path, data)
	return path
}

// InstallFont places file in the font directory and registers it under face.
// With nil data only the table entry is written.
func (env *TestEnvironment) InstallFont(face, file string, data []byte) {
	env.t.Helper()
	if data != nil {
		env.PlaceFont(file, data)
	}
	env.Set(store.Fonts, face, file)
}

// Set writes one table entry
func (env *TestEnvironment) Set(ns store.Namespace, key, value string) {
	env.t.Helper()
	if err := env.Store.Table(ns).Set(key, value); err != nil {
		env.t.Fatalf("Failed to set %s[%s]: %v", ns, key, err)
	}
}

// Value returns a table entry and fails the test when it is absent
func (env *TestEnvironment) Value(ns store.Namespace, key string) string {
	env.t.Helper()
	v, ok, err := env.Store.Table(ns).Get(key)
	if err != nil {
		env.t.Fatalf("Failed to read %s[%s]: %v", ns, key, err)
	}
	if !ok {
		env.t.Fatalf("Missing %s[%s]", ns, key)
	}
	return v
}

// Has reports whether a table entry exists
func (env *TestEnvironment) Has(ns store.Namespace, key string) bool {
	env.t.Helper()
	_, ok, err := env.Store.Table(ns).Get(key)
	if err != nil {
		env.t.Fatalf("Failed to read %s[%s]: %v", ns, key, err)
	}
	return ok
}
