package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FS is the set of file operations fontproxy needs.
type FS interface {
	// Exists reports whether name refers to an existing regular file.
	Exists(name string) bool

	// ReadFile returns the contents of name.
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces the contents of name, creating parent directories.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Copy copies from to to. It never overwrites an existing destination
	// and does nothing when the source is missing. It reports whether a copy
	// took place.
	Copy(from, to string) (bool, error)

	// MkdirAll creates a directory and all missing parents.
	MkdirAll(path string, perm fs.FileMode) error
}

// aferoFS implements FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

// NewOS creates a filesystem backed by the operating system
func NewOS() FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewMemory creates an empty in-memory filesystem
func NewMemory() FS {
	return NewAferoFS(afero.NewMemMapFs())
}

func (a *aferoFS) Exists(name string) bool {
	info, err := a.fs.Stat(name)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := a.fs.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Copy(from, to string) (bool, error) {
	if a.Exists(to) || !a.Exists(from) {
		return false, nil
	}

	src, err := a.fs.Open(from)
	if err != nil {
		return false, err
	}
	defer func() { _ = src.Close() }()

	if err := a.fs.MkdirAll(filepath.Dir(to), 0755); err != nil {
		return false, err
	}

	// O_EXCL keeps a destination created since the Exists check intact
	dst, err := a.fs.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, err
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return false, err
	}
	return true, dst.Close()
}
