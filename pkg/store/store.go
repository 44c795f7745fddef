package store

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/fontproxy/pkg/errors"
	"github.com/arthur-debert/fontproxy/pkg/filesystem"
)

// Namespace selects one of the two tables.
type Namespace string

const (
	// Substitutes maps an original face name to the face name it is redirected to
	Substitutes Namespace = "substitutes"

	// Fonts maps an installed face name to its font file name
	Fonts Namespace = "fonts"
)

// Namespaces lists every namespace in a stable order
var Namespaces = []Namespace{Substitutes, Fonts}

// Registry key paths under HKEY_LOCAL_MACHINE holding each namespace
const (
	SubstitutesKeyPath = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\FontSubstitutes`
	FontsKeyPath       = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Fonts`
)

// KeyPath returns the registry key path backing the namespace
func (ns Namespace) KeyPath() string {
	if ns == Substitutes {
		return SubstitutesKeyPath
	}
	return FontsKeyPath
}

// Backend names accepted by Open
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRegistry = "registry"
)

// Table is a single namespace of the persistent store.
type Table interface {
	// Get returns the value stored under key and whether it exists.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys returns every key. The order is backend specific.
	Keys() ([]string, error)
}

// Store gives access to the namespaced tables.
type Store interface {
	Table(ns Namespace) Table
}

// Options configures Open
type Options struct {
	Backend string
	Path    string
	FS      filesystem.FS
}

// Open returns the store selected by opts.Backend
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile, "":
		if opts.Path == "" {
			return nil, errors.New(errors.ErrInvalidInput, "file store requires a path")
		}
		fs := opts.FS
		if fs == nil {
			fs = filesystem.NewOS()
		}
		return NewFile(fs, opts.Path), nil
	case BackendRegistry:
		return openRegistry()
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown store backend %q", opts.Backend)
	}
}

// Snapshot reads every key/value pair of a table in enumeration order
func Snapshot(t Table) ([]Entry, error) {
	keys, err := t.Keys()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		v, ok, err := t.Get(k)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		entries = append(entries, Entry{Key: k, Value: v})
	}
	return entries, nil
}

// Entry is one key/value pair of a table
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s=%s", e.Key, e.Value)
}

// GetFold looks key up exactly and then, failing that, case-insensitively,
// the way the Windows registry matches value names. It returns the key as
// stored.
func GetFold(t Table, key string) (string, string, bool, error) {
	if v, ok, err := t.Get(key); err != nil || ok {
		return key, v, ok, err
	}
	keys, err := t.Keys()
	if err != nil {
		return "", "", false, err
	}
	for _, k := range keys {
		if !strings.EqualFold(k, key) {
			continue
		}
		v, ok, err := t.Get(k)
		if err != nil || ok {
			return k, v, ok, err
		}
	}
	return "", "", false, nil
}
