package store

import (
	"sort"

	"github.com/arthur-debert/fontproxy/pkg/errors"
	"github.com/arthur-debert/fontproxy/pkg/filesystem"
	"github.com/arthur-debert/fontproxy/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
)

// document is the on-disk layout of the file store:
//
//	[substitutes]
//	"Arial" = "Comic Sans MS"
//
//	[fonts]
//	"Arial" = "arial.ttf"
type document map[string]map[string]string

type fileStore struct {
	fs   filesystem.FS
	path string
}

type fileTable struct {
	store *fileStore
	ns    Namespace
}

// NewFile creates a store persisted as a TOML document at path. The document
// is read on every call and rewritten on every mutation.
func NewFile(fs filesystem.FS, path string) Store {
	return &fileStore{fs: fs, path: path}
}

func (s *fileStore) Table(ns Namespace) Table {
	return &fileTable{store: s, ns: ns}
}

func (s *fileStore) load() (document, error) {
	doc := make(document)
	if !s.fs.Exists(s.path) {
		return doc, nil
	}
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreRead, "failed to read table file %s", s.path)
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreRead, "failed to parse table file %s", s.path)
	}
	return doc, nil
}

func (s *fileStore) save(doc document) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to encode tables")
	}
	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to write table file %s", s.path)
	}
	logger := logging.GetLogger("store")
	logger.Trace().Str("path", s.path).Int("bytes", len(data)).Msg("Table file written")
	return nil
}

func (t *fileTable) Get(key string) (string, bool, error) {
	doc, err := t.store.load()
	if err != nil {
		return "", false, err
	}
	v, ok := doc[string(t.ns)][key]
	return v, ok, nil
}

func (t *fileTable) Set(key, value string) error {
	doc, err := t.store.load()
	if err != nil {
		return err
	}
	if doc[string(t.ns)] == nil {
		doc[string(t.ns)] = make(map[string]string)
	}
	doc[string(t.ns)][key] = value
	return t.store.save(doc)
}

func (t *fileTable) Delete(key string) error {
	doc, err := t.store.load()
	if err != nil {
		return err
	}
	if _, ok := doc[string(t.ns)][key]; !ok {
		return nil
	}
	delete(doc[string(t.ns)], key)
	return t.store.save(doc)
}

// Keys returns the keys sorted, since the TOML document has no stable order
// once decoded.
func (t *fileTable) Keys() ([]string, error) {
	doc, err := t.store.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(doc[string(t.ns)]))
	for k := range doc[string(t.ns)] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
