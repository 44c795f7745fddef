package store

import "slices"

type memoryTable struct {
	keys   []string
	values map[string]string
}

type memoryStore struct {
	tables map[Namespace]*memoryTable
}

// NewMemory creates an empty in-memory store. Keys enumerate in insertion
// order.
func NewMemory() Store {
	return &memoryStore{tables: make(map[Namespace]*memoryTable)}
}

func (m *memoryStore) Table(ns Namespace) Table {
	t, ok := m.tables[ns]
	if !ok {
		t = &memoryTable{values: make(map[string]string)}
		m.tables[ns] = t
	}
	return t
}

func (t *memoryTable) Get(key string) (string, bool, error) {
	v, ok := t.values[key]
	return v, ok, nil
}

func (t *memoryTable) Set(key, value string) error {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
	return nil
}

func (t *memoryTable) Delete(key string) error {
	if _, ok := t.values[key]; !ok {
		return nil
	}
	delete(t.values, key)
	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == key })
	return nil
}

func (t *memoryTable) Keys() ([]string, error) {
	return slices.Clone(t.keys), nil
}
