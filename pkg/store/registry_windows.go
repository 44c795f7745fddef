//go:build windows

package store

import (
	stderrors "errors"

	"github.com/arthur-debert/fontproxy/pkg/errors"
	"golang.org/x/sys/windows/registry"
)

type registryStore struct{}

type registryTable struct {
	path string
}

func openRegistry() (Store, error) {
	for _, path := range []string{SubstitutesKeyPath, FontsKeyPath} {
		k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE|registry.SET_VALUE)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrStoreRead, "cannot open HKLM\\%s for writing", path)
		}
		_ = k.Close()
	}
	return &registryStore{}, nil
}

func (s *registryStore) Table(ns Namespace) Table {
	return &registryTable{path: ns.KeyPath()}
}

func (t *registryTable) open(access uint32) (registry.Key, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, t.path, access)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrStoreRead, "cannot open HKLM\\%s", t.path)
	}
	return k, nil
}

func (t *registryTable) Get(key string) (string, bool, error) {
	k, err := t.open(registry.QUERY_VALUE)
	if err != nil {
		return "", false, err
	}
	defer k.Close()

	v, _, err := k.GetStringValue(key)
	if stderrors.Is(err, registry.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrStoreRead, "cannot read value %q", key)
	}
	return v, true, nil
}

func (t *registryTable) Set(key, value string) error {
	k, err := t.open(registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	if err := k.SetStringValue(key, value); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "cannot write value %q", key)
	}
	return nil
}

func (t *registryTable) Delete(key string) error {
	k, err := t.open(registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	err = k.DeleteValue(key)
	if err == nil || stderrors.Is(err, registry.ErrNotExist) {
		return nil
	}
	return errors.Wrapf(err, errors.ErrStoreWrite, "cannot delete value %q", key)
}

func (t *registryTable) Keys() ([]string, error) {
	k, err := t.open(registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	names, err := k.ReadValueNames(0)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreRead, "cannot enumerate values")
	}
	return names, nil
}
