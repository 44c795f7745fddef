//go:build !windows

package store

import "github.com/arthur-debert/fontproxy/pkg/errors"

func openRegistry() (Store, error) {
	return nil, errors.New(errors.ErrNotImplemented, "the registry store is only available on windows")
}
