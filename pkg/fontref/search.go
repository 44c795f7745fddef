package fontref

import (
	"strings"

	"github.com/arthur-debert/fontproxy/pkg/errors"
)

// SearchFont returns the first installed face whose name or file name
// contains query, case-insensitively. Faces are scanned in the store's
// enumeration order, so with several candidates the winner depends on the
// backend.
//
// A query written as a font file name is also matched by the family name
// declared inside the installed file, when that file exists, and is compared
// without its extension.
func (r *Resolver) SearchFont(query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", errors.New(errors.ErrInvalidInput, "search query is empty")
	}

	var hint string
	if r.layout.Classify(query) == FontFileName {
		path := r.layout.InstalledPath(query)
		if r.fs.Exists(path) {
			family, err := r.FamilyAt(path)
			if err != nil {
				r.logger.Debug().Err(err).Str("path", path).Msg("No family hint from installed file")
			} else {
				hint = strings.ToLower(family)
			}
		}
		query = Stem(query)
	}

	needle := strings.ToLower(query)
	keys, err := r.fonts.Keys()
	if err != nil {
		return "", err
	}
	for _, key := range keys {
		value, ok, err := r.fonts.Get(key)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		family := strings.ToLower(key)
		file := strings.ToLower(value)
		if strings.Contains(family, needle) ||
			strings.Contains(file, needle) ||
			(hint != "" && strings.Contains(family, hint)) {
			r.logger.Debug().Str("query", query).Str("match", key).Msg("Font found")
			return key, nil
		}
	}
	return "", errors.Newf(errors.ErrNotFound, "no installed font matches %q", query).WithDetail("query", query)
}
