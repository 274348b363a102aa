package confset

import (
	"fmt"
	"regexp"
	"strings"
)

var reValidName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Filter is a parsed command line selector. It is one of
//
//   - "" (everything)
//   - name (all settings of a document)
//   - name.key (a single setting)
//   - name.key=value (set a single setting)
type Filter struct {
	Name     string
	Key      string
	Value    string
	HasValue bool
}

// ParseFilter parses a selector. The value is everything after the first '=',
// it is not validated. Name and key must be non-empty and may only contain
// letters, digits, '_' and '-'.
func ParseFilter(arg string) (Filter, error) {
	if arg == "" {
		return Filter{}, nil
	}

	sel, value, hasValue := strings.Cut(arg, "=")
	name, key, hasKey := strings.Cut(sel, ".")

	if !reValidName.MatchString(name) {
		return Filter{}, fmt.Errorf("%w %q: invalid name %q", ErrMalformedFilter, arg, name)
	}
	if hasKey && !reValidName.MatchString(key) {
		return Filter{}, fmt.Errorf("%w %q: invalid key %q", ErrMalformedFilter, arg, key)
	}
	if hasValue && !hasKey {
		return Filter{}, fmt.Errorf("%w %q: a value requires a key", ErrMalformedFilter, arg)
	}

	return Filter{
		Name:     name,
		Key:      key,
		Value:    value,
		HasValue: hasValue,
	}, nil
}

// Qualified returns the filter as used by PrintOptions, i.e. name or name.key.
func (f Filter) Qualified() string {
	if f.Key == "" {
		return f.Name
	}

	return f.Name + "." + f.Key
}

// IsWrite is true for name.key=value selectors.
func (f Filter) IsWrite() bool {
	return f.HasValue
}

// MatchKeys returns the qualified keys matching a glob pattern, e.g.
// "grub.GRUB_*". Keys are returned in the given order.
func MatchKeys(pattern string, keys []string) ([]string, error) {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		ok, err := globMatch(pattern, k)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			out = append(out, k)
		}
	}

	return out, nil
}
