package hbasemap

import "strings"

const familySeparator = ":"

// ResolveColumn returns the "family:qualifier" key for name. A name that
// already contains ':' is returned unchanged; otherwise it is placed in
// family, which must not be empty.
func ResolveColumn(name, family string) (string, error) {
	if strings.Contains(name, familySeparator) {
		return name, nil
	}
	family = strings.TrimSuffix(family, familySeparator)
	if family == "" {
		return "", newError(ErrMissingColumnFamily, "cannot qualify column %q", name)
	}
	return family + familySeparator + name, nil
}

// SplitColumn splits a column key at its first ':'. A key without one is
// all qualifier.
func SplitColumn(column string) (family, qualifier string) {
	i := strings.Index(column, familySeparator)
	if i < 0 {
		return "", column
	}
	return column[:i], column[i+1:]
}
