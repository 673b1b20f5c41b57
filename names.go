package hbasemap

import "strings"

// tableNamer maps logical table names to the physical names sent to the
// store. Every table name crossing the Connection goes through qualify.
type tableNamer struct {
	prefix    string
	separator string
}

// qualify is idempotent: a name already carrying the prefix is kept as is.
func (n tableNamer) qualify(name string) string {
	if n.prefix == "" || strings.HasPrefix(name, n.prefix) {
		return name
	}
	return n.prefix + n.separator + name
}

// logical keeps the names that belong to the prefix, with prefix and
// separator removed. Without a prefix every name is kept.
func (n tableNamer) logical(physical []string) []string {
	if n.prefix == "" {
		return physical
	}
	head := n.prefix + n.separator
	names := make([]string, 0, len(physical))
	for _, name := range physical {
		if strings.HasPrefix(name, head) {
			names = append(names, strings.TrimPrefix(name, head))
		}
	}
	return names
}
