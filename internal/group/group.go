// Package group buckets operator names by their dotted-path prefix.
package group

import (
	"slices"
	"strings"
)

const (
	separator = "."
	// Names with this many segments or more are keyed on their first maxDepth segments.
	maxDepth = 3
)

// Key returns the prefix an operator name is grouped under:
// a.b -> a.b, a.b.c -> a.b.c, a.b.c.d -> a.b.c, a -> a.
func Key(name string) string {
	parts := strings.Split(name, separator)
	if len(parts) < 2 {
		return name
	}

	return strings.Join(parts[:min(len(parts), maxDepth)], separator)
}

// Groups maps prefix keys to their member names.
type Groups map[string][]string

// By buckets names by Key. Members keep the order they have in names.
func By(names []string) Groups {
	groups := make(Groups)

	for _, name := range names {
		key := Key(name)
		groups[key] = append(groups[key], name)
	}

	return groups
}

// Keys returns the prefix keys in lexicographic order.
func (g Groups) Keys() []string {
	keys := make([]string, 0, len(g))
	for key := range g {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// Members returns a sorted copy of the names grouped under key.
func (g Groups) Members(key string) []string {
	members := slices.Clone(g[key])
	slices.Sort(members)

	return members
}
