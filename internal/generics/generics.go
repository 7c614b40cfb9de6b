// Package generics implements small generic helpers missing from the
// stdlib.
package generics

import (
	"cmp"
	"iter"
	"slices"
)

// KeysSlice returns a slice with the keys of a map.
func KeysSlice[Map interface{ ~map[K]V }, K comparable, V any](m Map) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns an iterator over the sorted keys of the given map.
//
// It extracts and sorts the keys first, so it's convenient but not fast.
func SortedKeys[Map interface{ ~map[K]V }, K cmp.Ordered, V any](m Map) iter.Seq[K] {
	sortedKeys := KeysSlice(m)
	slices.Sort(sortedKeys)
	return slices.Values(sortedKeys)
}
