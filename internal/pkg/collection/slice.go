// Package collection holds the pure shaping functions the dashboard views
// run over fetched entries and history records: search, period filters,
// date grouping, sorting and totals. Nothing here performs I/O.
package collection

func Filter[T any](src []T, predicate func(T) bool) []T {
	dst := make([]T, 0, len(src))
	for _, item := range src {
		if predicate(item) {
			dst = append(dst, item)
		}
	}
	return dst
}

func Map[T any, U any](src []T, mapper func(T) U) []U {
	dst := make([]U, 0, len(src))
	for _, item := range src {
		dst = append(dst, mapper(item))
	}
	return dst
}

// Group is one key of GroupBy with its items in input order.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy partitions items by key. Groups appear in first-occurrence order.
func GroupBy[T any, K comparable](items []T, keyFunc func(T) K) []Group[K, T] {
	var groups []Group[K, T]
	index := make(map[K]int)
	for _, item := range items {
		key := keyFunc(item)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group[K, T]{Key: key})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
