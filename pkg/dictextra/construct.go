package dictextra

// GroupBy groups list by keyFn. Keys appear in the order they are first
// produced and each group keeps the relative order of list.
func GroupBy[K comparable, V any](keyFn func(V) K, list []V) *Dict[K, []V] {
	return FilterGroupBy(func(v V) (K, bool) { return keyFn(v), true }, list)
}

// FilterGroupBy is GroupBy with an optional key. Elements for which keyFn
// reports false are dropped.
func FilterGroupBy[K comparable, V any](keyFn func(V) (K, bool), list []V) *Dict[K, []V] {
	out := New[K, []V]()
	for _, v := range list {
		k, ok := keyFn(v)
		if !ok {
			continue
		}
		group, _ := out.Get(k)
		out.Put(k, append(group, v))
	}
	return out
}

// FromListBy keys every element of list by keyFn. When two elements share a
// key the later one wins.
func FromListBy[K comparable, V any](keyFn func(V) K, list []V) *Dict[K, V] {
	out := New[K, V]()
	for _, v := range list {
		out.Put(keyFn(v), v)
	}
	return out
}

// FromListDedupe builds a Dict from pairs. A repeated key is merged with
// combine(accumulated, new), in the order the pairs are seen.
func FromListDedupe[K comparable, V any](combine func(V, V) V, pairs []Pair[K, V]) *Dict[K, V] {
	out := New[K, V]()
	for _, p := range pairs {
		insertDedupe(out, combine, p.Key, p.Value)
	}
	return out
}

// FromListDedupeBy keys every element of list by keyFn and merges elements
// sharing a key with combine, as FromListDedupe does.
func FromListDedupeBy[K comparable, V any](combine func(V, V) V, keyFn func(V) K, list []V) *Dict[K, V] {
	out := New[K, V]()
	for _, v := range list {
		insertDedupe(out, combine, keyFn(v), v)
	}
	return out
}

// Frequencies counts the occurrences of each distinct element of list.
func Frequencies[K comparable](list []K) *Dict[K, int] {
	out := New[K, int]()
	for _, k := range list {
		n, _ := out.Get(k)
		out.Put(k, n+1)
	}
	return out
}
