package dictextra

// InsertDedupe returns a copy of d with value stored at key. If key is
// already present the stored value becomes combine(old, value).
func InsertDedupe[K comparable, V any](combine func(V, V) V, key K, value V, d *Dict[K, V]) *Dict[K, V] {
	out := clone(d)
	insertDedupe(out, combine, key, value)
	return out
}

// MapKeys rewrites every key of d with keyMapper. When two keys map to the
// same new key, the entry later in d's order supplies the value.
func MapKeys[K, K2 comparable, V any](keyMapper func(K) K2, d *Dict[K, V]) *Dict[K2, V] {
	out := New[K2, V]()
	each(d, func(k K, v V) {
		out.Put(keyMapper(k), v)
	})
	return out
}

// Invert swaps keys and values. Keys sharing a value collapse to the one
// seen last.
func Invert[K, V comparable](d *Dict[K, V]) *Dict[V, K] {
	out := New[V, K]()
	each(d, func(k K, v V) {
		out.Put(v, k)
	})
	return out
}

// UnionWith merges b into a. Keys present in both are combined with
// combine(a's value, b's value). Keys of a come first, then the keys only b
// has, each in its own order.
func UnionWith[K comparable, V any](combine func(V, V) V, a, b *Dict[K, V]) *Dict[K, V] {
	out := clone(a)
	each(b, func(k K, v V) {
		insertDedupe(out, combine, k, v)
	})
	return out
}
