package dictextra

// RemoveWhen returns the entries of d for which pred is false, in order.
func RemoveWhen[K comparable, V any](pred func(K, V) bool, d *Dict[K, V]) *Dict[K, V] {
	out := New[K, V]()
	each(d, func(k K, v V) {
		if !pred(k, v) {
			out.Put(k, v)
		}
	})
	return out
}

// RemoveMany returns d without the keys in keys. Keys missing from d are
// ignored.
func RemoveMany[K comparable, V any](keys Members[K], d *Dict[K, V]) *Dict[K, V] {
	out := clone(d)
	for _, k := range members(keys) {
		out.Remove(k)
	}
	return out
}

// KeepOnly returns the entries of d whose key is in keys. The result is
// ordered by keys, not by d; keys missing from d are skipped.
func KeepOnly[K comparable, V any](keys Members[K], d *Dict[K, V]) *Dict[K, V] {
	out := New[K, V]()
	if d == nil {
		return out
	}
	for _, k := range members(keys) {
		if v, ok := d.Get(k); ok {
			out.Put(k, v)
		}
	}
	return out
}

// FilterMap applies f to every entry of d, keeping the new value when f
// reports true and dropping the entry otherwise.
func FilterMap[K comparable, V, V2 any](f func(K, V) (V2, bool), d *Dict[K, V]) *Dict[K, V2] {
	out := New[K, V2]()
	each(d, func(k K, v V) {
		if v2, ok := f(k, v); ok {
			out.Put(k, v2)
		}
	})
	return out
}
