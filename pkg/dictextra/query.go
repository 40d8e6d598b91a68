package dictextra

// Any reports whether at least one entry of d satisfies pred. It stops at the
// first match.
func Any[K comparable, V any](pred func(K, V) bool, d *Dict[K, V]) bool {
	_, _, ok := Find(pred, d)
	return ok
}

// Find returns the first entry of d, in iteration order, that satisfies
// pred. ok is false when nothing matches.
func Find[K comparable, V any](pred func(K, V) bool, d *Dict[K, V]) (key K, value V, ok bool) {
	for k, v := range Entries(d) {
		if pred(k, v) {
			return k, v, true
		}
	}
	return key, value, false
}
