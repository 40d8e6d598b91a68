// Package dictextra provides convenience helpers over an insertion-ordered
// dictionary and its companion ordered set.
//
// The containers themselves come from gods: [Dict] is a linked hash map and
// [Set] is a linked hash set. Both iterate in insertion order and identify
// keys with Go's == equality, so two keys are the same exactly when == says
// so.
//
// Every helper is a pure function. It reads its inputs, builds a fresh
// container and returns it; no input is ever modified and no output shares
// storage with an input. A nil *Dict or nil [Members] is read as empty.
//
// Optional results follow the comma-ok idiom:
//
//	k, v, ok := dictextra.Find(func(_ int, name string) bool { return name == "Jill" }, d)
//
// Panics raised by caller-supplied functions are not recovered.
package dictextra

import (
	"iter"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
	"github.com/emirpasic/gods/v2/sets/linkedhashset"
)

type (
	// Dict is an insertion-ordered dictionary with unique keys. Putting an
	// existing key overwrites its value in place.
	Dict[K comparable, V any] = linkedhashmap.Map[K, V]
	// Set is an insertion-ordered collection of unique elements.
	Set[T comparable] = linkedhashset.Set[T]
)

// Pair is a single key/value entry.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Members is the read side of an ordered set: its elements in iteration
// order. *Set satisfies it.
type Members[T any] interface {
	Values() []T
}

// New returns an empty Dict.
func New[K comparable, V any]() *Dict[K, V] {
	return linkedhashmap.New[K, V]()
}

// FromPairs builds a Dict from pairs with plain last-write-wins inserts.
func FromPairs[K comparable, V any](pairs ...Pair[K, V]) *Dict[K, V] {
	out := New[K, V]()
	for _, p := range pairs {
		out.Put(p.Key, p.Value)
	}
	return out
}

// NewSet returns an ordered set holding vals in first-seen order.
func NewSet[T comparable](vals ...T) *Set[T] {
	return linkedhashset.New(vals...)
}

// Entries yields the entries of d in iteration order.
func Entries[K comparable, V any](d *Dict[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if d == nil {
			return
		}
		it := d.Iterator()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// KeySet returns the keys of d as an ordered set.
func KeySet[K comparable, V any](d *Dict[K, V]) *Set[K] {
	if d == nil {
		return NewSet[K]()
	}
	return NewSet(d.Keys()...)
}

func each[K comparable, V any](d *Dict[K, V], fn func(K, V)) {
	if d == nil {
		return
	}
	d.Each(fn)
}

func members[T comparable](m Members[T]) []T {
	if m == nil {
		return nil
	}
	if s, ok := m.(*Set[T]); ok && s == nil {
		return nil
	}
	return m.Values()
}

func clone[K comparable, V any](d *Dict[K, V]) *Dict[K, V] {
	out := New[K, V]()
	each(d, out.Put)
	return out
}

// insertDedupe merges value into acc in place. acc must be owned by the
// caller.
func insertDedupe[K comparable, V any](acc *Dict[K, V], combine func(V, V) V, key K, value V) {
	if old, ok := acc.Get(key); ok {
		acc.Put(key, combine(old, value))
		return
	}
	acc.Put(key, value)
}
