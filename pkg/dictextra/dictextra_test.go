package dictextra

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairsOf flattens d into its entries in iteration order.
func pairsOf[K comparable, V any](d *Dict[K, V]) []Pair[K, V] {
	var out []Pair[K, V]
	for k, v := range Entries(d) {
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}
	return out
}

func assertPairs[K comparable, V any](t *testing.T, want []Pair[K, V], d *Dict[K, V]) {
	t.Helper()
	if diff := cmp.Diff(want, pairsOf(d)); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func p[K comparable, V any](k K, v V) Pair[K, V] { return Pair[K, V]{Key: k, Value: v} }

func TestFromPairsLastWriteKeepsPosition(t *testing.T) {
	d := FromPairs(p("a", 1), p("b", 2), p("a", 3))
	assertPairs(t, []Pair[string, int]{p("a", 3), p("b", 2)}, d)
}

func TestEntriesStopsOnBreak(t *testing.T) {
	d := FromPairs(p(1, "x"), p(2, "y"), p(3, "z"))
	var seen []int
	for k := range Entries(d) {
		seen = append(seen, k)
		if k == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestEntriesNil(t *testing.T) {
	var d *Dict[string, int]
	for range Entries(d) {
		t.Fatal("nil dict should yield nothing")
	}
}

func TestKeySet(t *testing.T) {
	d := FromPairs(p("z", 1), p("a", 2), p("m", 3))
	s := KeySet(d)
	assert.Equal(t, []string{"z", "a", "m"}, s.Values())

	var empty *Dict[string, int]
	assert.Equal(t, 0, KeySet(empty).Size())
}

func TestNilInputsAreEmpty(t *testing.T) {
	var d *Dict[string, int]
	var s *Set[string]

	assert.Equal(t, 0, RemoveWhen(func(string, int) bool { return false }, d).Size())
	assert.Equal(t, 0, RemoveMany[string, int](s, d).Size())
	assert.Equal(t, 0, KeepOnly[string, int](nil, d).Size())
	assert.Equal(t, 0, MapKeys(func(k string) string { return k }, d).Size())
	assert.Equal(t, 0, Invert(d).Size())
	assert.False(t, Any(func(string, int) bool { return true }, d))

	full := FromPairs(p("a", 1))
	assertPairs(t, []Pair[string, int]{p("a", 1)}, RemoveMany[string, int](s, full))
	assert.Equal(t, 0, KeepOnly[string, int](s, full).Size())

	out := InsertDedupe(func(a, b int) int { return a + b }, "k", 1, d)
	require.NotNil(t, out)
	assertPairs(t, []Pair[string, int]{p("k", 1)}, out)
}
