package densearena

import (
	"iter"
	"slices"
)

// Alloc pushes a zero V and returns its key together with a pointer to the
// new slot, so an entity that needs its own key can be filled in place.
// The pointer is invalidated by the next Push that grows the arena.
func (a *Arena[K, V]) Alloc() (K, *V) {
	var zero V
	k := a.Push(zero)
	return k, &a.elems[len(a.elems)-1]
}

// AllocN pushes n zero values and returns their keys.
// Returns an empty range at NextKey if n <= 0.
func (a *Arena[K, V]) AllocN(n int) Range[K] {
	start := len(a.elems)
	if n <= 0 {
		return Range[K]{start: start, end: start}
	}
	a.checkRepresentable(start + n - 1)
	a.elems = slices.Grow(a.elems, n)[:start+n]
	clear(a.elems[start:])
	return Range[K]{start: start, end: start + n}
}

// Append pushes vs in order and returns their keys.
func (a *Arena[K, V]) Append(vs ...V) Range[K] {
	start := len(a.elems)
	if len(vs) == 0 {
		return Range[K]{start: start, end: start}
	}
	a.checkRepresentable(start + len(vs) - 1)
	a.elems = append(a.elems, vs...)
	return Range[K]{start: start, end: len(a.elems)}
}

// Extend pushes every value produced by seq and returns their keys.
func (a *Arena[K, V]) Extend(seq iter.Seq[V]) Range[K] {
	start := len(a.elems)
	for v := range seq {
		a.Push(v)
	}
	return Range[K]{start: start, end: len(a.elems)}
}

// checkRepresentable panics through the key type if index i has no key.
func (a *Arena[K, V]) checkRepresentable(i int) {
	var k K
	k.FromIndex(i)
}

// Range is a half-open run of consecutive keys [First, First+Len).
type Range[K EntityRef[K]] struct {
	start, end int
}

// Len returns the number of keys in r.
func (r Range[K]) Len() int {
	return r.end - r.start
}

// IsEmpty reports whether r holds no keys.
func (r Range[K]) IsEmpty() bool {
	return r.end <= r.start
}

// Contains reports whether k falls inside r.
func (r Range[K]) Contains(k K) bool {
	i := k.Index()
	return i >= r.start && i < r.end
}

// First returns the lowest key in r.
func (r Range[K]) First() (K, bool) {
	var k K
	if r.IsEmpty() {
		return k, false
	}
	return k.FromIndex(r.start), true
}

// Last returns the highest key in r.
func (r Range[K]) Last() (K, bool) {
	var k K
	if r.IsEmpty() {
		return k, false
	}
	return k.FromIndex(r.end - 1), true
}

// All yields the keys of r in ascending order.
func (r Range[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		var k K
		for i := r.start; i < r.end; i++ {
			if !yield(k.FromIndex(i)) {
				return
			}
		}
	}
}

// Backward yields the keys of r in descending order.
func (r Range[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		var k K
		for i := r.end - 1; i >= r.start; i-- {
			if !yield(k.FromIndex(i)) {
				return
			}
		}
	}
}
