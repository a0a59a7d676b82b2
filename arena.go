// Package densearena implements a dense, append-only arena that hands out
// typed integer keys instead of pointers.
// Typical usage: one arena per entity kind, entities refer to each other by
// storing keys, and the whole structure is dropped or Clear()ed at once.
package densearena

import "fmt"

// Arena stores values of type V at dense indices and names them with keys
// of type K. Not goroutine-safe; use SafeArena for shared access.
//
// The zero value is an empty arena ready for use.
type Arena[K EntityRef[K], V any] struct {
	elems []V
}

// New creates an empty arena.
func New[K EntityRef[K], V any]() *Arena[K, V] {
	return &Arena[K, V]{}
}

// WithCapacity creates an empty arena with room for n values.
// If n <= 0, no storage is preallocated.
func WithCapacity[K EntityRef[K], V any](n int) *Arena[K, V] {
	if n <= 0 {
		return New[K, V]()
	}
	return &Arena[K, V]{elems: make([]V, 0, n)}
}

// IsValid reports whether k names a value currently stored in the arena.
func (a *Arena[K, V]) IsValid(k K) bool {
	return uint(k.Index()) < uint(len(a.elems))
}

// Get returns the value for k, or false if k is not valid.
func (a *Arena[K, V]) Get(k K) (V, bool) {
	i := k.Index()
	if uint(i) >= uint(len(a.elems)) {
		var zero V
		return zero, false
	}
	return a.elems[i], true
}

// GetPtr returns a pointer to the value for k, or false if k is not valid.
// The pointer is invalidated by the next Push that grows the arena.
func (a *Arena[K, V]) GetPtr(k K) (*V, bool) {
	i := k.Index()
	if uint(i) >= uint(len(a.elems)) {
		return nil, false
	}
	return &a.elems[i], true
}

// At returns the value for k. k must have been issued by this arena since
// the last Clear; otherwise At panics.
func (a *Arena[K, V]) At(k K) V {
	return a.elems[a.checkIndex(k)]
}

// Mut returns a pointer to the value for k for in-place mutation. Same
// contract as At.
func (a *Arena[K, V]) Mut(k K) *V {
	return &a.elems[a.checkIndex(k)]
}

// IsEmpty reports whether the arena holds no values.
func (a *Arena[K, V]) IsEmpty() bool {
	return len(a.elems) == 0
}

// Len returns the number of keys issued since the last Clear.
func (a *Arena[K, V]) Len() int {
	return len(a.elems)
}

// Cap returns how many values fit before the backing storage grows.
func (a *Arena[K, V]) Cap() int {
	return cap(a.elems)
}

// Reserve ensures at least n more values can be pushed without growing.
func (a *Arena[K, V]) Reserve(n int) {
	if n <= 0 || cap(a.elems)-len(a.elems) >= n {
		return
	}
	grown := make([]V, len(a.elems), len(a.elems)+n)
	copy(grown, a.elems)
	a.elems = grown
}

// NextKey returns the key the next Push will assign, without modifying the
// arena.
func (a *Arena[K, V]) NextKey() K {
	var k K
	return k.FromIndex(len(a.elems))
}

// Push appends v and returns its key. If the key type cannot represent the
// new index, Push panics and the arena is left unchanged.
func (a *Arena[K, V]) Push(v V) K {
	k := a.NextKey()
	a.elems = append(a.elems, v)
	return k
}

// Last returns the most recently pushed key and value.
func (a *Arena[K, V]) Last() (K, V, bool) {
	var k K
	n := len(a.elems)
	if n == 0 {
		var zero V
		return k, zero, false
	}
	return k.FromIndex(n - 1), a.elems[n-1], true
}

// Clear removes every value but keeps the backing storage for reuse.
// All previously issued keys become invalid; a key kept across Clear may
// later name an unrelated value, which the arena cannot detect.
func (a *Arena[K, V]) Clear() {
	clear(a.elems)
	a.elems = a.elems[:0]
}

// Slice returns the stored values in key order. The slice shares storage
// with the arena: element writes are visible through the arena, and the
// slice is invalidated by the next Push that grows the arena or by Clear.
func (a *Arena[K, V]) Slice() []V {
	return a.elems
}

// Clone returns a copy of the arena. Values are copied shallowly; every key
// valid in a is valid in the clone and names the equal value.
func (a *Arena[K, V]) Clone() *Arena[K, V] {
	if a.elems == nil {
		return New[K, V]()
	}
	elems := make([]V, len(a.elems), cap(a.elems))
	copy(elems, a.elems)
	return &Arena[K, V]{elems: elems}
}

func (a *Arena[K, V]) checkIndex(k K) int {
	i := k.Index()
	if uint(i) >= uint(len(a.elems)) {
		panicOutOfRange(i, len(a.elems))
	}
	return i
}

// panicOutOfRange is kept out of line so checkIndex stays inlinable.
func panicOutOfRange(i, n int) {
	panic(fmt.Sprintf("densearena: key index %d out of range [0, %d)", i, n))
}
