package densearena

import (
	"iter"
	"sync"
)

// View is the read-only surface of an arena. Code that only inspects
// entities should accept a View; holding a *Arena means holding the right
// to mutate it.
//
// Slice is included for algorithms that need random access (bisection,
// scans); callers of a View must not write through it.
type View[K EntityRef[K], V any] interface {
	Len() int
	IsEmpty() bool
	IsValid(k K) bool
	Get(k K) (V, bool)
	At(k K) V
	NextKey() K
	Keys() iter.Seq[K]
	KeysBackward() iter.Seq[K]
	Values() iter.Seq[V]
	ValuesBackward() iter.Seq[V]
	All() iter.Seq2[K, V]
	Backward() iter.Seq2[K, V]
	Slice() []V
	Metrics() Metrics
}

var _ View[Ref[struct{}], struct{}] = (*Arena[Ref[struct{}], struct{}])(nil)

// SafeArena is a lock-protected wrapper around Arena for shared access.
// Readers run concurrently with each other; writers run alone.
type SafeArena[K EntityRef[K], V any] struct {
	mu sync.RWMutex
	a  *Arena[K, V]
}

// NewSafe creates an empty SafeArena with room for n values.
// If n <= 0, no storage is preallocated.
func NewSafe[K EntityRef[K], V any](n int) *SafeArena[K, V] {
	return &SafeArena[K, V]{a: WithCapacity[K, V](n)}
}

// Read calls fn with a read-only view under the shared lock. fn must not
// retain the view, or anything obtained from Slice, after it returns.
func (s *SafeArena[K, V]) Read(fn func(View[K, V])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.a)
}

// Write calls fn with the arena under the exclusive lock. Multi-step
// updates such as reserving a key with NextKey and then pushing belong in a
// single Write.
func (s *SafeArena[K, V]) Write(fn func(*Arena[K, V])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.a)
}

// Push appends v and returns its key.
func (s *SafeArena[K, V]) Push(v V) K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Push(v)
}

// Get returns a copy of the value for k, or false if k is not valid.
func (s *SafeArena[K, V]) Get(k K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Get(k)
}

// IsValid reports whether k is valid right now.
func (s *SafeArena[K, V]) IsValid(k K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.IsValid(k)
}

// Len returns the number of stored values.
func (s *SafeArena[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Len()
}

// NextKey returns the key the next Push would assign. Another writer may
// claim it first; use Write to reserve and push atomically.
func (s *SafeArena[K, V]) NextKey() K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.NextKey()
}

// Clear removes every value.
func (s *SafeArena[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Clear()
}

// Snapshot returns an unsynchronised copy of the current contents.
func (s *SafeArena[K, V]) Snapshot() *Arena[K, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Clone()
}
