package densearena

import "iter"

// Keys yields every valid key in ascending order. The length is read when
// iteration starts, so the same sequence can be ranged over again after the
// arena changes.
func (a *Arena[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		var k K
		n := len(a.elems)
		for i := 0; i < n; i++ {
			if !yield(k.FromIndex(i)) {
				return
			}
		}
	}
}

// KeysBackward yields every valid key in descending order.
func (a *Arena[K, V]) KeysBackward() iter.Seq[K] {
	return func(yield func(K) bool) {
		var k K
		for i := len(a.elems) - 1; i >= 0; i-- {
			if !yield(k.FromIndex(i)) {
				return
			}
		}
	}
}

// KeyRange returns the range of keys valid right now.
func (a *Arena[K, V]) KeyRange() Range[K] {
	return Range[K]{end: len(a.elems)}
}

// Values yields every stored value in key order.
func (a *Arena[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range a.elems {
			if !yield(v) {
				return
			}
		}
	}
}

// ValuesBackward yields every stored value in reverse key order.
func (a *Arena[K, V]) ValuesBackward() iter.Seq[V] {
	return func(yield func(V) bool) {
		s := a.elems
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// ValuesMut yields a pointer to every stored value in key order. The arena
// must not be pushed to or cleared while the sequence is running.
func (a *Arena[K, V]) ValuesMut() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		s := a.elems
		for i := range s {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

// ValuesMutBackward is ValuesMut in reverse key order.
func (a *Arena[K, V]) ValuesMutBackward() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		s := a.elems
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

// All yields every key with its value in key order.
func (a *Arena[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var k K
		for i, v := range a.elems {
			if !yield(k.FromIndex(i), v) {
				return
			}
		}
	}
}

// Backward yields every key with its value in reverse key order.
func (a *Arena[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var k K
		s := a.elems
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(k.FromIndex(i), s[i]) {
				return
			}
		}
	}
}

// AllMut yields every key with a pointer to its value in key order. The
// arena must not be pushed to or cleared while the sequence is running.
func (a *Arena[K, V]) AllMut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		var k K
		s := a.elems
		for i := range s {
			if !yield(k.FromIndex(i), &s[i]) {
				return
			}
		}
	}
}

// BackwardMut is AllMut in reverse key order.
func (a *Arena[K, V]) BackwardMut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		var k K
		s := a.elems
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(k.FromIndex(i), &s[i]) {
				return
			}
		}
	}
}
