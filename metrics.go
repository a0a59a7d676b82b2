package densearena

import "unsafe"

// ElemSize returns the in-memory size of one stored value in bytes. Memory
// referenced by the value (strings, slices, maps) is not counted.
func (a *Arena[K, V]) ElemSize() int {
	var zero V
	return int(unsafe.Sizeof(zero))
}

// SizeInUse returns the bytes occupied by stored values.
func (a *Arena[K, V]) SizeInUse() int {
	return a.ElemSize() * len(a.elems)
}

// Capacity returns the bytes reserved by the backing storage.
func (a *Arena[K, V]) Capacity() int {
	return a.ElemSize() * cap(a.elems)
}

// Utilization returns the ratio of used to reserved slots (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[K, V]) Utilization() float64 {
	c := cap(a.elems)
	if c == 0 {
		return 0
	}
	return float64(len(a.elems)) / float64(c)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[K, V]) Metrics() Metrics {
	return Metrics{
		Len:         a.Len(),
		Cap:         a.Cap(),
		ElemSize:    a.ElemSize(),
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Utilization: a.Utilization(),
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	Len         int     // Values stored
	Cap         int     // Slots reserved
	ElemSize    int     // Bytes per value
	SizeInUse   int     // Bytes occupied by stored values
	Capacity    int     // Bytes reserved
	Utilization float64 // Ratio of Len to Cap (0.0-1.0)
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena[K, V]) Metrics() Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.a.Metrics()
}
