package densearena

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// EntityRef is the capability an arena needs from its key type: build a key
// from a raw index and read the raw index back. FromIndex is called on the
// zero value of K and must not depend on the receiver.
//
// Implementations should be small value types (usually a named integer) so
// keys can be copied, compared and stored inside other payloads freely.
type EntityRef[K any] interface {
	comparable
	Index() int
	FromIndex(i int) K
}

// Ref is a 32-bit key tagged with the payload type it names, so that
// Ref[Block] and Ref[Inst] cannot be mixed up. The value math.MaxUint32 is
// reserved as the "no reference" sentinel; see NoRef.
type Ref[T any] uint32

// NoRef returns the reserved sentinel key. It is never issued by an arena
// and is never valid.
func NoRef[T any]() Ref[T] {
	return Ref[T](math.MaxUint32)
}

// Index returns the raw index of r.
func (r Ref[T]) Index() int {
	return int(r)
}

// FromIndex returns the key for index i. It panics if i is negative or does
// not fit below the reserved sentinel.
func (Ref[T]) FromIndex(i int) Ref[T] {
	if i < 0 || uint64(i) >= math.MaxUint32 {
		panicKeyOverflow(i, math.MaxUint32-1)
	}
	return Ref[T](i)
}

// IsNone reports whether r is the reserved sentinel.
func (r Ref[T]) IsNone() bool {
	return r == math.MaxUint32
}

func (r Ref[T]) String() string {
	if r.IsNone() {
		return "ref<none>"
	}
	return "ref" + strconv.FormatUint(uint64(r), 10)
}

// Index32 and New32 implement EntityRef for user types backed by uint32:
//
//	type Block uint32
//
//	func (b Block) Index() int          { return densearena.Index32(b) }
//	func (Block) FromIndex(i int) Block { return densearena.New32[Block](i) }
func Index32[K ~uint32](k K) int {
	return int(k)
}

// New32 converts i to a uint32-backed key, panicking when i falls outside
// [0, math.MaxUint32].
func New32[K ~uint32](i int) K {
	if i < 0 || uint64(i) > math.MaxUint32 {
		panicKeyOverflow(i, math.MaxUint32)
	}
	return K(i)
}

// Index64 is the uint64 counterpart of Index32.
func Index64[K ~uint64](k K) int {
	if uint64(k) > math.MaxInt {
		panic(fmt.Sprintf("densearena: key %d does not fit in int", uint64(k)))
	}
	return int(k)
}

// New64 converts a non-negative i to a uint64-backed key.
func New64[K ~uint64](i int) K {
	if i < 0 {
		panicKeyOverflow(i, math.MaxInt)
	}
	return K(i)
}

// Compare orders keys by raw index. It has the shape slices.SortFunc and
// slices.BinarySearchFunc expect.
func Compare[K EntityRef[K]](a, b K) int {
	return cmp.Compare(a.Index(), b.Index())
}

func panicKeyOverflow(i int, max uint64) {
	panic(fmt.Sprintf("densearena: index %d not representable by key type (max %d)", i, max))
}
