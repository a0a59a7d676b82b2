// Package densearena implements a dense, append-only arena addressed by
// typed integer keys.
//
// # Overview
//
// An arena stores many values of one type in a single growing slice and
// names each value by its position. The name, a key, is a small integer
// wrapper rather than a pointer. This is useful for:
//
//   - Program representations (blocks, instructions, values) with many
//     cross references
//   - Graph vertices and edges, including cyclic graphs
//   - Resource handles that must survive copying or serialisation
//
// Because relationships are stored as keys, the whole structure can be
// cloned, encoded or moved in memory without walking a pointer graph, and
// cycles never become ownership cycles.
//
// # Basic Usage
//
//	type Node struct {
//		Name string
//		Next densearena.Ref[Node]
//	}
//
//	nodes := densearena.New[densearena.Ref[Node], Node]()
//	a := nodes.Push(Node{Name: "a", Next: densearena.NoRef[Node]()})
//	b := nodes.Push(Node{Name: "b", Next: a})
//
//	nodes.Mut(a).Next = b  // close the cycle
//	fmt.Println(nodes.At(nodes.At(a).Next).Name)
//
//	for k, n := range nodes.All() {
//		fmt.Println(k, n.Name)
//	}
//
// # Keys
//
// Any comparable type implementing EntityRef can serve as a key. Ref[T] is a
// ready-made 32-bit key tagged with its payload type; Index32/New32 and
// Index64/New64 help define custom key types. Keys are ordered by index
// (see Compare).
//
// A key is valid for an arena when its index is below Len. Get and IsValid
// check validity; At and Mut trust the caller and panic on invalid keys.
//
// # Two-phase Construction
//
// NextKey reports the key the next Push will assign, so an entity can be
// built while already knowing its own key or the key of a peer that is not
// inserted yet. Alloc pushes a zero value and hands back a pointer to fill
// in.
//
// # Thread Safety
//
// Arena is not thread-safe. For shared access use SafeArena, which allows
// concurrent readers through Read and exclusive writers through Write:
//
//	s := densearena.NewSafe[densearena.Ref[Node], Node](0)
//	s.Write(func(a *densearena.Arena[densearena.Ref[Node], Node]) {
//		self := a.NextKey()
//		a.Push(Node{Name: "loop", Next: self})
//	})
//
// # Important Notes
//
//   - There is no single-element removal and no slot reuse; tombstones are
//     for the caller to model
//   - Clear invalidates every key issued so far; stale keys are not detected
//     and will silently name new values after further pushes
//   - Pointers from Mut, GetPtr, Alloc or the *Mut iterators, and the slice
//     from Slice, are invalidated when the arena grows
//
// # Metrics and Serialisation
//
// Metrics reports length, capacity and byte sizes; package arenaprom exports
// them to Prometheus. Arena implements cbor.Marshaler and cbor.Unmarshaler,
// encoding its values as a CBOR array in key order.
package densearena
