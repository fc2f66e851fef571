package mesh

import "fmt"

// VertexKey uniquely identifies a vertex in a mesh. Keys are opaque, minted
// monotonically, and never reused, so a key held across removals cannot alias
// a different vertex.
type VertexKey uint64

// Less orders vertex keys by minting order.
func (k VertexKey) Less(other VertexKey) bool { return k < other }

func (k VertexKey) String() string { return fmt.Sprintf("v%d", uint64(k)) }

// FaceKey uniquely identifies a face in a mesh. Like vertex keys, face keys
// are minted monotonically and never reused.
type FaceKey uint64

// Less orders face keys by minting order.
func (k FaceKey) Less(other FaceKey) bool { return k < other }

func (k FaceKey) String() string { return fmt.Sprintf("f%d", uint64(k)) }

// ArcKey identifies a directed arc by its source and destination vertex keys.
// The key is derived entirely from the endpoints, so the opposite arc's key
// is available without any storage lookup.
type ArcKey struct {
	A, B VertexKey
}

// ArcBetween returns the key of the arc directed from a to b.
func ArcBetween(a, b VertexKey) ArcKey { return ArcKey{A: a, B: b} }

// Opposite returns the key of the arc directed the other way.
func (k ArcKey) Opposite() ArcKey { return ArcKey{A: k.B, B: k.A} }

// Source returns the key of the vertex the arc is directed away from.
func (k ArcKey) Source() VertexKey { return k.A }

// Destination returns the key of the vertex the arc is directed toward.
func (k ArcKey) Destination() VertexKey { return k.B }

// Edge returns the key of the composite edge the arc belongs to. Both arcs
// of a composite edge map to the same edge key.
func (k ArcKey) Edge() EdgeKey { return EdgeBetween(k.A, k.B) }

// Less orders arc keys lexicographically by endpoints.
func (k ArcKey) Less(other ArcKey) bool {
	if k.A != other.A {
		return k.A < other.A
	}
	return k.B < other.B
}

func (k ArcKey) String() string { return fmt.Sprintf("%s->%s", k.A, k.B) }

// EdgeKey identifies a composite edge by its unordered pair of vertex keys.
// The pair is canonicalized so that the key is independent of arc direction.
type EdgeKey struct {
	A, B VertexKey
}

// EdgeBetween returns the key of the composite edge joining a and b.
func EdgeBetween(a, b VertexKey) EdgeKey {
	if b < a {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}
}

// Less orders edge keys lexicographically by endpoints.
func (k EdgeKey) Less(other EdgeKey) bool {
	if k.A != other.A {
		return k.A < other.A
	}
	return k.B < other.B
}

func (k EdgeKey) String() string { return fmt.Sprintf("%s--%s", k.A, k.B) }

// Selector identifies topology either absolutely by key or relative to some
// other structure by index. Operations that accept a Selector document what
// an index is relative to; for example, bridging selects the nth arc of the
// initiating arc's ring.
type Selector[K any] struct {
	key     K
	index   int
	isIndex bool
}

// ByKey selects topology by its key.
func ByKey[K any](key K) Selector[K] { return Selector[K]{key: key} }

// ByIndex selects topology by a relative index.
func ByIndex[K any](index int) Selector[K] { return Selector[K]{index: index, isIndex: true} }

// keyOrElse returns the selector's key, resolving an index through f.
func (s Selector[K]) keyOrElse(f func(int) (K, error)) (K, error) {
	if s.isIndex {
		return f(s.index)
	}
	return s.key, nil
}
