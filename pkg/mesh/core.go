package mesh

// Storage capability interfaces. Both *Mesh and the in-flight mutation own a
// Core and satisfy these, so helpers that only need storage access can be
// written once against the narrowest capability they require.
type (
	// AsVertexStorage provides access to vertex storage.
	AsVertexStorage[G any] interface {
		VertexStorage() *Storage[VertexKey, Vertex[G]]
	}
	// AsArcStorage provides access to arc storage.
	AsArcStorage interface {
		ArcStorage() *Storage[ArcKey, Arc]
	}
	// AsEdgeStorage provides access to edge storage.
	AsEdgeStorage interface {
		EdgeStorage() *Storage[EdgeKey, Edge]
	}
	// AsFaceStorage provides access to face storage.
	AsFaceStorage interface {
		FaceStorage() *Storage[FaceKey, Face]
	}
)

// Core binds the four topological storages of a mesh together. It carries no
// validity guarantees of its own: a Core owned by a mesh is consistent
// between mutations, while a Core owned by an in-flight mutation may be
// transiently inconsistent.
type Core[G any] struct {
	vertices *Storage[VertexKey, Vertex[G]]
	arcs     *Storage[ArcKey, Arc]
	edges    *Storage[EdgeKey, Edge]
	faces    *Storage[FaceKey, Face]
}

func newCore[G any]() *Core[G] {
	return &Core[G]{
		vertices: NewMintingStorage[VertexKey, Vertex[G]](func(n uint64) VertexKey { return VertexKey(n) }),
		arcs:     NewStorage[ArcKey, Arc](),
		edges:    NewStorage[EdgeKey, Edge](),
		faces:    NewMintingStorage[FaceKey, Face](func(n uint64) FaceKey { return FaceKey(n) }),
	}
}

// VertexStorage returns the vertex storage.
func (c *Core[G]) VertexStorage() *Storage[VertexKey, Vertex[G]] { return c.vertices }

// ArcStorage returns the arc storage.
func (c *Core[G]) ArcStorage() *Storage[ArcKey, Arc] { return c.arcs }

// EdgeStorage returns the edge storage.
func (c *Core[G]) EdgeStorage() *Storage[EdgeKey, Edge] { return c.edges }

// FaceStorage returns the face storage.
func (c *Core[G]) FaceStorage() *Storage[FaceKey, Face] { return c.faces }

// =============================================================================
// Reachable helpers
// =============================================================================
//
// The helpers below are the fallible traversal primitives shared by views,
// circulators, and mutation snapshots. They report ok=false instead of
// panicking so that snapshot code can turn missing or unlinked topology into
// typed errors.

func (c *Core[G]) vertex(key VertexKey) (*Vertex[G], bool) { return c.vertices.Get(key) }

func (c *Core[G]) arc(key ArcKey) (*Arc, bool) { return c.arcs.Get(key) }

func (c *Core[G]) edge(key EdgeKey) (*Edge, bool) { return c.edges.Get(key) }

func (c *Core[G]) face(key FaceKey) (*Face, bool) { return c.faces.Get(key) }

// reachableNext returns the key of the arc following the given arc in its
// ring.
func (c *Core[G]) reachableNext(key ArcKey) (ArcKey, bool) {
	arc, ok := c.arcs.Get(key)
	if !ok || arc.Next == nil {
		return ArcKey{}, false
	}
	return *arc.Next, true
}

// reachablePrevious returns the key of the arc preceding the given arc in
// its ring.
func (c *Core[G]) reachablePrevious(key ArcKey) (ArcKey, bool) {
	arc, ok := c.arcs.Get(key)
	if !ok || arc.Previous == nil {
		return ArcKey{}, false
	}
	return *arc.Previous, true
}

// ring collects the arcs of the ring containing the given arc, starting at
// it. It reports ok=false if a link is missing or the walk does not close
// within the arc count, which indicates malformed topology.
func (c *Core[G]) ring(start ArcKey) ([]ArcKey, bool) {
	var ring []ArcKey
	key := start
	for range c.arcs.Len() {
		ring = append(ring, key)
		next, ok := c.reachableNext(key)
		if !ok {
			return nil, false
		}
		if next == start {
			return ring, true
		}
		key = next
	}
	return nil, false
}

// outgoing collects the keys of all arcs directed away from the vertex,
// starting at its leading arc. An isolated vertex yields an empty slice. It
// reports ok=false for malformed topology.
func (c *Core[G]) outgoing(key VertexKey) ([]ArcKey, bool) {
	vertex, ok := c.vertices.Get(key)
	if !ok {
		return nil, false
	}
	if vertex.Leading == nil {
		return nil, true
	}
	start := *vertex.Leading
	var arcs []ArcKey
	current := start
	for range c.arcs.Len() {
		if !c.arcs.Contains(current) {
			return nil, false
		}
		arcs = append(arcs, current)
		// The next outgoing arc follows the incoming opposite around the
		// vertex.
		next, ok := c.reachableNext(current.Opposite())
		if !ok {
			return nil, false
		}
		if next == start {
			return arcs, true
		}
		current = next
	}
	return nil, false
}

// firstBoundaryOutgoing returns the key of a boundary arc directed away from
// the vertex, if one exists. The search starts at the leading arc, so the
// result is deterministic for a given mesh state.
func (c *Core[G]) firstBoundaryOutgoing(key VertexKey) (ArcKey, bool) {
	arcs, ok := c.outgoing(key)
	if !ok {
		return ArcKey{}, false
	}
	for _, candidate := range arcs {
		if arc, ok := c.arcs.Get(candidate); ok && arc.IsBoundary() {
			return candidate, true
		}
	}
	return ArcKey{}, false
}
