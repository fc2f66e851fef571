package mesh

// mutation is an in-flight structural edit. It takes exclusive ownership of
// the mesh's core for the duration of the commit; the mesh holds an empty
// placeholder core until the mutation commits, so a panic mid-commit cannot
// leave callers reading half-applied topology through the original mesh.
//
// All fallible work happens before a mutation begins, in the snapshot
// functions that build the caches consumed here. The primitives below are
// infallible on the states those caches describe; a failure inside a commit
// is an internal invariant violation, not a recoverable condition.
type mutation[G any] struct {
	mesh *Mesh[G]
	core *Core[G]
}

// begin starts a structural edit, swapping the mesh's core for an empty
// placeholder.
func (m *Mesh[G]) begin() *mutation[G] {
	mu := &mutation[G]{mesh: m, core: m.core}
	m.core = newCore[G]()
	return mu
}

// commit returns the core to the mesh and bumps the structural version,
// invalidating outstanding circulators.
func (mu *mutation[G]) commit() {
	mu.mesh.core = mu.core
	mu.mesh.version++
	mu.core = nil
}

// =============================================================================
// Primitives
// =============================================================================

// insertVertex stores a vertex with no incident arcs and returns its key.
func (mu *mutation[G]) insertVertex(geometry G) VertexKey {
	return expectConsistent(mu.core.vertices.Insert(Vertex[G]{Geometry: geometry}))
}

// insertArcPair stores the two arcs of a composite edge along with the edge
// payload. The arcs are unlinked and boundary; the edge's leading arc is the
// given key.
func (mu *mutation[G]) insertArcPair(key ArcKey, arcGeometry, edgeGeometry any) {
	edge := key.Edge()
	if !mu.core.arcs.InsertWithKey(key, Arc{Geometry: arcGeometry, EdgeRef: edge}) {
		panic("mesh: internal consistency violated")
	}
	if !mu.core.arcs.InsertWithKey(key.Opposite(), Arc{Geometry: arcGeometry, EdgeRef: edge}) {
		panic("mesh: internal consistency violated")
	}
	if !mu.core.edges.InsertWithKey(edge, Edge{Geometry: edgeGeometry, Leading: key}) {
		panic("mesh: internal consistency violated")
	}
}

// removeArcPair deletes both arcs of a composite edge and the edge payload.
func (mu *mutation[G]) removeArcPair(key ArcKey) {
	expectConsistent(mu.core.arcs.Remove(key))
	expectConsistent(mu.core.arcs.Remove(key.Opposite()))
	expectConsistent(mu.core.edges.Remove(key.Edge()))
}

// link makes b follow a in its ring, updating both directions.
func (mu *mutation[G]) link(a, b ArcKey) {
	from := expectConsistent(mu.core.arcs.Get(a))
	to := expectConsistent(mu.core.arcs.Get(b))
	next := b
	previous := a
	from.Next = &next
	to.Previous = &previous
}

// setFace associates an arc with a face, or with none when key is nil.
func (mu *mutation[G]) setFace(arc ArcKey, key *FaceKey) {
	payload := expectConsistent(mu.core.arcs.Get(arc))
	if key == nil {
		payload.Face = nil
		return
	}
	face := *key
	payload.Face = &face
}

// setLeading replaces the vertex's leading arc, or clears it when key is nil.
func (mu *mutation[G]) setLeading(vertex VertexKey, key *ArcKey) {
	payload := expectConsistent(mu.core.vertices.Get(vertex))
	if key == nil {
		payload.Leading = nil
		return
	}
	leading := *key
	payload.Leading = &leading
}
