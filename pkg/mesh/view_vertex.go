package mesh

import "github.com/hedron-dev/hedron/pkg/geom"

// VertexView is an immutable view of a vertex. Views are cheap handles bound
// to a mesh and a key; any number of immutable views may exist at once.
// Structural edits invalidate outstanding views, so rebind after mutating.
//
// Traversal methods on the consistent public API panic only if the mesh's
// internal invariants are violated, which indicates a bug in the mutation
// engine rather than caller error.
type VertexView[G any] struct {
	mesh *Mesh[G]
	key  VertexKey
}

// Key returns the vertex's key.
func (v VertexView[G]) Key() VertexKey { return v.key }

// Geometry returns the vertex's geometry.
func (v VertexView[G]) Geometry() G {
	return expectConsistent(v.mesh.core.vertex(v.key)).Geometry
}

// Position returns the vertex's position through the mesh's surface
// capability. Returns ErrGeometry if the mesh has no surface.
func (v VertexView[G]) Position() (geom.Point, error) {
	return v.mesh.position(v.key)
}

// Leading returns a view of the vertex's leading arc, which is always an
// outgoing arc. It reports ok=false for a vertex with no incident arcs.
func (v VertexView[G]) Leading() (ArcView[G], bool) {
	payload := expectConsistent(v.mesh.core.vertex(v.key))
	if payload.Leading == nil {
		return ArcView[G]{}, false
	}
	return ArcView[G]{mesh: v.mesh, key: *payload.Leading}, true
}

// Outgoing returns a circulator over the arcs directed away from the vertex,
// starting at the leading arc.
func (v VertexView[G]) Outgoing() *OutgoingCirculator[G] {
	return newOutgoingCirculator(v.mesh, v.key)
}

// Incoming returns a circulator over the arcs directed toward the vertex.
// Each incoming arc is the opposite of an outgoing arc.
func (v VertexView[G]) Incoming() *IncomingCirculator[G] {
	return &IncomingCirculator[G]{outgoing: newOutgoingCirculator(v.mesh, v.key)}
}

// Faces returns a circulator over the faces incident to the vertex.
func (v VertexView[G]) Faces() *VertexFaceCirculator[G] {
	return &VertexFaceCirculator[G]{outgoing: newOutgoingCirculator(v.mesh, v.key)}
}

// Valence returns the number of arcs directed away from the vertex.
func (v VertexView[G]) Valence() int {
	arcs := expectConsistent(v.mesh.core.outgoing(v.key))
	return len(arcs)
}

// IsBoundary reports whether the vertex lies on a boundary, that is, whether
// any of its outgoing arcs has no face. A vertex with no incident arcs is
// considered a boundary vertex.
func (v VertexView[G]) IsBoundary() bool {
	arcs := expectConsistent(v.mesh.core.outgoing(v.key))
	if len(arcs) == 0 {
		return true
	}
	for _, key := range arcs {
		if expectConsistent(v.mesh.core.arc(key)).IsBoundary() {
			return true
		}
	}
	return false
}

// NeighborCentroid returns the centroid of the positions of the vertices
// adjacent to this one. It reports ok=false if the mesh has no surface
// capability or the vertex has no neighbors.
func (v VertexView[G]) NeighborCentroid() (geom.Point, bool) {
	if v.mesh.surface == nil {
		return geom.Point{}, false
	}
	arcs := expectConsistent(v.mesh.core.outgoing(v.key))
	points := make([]geom.Point, 0, len(arcs))
	for _, key := range arcs {
		neighbor := expectConsistent(v.mesh.core.vertex(key.Destination()))
		points = append(points, v.mesh.surface.Position(neighbor.Geometry))
	}
	return geom.Centroid(points)
}

// VertexMut is a mutable view of a vertex. Mutable views are the entry
// points for edits; by convention hold at most one mutable view at a time.
type VertexMut[G any] struct {
	VertexView[G]
}

// SetGeometry replaces the vertex's geometry.
func (v VertexMut[G]) SetGeometry(geometry G) {
	expectConsistent(v.mesh.core.vertex(v.key)).Geometry = geometry
}

// MoveTo updates the vertex's position through the mesh's surface
// capability. Returns ErrGeometry if the mesh has no surface.
func (v VertexMut[G]) MoveTo(position geom.Point) error {
	if v.mesh.surface == nil {
		return ErrGeometry
	}
	payload := expectConsistent(v.mesh.core.vertex(v.key))
	payload.Geometry = v.mesh.surface.MoveTo(payload.Geometry, position)
	return nil
}

// VertexOrphan is an orphan view of a vertex: a key and a pointer to the
// vertex's geometry, with no access to topology. Orphan views cannot
// traverse the mesh, so many of them can be held at once for geometry
// writes. Structural edits invalidate outstanding orphan views.
type VertexOrphan[G any] struct {
	key      VertexKey
	geometry *G
}

// Key returns the vertex's key.
func (o *VertexOrphan[G]) Key() VertexKey { return o.key }

// Geometry returns the vertex's geometry.
func (o *VertexOrphan[G]) Geometry() G { return *o.geometry }

// SetGeometry replaces the vertex's geometry.
func (o *VertexOrphan[G]) SetGeometry(geometry G) { *o.geometry = geometry }
