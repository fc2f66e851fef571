package mesh

import "github.com/hedron-dev/hedron/pkg/geom"

// ArcView is an immutable view of a directed arc. Arcs are the primary
// traversal mechanism of the mesh: they are directed, so their queries have
// deterministic results (unlike composite edges).
type ArcView[G any] struct {
	mesh *Mesh[G]
	key  ArcKey
}

// Key returns the arc's key.
func (a ArcView[G]) Key() ArcKey { return a.key }

// Geometry returns the arc's geometry.
func (a ArcView[G]) Geometry() any {
	return expectConsistent(a.mesh.core.arc(a.key)).Geometry
}

// IsBoundary reports whether the arc has no associated face.
func (a ArcView[G]) IsBoundary() bool {
	return expectConsistent(a.mesh.core.arc(a.key)).IsBoundary()
}

// Opposite returns the arc directed the other way along the same composite
// edge.
func (a ArcView[G]) Opposite() ArcView[G] {
	opposite := a.key.Opposite()
	expectConsistent(a.mesh.core.arc(opposite))
	return ArcView[G]{mesh: a.mesh, key: opposite}
}

// Next returns the arc following this one in its ring.
func (a ArcView[G]) Next() ArcView[G] {
	next := expectConsistent(a.mesh.core.reachableNext(a.key))
	return ArcView[G]{mesh: a.mesh, key: next}
}

// Previous returns the arc preceding this one in its ring.
func (a ArcView[G]) Previous() ArcView[G] {
	previous := expectConsistent(a.mesh.core.reachablePrevious(a.key))
	return ArcView[G]{mesh: a.mesh, key: previous}
}

// Boundary returns this arc if it is a boundary arc, otherwise its opposite
// if that is a boundary arc. It reports ok=false if neither arc of the
// composite edge is a boundary arc.
func (a ArcView[G]) Boundary() (ArcView[G], bool) {
	if a.IsBoundary() {
		return a, true
	}
	if opposite := a.Opposite(); opposite.IsBoundary() {
		return opposite, true
	}
	return ArcView[G]{}, false
}

// Source returns the vertex the arc is directed away from.
func (a ArcView[G]) Source() VertexView[G] {
	expectConsistent(a.mesh.core.vertex(a.key.Source()))
	return VertexView[G]{mesh: a.mesh, key: a.key.Source()}
}

// Destination returns the vertex the arc is directed toward.
func (a ArcView[G]) Destination() VertexView[G] {
	expectConsistent(a.mesh.core.vertex(a.key.Destination()))
	return VertexView[G]{mesh: a.mesh, key: a.key.Destination()}
}

// Edge returns the composite edge the arc belongs to.
func (a ArcView[G]) Edge() EdgeView[G] {
	key := expectConsistent(a.mesh.core.arc(a.key)).EdgeRef
	expectConsistent(a.mesh.core.edge(key))
	return EdgeView[G]{mesh: a.mesh, key: key}
}

// Face returns the face the arc belongs to. It reports ok=false for boundary
// arcs.
func (a ArcView[G]) Face() (FaceView[G], bool) {
	payload := expectConsistent(a.mesh.core.arc(a.key))
	if payload.Face == nil {
		return FaceView[G]{}, false
	}
	return FaceView[G]{mesh: a.mesh, key: *payload.Face}, true
}

// Ring returns the ring the arc belongs to.
func (a ArcView[G]) Ring() RingView[G] {
	return RingView[G]{mesh: a.mesh, arc: a.key}
}

// Vertices returns a circulator over the two vertices joined by the arc:
// first the source, then the destination.
func (a ArcView[G]) Vertices() *EndpointCirculator[G] {
	return newEndpointCirculator(a.mesh, a.key)
}

// Faces returns a circulator over the faces adjacent to the arc's composite
// edge: the arc's own face and its opposite's, skipping boundary sides.
func (a ArcView[G]) Faces() *ArcFaceCirculator[G] {
	return newArcFaceCirculator(a.mesh, a.key)
}

// Midpoint returns the point halfway between the arc's vertices. Returns
// ErrGeometry if the mesh has no surface capability.
func (a ArcView[G]) Midpoint() (geom.Point, error) {
	source, err := a.mesh.position(a.key.Source())
	if err != nil {
		return geom.Point{}, err
	}
	destination, err := a.mesh.position(a.key.Destination())
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Midpoint(source, destination), nil
}

// Normal returns the unit vector perpendicular to the arc, coplanar with the
// arc and one of its ring neighbors, pointing away from that neighbor. For a
// boundary arc of a planar face this is the outward normal. The normal is
// computed by projection, so both 2D and 3D positions are supported.
//
// Returns ErrGeometry if the mesh has no surface capability or the arc and
// its neighbor are collinear.
func (a ArcView[G]) Normal() (geom.Vector, error) {
	source, err := a.mesh.position(a.key.Source())
	if err != nil {
		return geom.Vector{}, err
	}
	destination, err := a.mesh.position(a.key.Destination())
	if err != nil {
		return geom.Vector{}, err
	}
	// The reference point is the vertex following the opposite arc, which
	// lies in the ring on the other side of the composite edge.
	reference := a.Opposite().Next().Destination()
	referencePosition, err := reference.Position()
	if err != nil {
		return geom.Vector{}, err
	}
	normal, ok := geom.PerpendicularTo(source, destination, referencePosition)
	if !ok {
		return geom.Vector{}, ErrGeometry
	}
	return normal, nil
}

// ArcMut is a mutable view of an arc and the entry point for the structural
// edits that initiate at arcs. Every edit validates against a read-only
// snapshot first and leaves the mesh untouched on error.
type ArcMut[G any] struct {
	ArcView[G]
}

// SetGeometry replaces the arc's geometry.
func (a ArcMut[G]) SetGeometry(geometry any) {
	expectConsistent(a.mesh.core.arc(a.key)).Geometry = geometry
}

// SplitWith splits the arc's composite edge into two neighboring edges that
// share a new vertex, whose geometry is produced by f. Splitting an arc from
// A to B inserts a vertex M subdividing the edge; M's leading arc is the arc
// from M to B, which is part of the same ring as the initiating arc. Both
// rings adjacent to the edge grow by one arc, so the arity of any adjacent
// faces grows by one.
//
// Returns a view of the inserted vertex.
func (a ArcMut[G]) SplitWith(f func() G) (VertexView[G], error) {
	cache, err := snapshotEdgeSplit(a.mesh.core, a.key, f())
	if err != nil {
		return VertexView[G]{}, err
	}
	mutation := a.mesh.begin()
	m := mutation.applyEdgeSplit(cache)
	mutation.commit()
	return expectConsistent(a.mesh.Vertex(m)), nil
}

// SplitAtMidpoint splits the arc's composite edge at the midpoint of its
// vertices. The inserted vertex's geometry is the source vertex's geometry
// moved to the midpoint. Returns ErrGeometry if the mesh has no surface
// capability.
func (a ArcMut[G]) SplitAtMidpoint() (VertexView[G], error) {
	midpoint, err := a.Midpoint()
	if err != nil {
		return VertexView[G]{}, err
	}
	geometry := a.Source().Geometry()
	return a.SplitWith(func() G {
		return a.mesh.surface.MoveTo(geometry, midpoint)
	})
}

// Bridge connects this boundary arc to another boundary arc with a new
// quadrilateral face, inserting arcs and edges as needed. Bridging an arc
// from A to B with an arc from C to D produces the ring over A, B, C, D.
//
// The destination may be selected by key or by index, where an index selects
// the nth arc following this one within its ring.
//
// Returns the inserted face. Returns ErrTopologyNotFound if the destination
// cannot be resolved, ErrTopologyConflict if either arc already has a face,
// and ErrTopologyMalformed if the arcs share an endpoint in a way that
// cannot form a quadrilateral.
//
// Orientation is only checked where the arcs share a ring: within a ring,
// bridging against the ring direction fails with ErrTopologyConflict. When
// the arcs lie in disconnected components there is no shared ring to check
// against, so bridging faces of opposite winding succeeds and yields a
// consistent but mixed-winding surface. Callers that require a uniform
// global orientation must keep their components consistently wound before
// bridging them.
func (a ArcMut[G]) Bridge(destination Selector[ArcKey]) (FaceView[G], error) {
	key, err := destination.keyOrElse(func(index int) (ArcKey, error) {
		arcs, ok := a.mesh.core.ring(a.key)
		if !ok || index < 0 || index >= len(arcs) {
			return ArcKey{}, ErrTopologyNotFound
		}
		return arcs[index], nil
	})
	if err != nil {
		return FaceView[G]{}, err
	}
	cache, err := snapshotArcBridge(a.mesh.core, a.key, key)
	if err != nil {
		return FaceView[G]{}, err
	}
	mutation := a.mesh.begin()
	face := mutation.applyFaceInsert(cache.face)
	mutation.commit()
	return expectConsistent(a.mesh.Face(face)), nil
}

// Extrude translates a copy of this boundary arc along its normal scaled by
// offset, then bridges the two, inserting a quadrilateral face. Returns the
// opposing arc: the arc of the new composite edge that shares the inserted
// ring with the initiating arc.
//
// Returns ErrTopologyConflict if the arc is not a boundary arc and
// ErrGeometry if the mesh has no surface capability or the normal is
// degenerate.
func (a ArcMut[G]) Extrude(offset float64) (ArcView[G], error) {
	cache, err := snapshotArcExtrude(a.mesh, a.key, offset)
	if err != nil {
		return ArcView[G]{}, err
	}
	mutation := a.mesh.begin()
	opposing := mutation.applyArcExtrude(cache)
	mutation.commit()
	return expectConsistent(a.mesh.Arc(opposing)), nil
}

// Remove deletes the arc's composite edge along with all dependent topology:
// both arcs, any faces adjacent to them, and any vertex left with no
// incident arcs. The boundary rings on either side are re-joined.
//
// Returns a view of the initiating arc's source vertex, or ok=false if that
// vertex became disjoint and was removed as well.
func (a ArcMut[G]) Remove() (VertexView[G], bool, error) {
	cache, err := snapshotEdgeRemove(a.mesh.core, a.key)
	if err != nil {
		return VertexView[G]{}, false, err
	}
	source := a.key.Source()
	mutation := a.mesh.begin()
	mutation.applyEdgeRemove(cache)
	mutation.commit()
	vertex, ok := a.mesh.Vertex(source)
	return vertex, ok, nil
}

// ArcOrphan is an orphan view of an arc: a key and a pointer to the arc's
// geometry, with no access to topology.
type ArcOrphan struct {
	key      ArcKey
	geometry *any
}

// Key returns the arc's key.
func (o *ArcOrphan) Key() ArcKey { return o.key }

// Geometry returns the arc's geometry.
func (o *ArcOrphan) Geometry() any { return *o.geometry }

// SetGeometry replaces the arc's geometry.
func (o *ArcOrphan) SetGeometry(geometry any) { *o.geometry = geometry }
