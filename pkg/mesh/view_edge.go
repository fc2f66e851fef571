package mesh

import "github.com/hedron-dev/hedron/pkg/geom"

// EdgeView is an immutable view of a composite edge, the undirected pairing
// of two opposite arcs. Composite edges carry the geometry shared by both
// directions; traversal happens through the arcs.
type EdgeView[G any] struct {
	mesh *Mesh[G]
	key  EdgeKey
}

// Key returns the edge's key.
func (e EdgeView[G]) Key() EdgeKey { return e.key }

// Geometry returns the edge's geometry.
func (e EdgeView[G]) Geometry() any {
	return expectConsistent(e.mesh.core.edge(e.key)).Geometry
}

// Arc returns the edge's leading arc.
func (e EdgeView[G]) Arc() ArcView[G] {
	leading := expectConsistent(e.mesh.core.edge(e.key)).Leading
	expectConsistent(e.mesh.core.arc(leading))
	return ArcView[G]{mesh: e.mesh, key: leading}
}

// IsBoundary reports whether either of the edge's arcs has no face.
func (e EdgeView[G]) IsBoundary() bool {
	arc := e.Arc()
	return arc.IsBoundary() || arc.Opposite().IsBoundary()
}

// Midpoint returns the point halfway between the edge's vertices. Returns
// ErrGeometry if the mesh has no surface capability.
func (e EdgeView[G]) Midpoint() (geom.Point, error) {
	return e.Arc().Midpoint()
}

// EdgeOrphan is an orphan view of a composite edge: a key and a pointer to
// the edge's geometry, with no access to topology.
type EdgeOrphan struct {
	key      EdgeKey
	geometry *any
}

// Key returns the edge's key.
func (o *EdgeOrphan) Key() EdgeKey { return o.key }

// Geometry returns the edge's geometry.
func (o *EdgeOrphan) Geometry() any { return *o.geometry }

// SetGeometry replaces the edge's geometry.
func (o *EdgeOrphan) SetGeometry(geometry any) { *o.geometry = geometry }
