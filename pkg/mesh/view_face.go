package mesh

import "github.com/hedron-dev/hedron/pkg/geom"

// FaceView is an immutable view of a face. A face owns the closed ring of
// arcs that bounds it; the ring is entered through the face's leading arc.
type FaceView[G any] struct {
	mesh *Mesh[G]
	key  FaceKey
}

// Key returns the face's key.
func (f FaceView[G]) Key() FaceKey { return f.key }

// Geometry returns the face's geometry.
func (f FaceView[G]) Geometry() any {
	return expectConsistent(f.mesh.core.face(f.key)).Geometry
}

// Arc returns the face's leading arc.
func (f FaceView[G]) Arc() ArcView[G] {
	leading := expectConsistent(f.mesh.core.face(f.key)).Leading
	expectConsistent(f.mesh.core.arc(leading))
	return ArcView[G]{mesh: f.mesh, key: leading}
}

// Ring returns the face's ring.
func (f FaceView[G]) Ring() RingView[G] {
	return f.Arc().Ring()
}

// Arity returns the number of arcs in the face's ring.
func (f FaceView[G]) Arity() int {
	return f.Ring().Arity()
}

// Arcs returns a circulator over the arcs of the face's ring, starting at
// the leading arc.
func (f FaceView[G]) Arcs() *RingCirculator[G] {
	leading := expectConsistent(f.mesh.core.face(f.key)).Leading
	return newRingCirculator(f.mesh, leading)
}

// Vertices returns the keys of the face's vertices in ring order, starting
// at the leading arc's source.
func (f FaceView[G]) Vertices() []VertexKey {
	return f.Ring().Vertices()
}

// IsBoundary reports whether any arc opposite the face's ring has no face.
func (f FaceView[G]) IsBoundary() bool {
	arcs := f.Arcs()
	for arc, ok := arcs.Next(); ok; arc, ok = arcs.Next() {
		if arc.Opposite().IsBoundary() {
			return true
		}
	}
	return false
}

// Neighbors returns views of the faces sharing a composite edge with this
// one, in ring order and without duplicates.
func (f FaceView[G]) Neighbors() []FaceView[G] {
	seen := make(map[FaceKey]bool)
	var neighbors []FaceView[G]
	arcs := f.Arcs()
	for arc, ok := arcs.Next(); ok; arc, ok = arcs.Next() {
		neighbor, ok := arc.Opposite().Face()
		if !ok || seen[neighbor.Key()] {
			continue
		}
		seen[neighbor.Key()] = true
		neighbors = append(neighbors, neighbor)
	}
	return neighbors
}

// Centroid returns the centroid of the positions of the face's vertices.
// Returns ErrGeometry if the mesh has no surface capability.
func (f FaceView[G]) Centroid() (geom.Point, error) {
	ring := expectConsistent(f.mesh.core.ring(f.Arc().Key()))
	points := make([]geom.Point, 0, len(ring))
	for _, key := range ring {
		position, err := f.mesh.position(key.Source())
		if err != nil {
			return geom.Point{}, err
		}
		points = append(points, position)
	}
	centroid, ok := geom.Centroid(points)
	if !ok {
		return geom.Point{}, ErrGeometry
	}
	return centroid, nil
}

// FaceMut is a mutable view of a face and the entry point for the structural
// edits that initiate at faces.
type FaceMut[G any] struct {
	FaceView[G]
}

// SetGeometry replaces the face's geometry.
func (f FaceMut[G]) SetGeometry(geometry any) {
	expectConsistent(f.mesh.core.face(f.key)).Geometry = geometry
}

// Split bisects the face along a new composite edge between two of its
// vertices, replacing it with two smaller faces. The vertices may be
// selected by key or by index into the face's ring.
//
// Returns the arc directed from the source vertex to the destination vertex.
// Returns ErrTopologyNotFound if either vertex is not part of the face,
// ErrTopologyConflict if they are already joined by an edge, and
// ErrTopologyMalformed if the split would leave a face with fewer than three
// sides.
func (f FaceMut[G]) Split(source, destination Selector[VertexKey]) (ArcView[G], error) {
	ring := f.Ring().Vertices()
	byIndex := func(index int) (VertexKey, error) {
		if index < 0 || index >= len(ring) {
			return 0, ErrTopologyNotFound
		}
		return ring[index], nil
	}
	from, err := source.keyOrElse(byIndex)
	if err != nil {
		return ArcView[G]{}, err
	}
	to, err := destination.keyOrElse(byIndex)
	if err != nil {
		return ArcView[G]{}, err
	}
	cache, err := snapshotFaceSplit(f.mesh.core, f.key, from, to)
	if err != nil {
		return ArcView[G]{}, err
	}
	mutation := f.mesh.begin()
	arc := mutation.applyFaceSplit(cache)
	mutation.commit()
	return expectConsistent(f.mesh.Arc(arc)), nil
}

// Triangulate tessellates the face into triangles by fanning from its
// leading vertex. Triangles are left untouched. Returns ErrTopologyConflict
// if a fan diagonal already exists in the mesh.
func (f FaceMut[G]) Triangulate() error {
	cache, ok, err := snapshotFaceTriangulate(f.mesh.core, f.key)
	if err != nil {
		return err
	}
	if !ok {
		return nil // already a triangle
	}
	mutation := f.mesh.begin()
	mutation.applyFaceTriangulate(cache)
	mutation.commit()
	return nil
}

// Remove deletes the face, leaving its ring of arcs in place as boundary
// arcs.
func (f FaceMut[G]) Remove() error {
	cache, err := snapshotFaceRemove(f.mesh.core, f.key)
	if err != nil {
		return err
	}
	mutation := f.mesh.begin()
	mutation.applyFaceRemove(cache)
	mutation.commit()
	return nil
}

// FaceOrphan is an orphan view of a face: a key and a pointer to the face's
// geometry, with no access to topology.
type FaceOrphan struct {
	key      FaceKey
	geometry *any
}

// Key returns the face's key.
func (o *FaceOrphan) Key() FaceKey { return o.key }

// Geometry returns the face's geometry.
func (o *FaceOrphan) Geometry() any { return *o.geometry }

// SetGeometry replaces the face's geometry.
func (o *FaceOrphan) SetGeometry(geometry any) { *o.geometry = geometry }

// RingView is an immutable view of a ring of arcs. Every arc belongs to
// exactly one ring; a ring either bounds a face or traces a boundary.
type RingView[G any] struct {
	mesh *Mesh[G]
	arc  ArcKey
}

// Arc returns the arc through which the ring was entered.
func (r RingView[G]) Arc() ArcView[G] {
	expectConsistent(r.mesh.core.arc(r.arc))
	return ArcView[G]{mesh: r.mesh, key: r.arc}
}

// Face returns the face bounded by the ring. It reports ok=false for a
// boundary ring.
func (r RingView[G]) Face() (FaceView[G], bool) {
	return r.Arc().Face()
}

// Arity returns the number of arcs in the ring.
func (r RingView[G]) Arity() int {
	return len(expectConsistent(r.mesh.core.ring(r.arc)))
}

// Arcs returns a circulator over the arcs of the ring, starting at the arc
// through which the ring was entered.
func (r RingView[G]) Arcs() *RingCirculator[G] {
	return newRingCirculator(r.mesh, r.arc)
}

// Vertices returns the keys of the ring's vertices in order, starting at the
// entry arc's source.
func (r RingView[G]) Vertices() []VertexKey {
	ring := expectConsistent(r.mesh.core.ring(r.arc))
	vertices := make([]VertexKey, len(ring))
	for i, key := range ring {
		vertices[i] = key.Source()
	}
	return vertices
}
