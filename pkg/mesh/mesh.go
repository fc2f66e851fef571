package mesh

import "github.com/hedron-dev/hedron/pkg/geom"

// Mesh is a half-edge representation of polygonal topology. It stores
// vertices, directed arcs, composite edges, and faces in keyed storages and
// exposes topological views for traversal and structural edits.
//
// Structural edits follow a snapshot-then-commit discipline: all validation
// happens against a read-only snapshot of the mesh, and the commit that
// follows applies only infallible primitives. A mesh is therefore never left
// partially mutated; a failed operation returns an error and the mesh is
// exactly as it was. Every committed edit yields a mesh for which [Mesh.Validate]
// returns nil.
//
// The zero value is not usable; use [New], [NewPointMesh], or one of the raw
// buffer constructors. Mesh is not safe for concurrent use without external
// synchronization.
type Mesh[G any] struct {
	core    *Core[G]
	surface *Surface[G]
	version uint64
}

// Option configures a mesh at construction time.
type Option[G any] func(*Mesh[G])

// WithSurface attaches a surface capability to the mesh, enabling spatial
// operations (midpoint splits, normals, extrusion, smoothing, bounding box).
func WithSurface[G any](surface Surface[G]) Option[G] {
	return func(m *Mesh[G]) {
		s := surface
		m.surface = &s
	}
}

// New creates an empty mesh with the given options.
func New[G any](opts ...Option[G]) *Mesh[G] {
	m := &Mesh[G]{core: newCore[G]()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewPointMesh creates an empty mesh whose vertex geometry is a bare point,
// with the point surface already attached.
func NewPointMesh() *Mesh[geom.Point] {
	return New(WithSurface(PointSurface()))
}

// VertexStorage returns the mesh's vertex storage.
func (m *Mesh[G]) VertexStorage() *Storage[VertexKey, Vertex[G]] { return m.core.vertices }

// ArcStorage returns the mesh's arc storage.
func (m *Mesh[G]) ArcStorage() *Storage[ArcKey, Arc] { return m.core.arcs }

// EdgeStorage returns the mesh's edge storage.
func (m *Mesh[G]) EdgeStorage() *Storage[EdgeKey, Edge] { return m.core.edges }

// FaceStorage returns the mesh's face storage.
func (m *Mesh[G]) FaceStorage() *Storage[FaceKey, Face] { return m.core.faces }

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh[G]) VertexCount() int { return m.core.vertices.Len() }

// ArcCount returns the number of arcs in the mesh.
func (m *Mesh[G]) ArcCount() int { return m.core.arcs.Len() }

// EdgeCount returns the number of composite edges in the mesh.
func (m *Mesh[G]) EdgeCount() int { return m.core.edges.Len() }

// FaceCount returns the number of faces in the mesh.
func (m *Mesh[G]) FaceCount() int { return m.core.faces.Len() }

// Version returns the mesh's structural version. It increments once per
// committed structural edit; geometry-only writes through orphan views do
// not change it. Circulators capture the version at creation and panic if
// iterated after it changes.
func (m *Mesh[G]) Version() uint64 { return m.version }

// =============================================================================
// Views
// =============================================================================

// Vertex returns an immutable view of the vertex with the given key.
func (m *Mesh[G]) Vertex(key VertexKey) (VertexView[G], bool) {
	if !m.core.vertices.Contains(key) {
		return VertexView[G]{}, false
	}
	return VertexView[G]{mesh: m, key: key}, true
}

// VertexMut returns a mutable view of the vertex with the given key. Mutable
// views are edit entry points; hold at most one at a time.
func (m *Mesh[G]) VertexMut(key VertexKey) (VertexMut[G], bool) {
	view, ok := m.Vertex(key)
	return VertexMut[G]{VertexView: view}, ok
}

// Arc returns an immutable view of the arc with the given key.
func (m *Mesh[G]) Arc(key ArcKey) (ArcView[G], bool) {
	if !m.core.arcs.Contains(key) {
		return ArcView[G]{}, false
	}
	return ArcView[G]{mesh: m, key: key}, true
}

// ArcMut returns a mutable view of the arc with the given key.
func (m *Mesh[G]) ArcMut(key ArcKey) (ArcMut[G], bool) {
	view, ok := m.Arc(key)
	return ArcMut[G]{ArcView: view}, ok
}

// Edge returns an immutable view of the composite edge with the given key.
func (m *Mesh[G]) Edge(key EdgeKey) (EdgeView[G], bool) {
	if !m.core.edges.Contains(key) {
		return EdgeView[G]{}, false
	}
	return EdgeView[G]{mesh: m, key: key}, true
}

// Face returns an immutable view of the face with the given key.
func (m *Mesh[G]) Face(key FaceKey) (FaceView[G], bool) {
	if !m.core.faces.Contains(key) {
		return FaceView[G]{}, false
	}
	return FaceView[G]{mesh: m, key: key}, true
}

// FaceMut returns a mutable view of the face with the given key.
func (m *Mesh[G]) FaceMut(key FaceKey) (FaceMut[G], bool) {
	view, ok := m.Face(key)
	return FaceMut[G]{FaceView: view}, ok
}

// Vertices returns immutable views of all vertices in deterministic key
// order.
func (m *Mesh[G]) Vertices() []VertexView[G] {
	keys := m.core.vertices.Keys()
	views := make([]VertexView[G], len(keys))
	for i, key := range keys {
		views[i] = VertexView[G]{mesh: m, key: key}
	}
	return views
}

// Arcs returns immutable views of all arcs in deterministic key order.
func (m *Mesh[G]) Arcs() []ArcView[G] {
	keys := m.core.arcs.Keys()
	views := make([]ArcView[G], len(keys))
	for i, key := range keys {
		views[i] = ArcView[G]{mesh: m, key: key}
	}
	return views
}

// Edges returns immutable views of all composite edges in deterministic key
// order.
func (m *Mesh[G]) Edges() []EdgeView[G] {
	keys := m.core.edges.Keys()
	views := make([]EdgeView[G], len(keys))
	for i, key := range keys {
		views[i] = EdgeView[G]{mesh: m, key: key}
	}
	return views
}

// Faces returns immutable views of all faces in deterministic key order.
func (m *Mesh[G]) Faces() []FaceView[G] {
	keys := m.core.faces.Keys()
	views := make([]FaceView[G], len(keys))
	for i, key := range keys {
		views[i] = FaceView[G]{mesh: m, key: key}
	}
	return views
}

// OrphanVertices returns orphan views of all vertices. Orphan views expose
// only a key and geometry, so they can be held many at a time for geometry
// writes; structural edits invalidate them.
func (m *Mesh[G]) OrphanVertices() []*VertexOrphan[G] {
	keys := m.core.vertices.Keys()
	orphans := make([]*VertexOrphan[G], len(keys))
	for i, key := range keys {
		payload := expectConsistent(m.core.vertices.Get(key))
		orphans[i] = &VertexOrphan[G]{key: key, geometry: &payload.Geometry}
	}
	return orphans
}

// OrphanArcs returns orphan views of all arcs.
func (m *Mesh[G]) OrphanArcs() []*ArcOrphan {
	keys := m.core.arcs.Keys()
	orphans := make([]*ArcOrphan, len(keys))
	for i, key := range keys {
		payload := expectConsistent(m.core.arcs.Get(key))
		orphans[i] = &ArcOrphan{key: key, geometry: &payload.Geometry}
	}
	return orphans
}

// OrphanEdges returns orphan views of all composite edges.
func (m *Mesh[G]) OrphanEdges() []*EdgeOrphan {
	keys := m.core.edges.Keys()
	orphans := make([]*EdgeOrphan, len(keys))
	for i, key := range keys {
		payload := expectConsistent(m.core.edges.Get(key))
		orphans[i] = &EdgeOrphan{key: key, geometry: &payload.Geometry}
	}
	return orphans
}

// OrphanFaces returns orphan views of all faces.
func (m *Mesh[G]) OrphanFaces() []*FaceOrphan {
	keys := m.core.faces.Keys()
	orphans := make([]*FaceOrphan, len(keys))
	for i, key := range keys {
		payload := expectConsistent(m.core.faces.Get(key))
		orphans[i] = &FaceOrphan{key: key, geometry: &payload.Geometry}
	}
	return orphans
}

// =============================================================================
// Whole-mesh queries and operations
// =============================================================================

// Arity describes the number of sides of the faces in a mesh. A mesh with no
// faces has the uniform arity zero.
type Arity struct {
	Min, Max int
}

// IsUniform reports whether every face has the same arity.
func (a Arity) IsUniform() bool { return a.Min == a.Max }

// Arity returns the arity of the mesh's faces.
func (m *Mesh[G]) Arity() Arity {
	var arity Arity
	first := true
	for _, face := range m.Faces() {
		n := face.Arity()
		if first {
			arity = Arity{Min: n, Max: n}
			first = false
			continue
		}
		arity.Min = min(arity.Min, n)
		arity.Max = max(arity.Max, n)
	}
	return arity
}

// AABB returns the axis-aligned bounding box enclosing the mesh's vertices.
// It returns ErrGeometry if the mesh has no surface capability and
// ErrTopologyNotFound if the mesh has no vertices.
func (m *Mesh[G]) AABB() (geom.AABB, error) {
	if m.surface == nil {
		return geom.AABB{}, ErrGeometry
	}
	points := make([]geom.Point, 0, m.VertexCount())
	for _, vertex := range m.Vertices() {
		points = append(points, m.surface.Position(vertex.Geometry()))
	}
	box, ok := geom.BoundingBox(points)
	if !ok {
		return geom.AABB{}, ErrTopologyNotFound
	}
	return box, nil
}

// Triangulate tessellates every face of the mesh into triangles by fanning
// from each face's leading vertex. Faces that are already triangles are left
// untouched, so triangulation is idempotent.
//
// Returns ErrTopologyConflict if a fan diagonal of some face already exists
// in the mesh; no faces are modified after the first failure.
func (m *Mesh[G]) Triangulate() error {
	// Snapshot the keys first: splitting faces inserts new ones that must
	// not be revisited.
	faces := m.core.faces.Keys()
	for _, key := range faces {
		face := expectConsistent(m.FaceMut(key))
		if err := face.Triangulate(); err != nil {
			return err
		}
	}
	return nil
}

// Smooth relaxes the mesh's vertex positions toward the centroid of their
// neighbors. A factor of zero leaves the mesh unchanged and a factor of one
// moves each vertex onto the centroid. Returns ErrGeometry if the mesh has
// no surface capability.
func (m *Mesh[G]) Smooth(factor float64) error {
	if m.surface == nil {
		return ErrGeometry
	}
	positions := make(map[VertexKey]geom.Point, m.VertexCount())
	for _, vertex := range m.Vertices() {
		centroid, ok := vertex.NeighborCentroid()
		if !ok {
			continue // isolated vertices have no neighbors to relax toward
		}
		position := m.surface.Position(vertex.Geometry())
		positions[vertex.Key()] = position.Translate(centroid.Sub(position).Scale(factor))
	}
	for _, vertex := range m.OrphanVertices() {
		if target, ok := positions[vertex.Key()]; ok {
			vertex.SetGeometry(m.surface.MoveTo(vertex.Geometry(), target))
		}
	}
	return nil
}

// position returns the position of the vertex through the surface
// capability.
func (m *Mesh[G]) position(key VertexKey) (geom.Point, error) {
	if m.surface == nil {
		return geom.Point{}, ErrGeometry
	}
	vertex, ok := m.core.vertices.Get(key)
	if !ok {
		return geom.Point{}, ErrTopologyNotFound
	}
	return m.surface.Position(vertex.Geometry), nil
}
