// Package mesh provides an in-memory half-edge graph for polygonal mesh
// topology.
//
// # Overview
//
// A mesh stores four kinds of topology in keyed storages: vertices, directed
// arcs (half-edges), undirected composite edges pairing two opposite arcs,
// and faces. Arcs carry the connectivity: each arc knows its opposite, the
// arc following it in its ring, and the face it bounds, if any. Arcs with no
// face trace the mesh's boundaries. Every element carries an arbitrary
// geometric payload; vertices are generic over theirs so positions stay
// typed.
//
// The representation is manifold: a composite edge adjoins at most two
// faces, and edits that would violate that are rejected before anything is
// modified.
//
// # Basic Usage
//
// Build a mesh from index and vertex buffers with [FromRawBuffers] or
// [FromRawBuffersWithArity], or start empty with [New]:
//
//	m, err := mesh.FromRawBuffers(
//		[][]int{{0, 1, 2, 3}},
//		[]geom.Point{geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(1, 1), geom.Pt2(0, 1)},
//		mesh.WithSurface(mesh.PointSurface()),
//	)
//
// Traverse through views: [Mesh.Vertex], [Mesh.Arc], [Mesh.Edge], and
// [Mesh.Face] return immutable views bound to a key, and views expose
// adjacent topology ([ArcView.Next], [VertexView.Outgoing],
// [FaceView.Ring]) and circulators for iterating neighborhoods.
//
// # Editing
//
// Structural edits enter through mutable views: [ArcMut.SplitWith],
// [ArcMut.Bridge], [ArcMut.Extrude], [ArcMut.Remove], [FaceMut.Split],
// [FaceMut.Triangulate], and [FaceMut.Remove]. Every edit validates its
// preconditions against the current mesh before touching storage and
// returns a typed error on failure, leaving the mesh exactly as it was.
// Errors match the package sentinels with errors.Is.
//
// Orphan views ([Mesh.OrphanVertices] and friends) expose only a key and a
// payload's geometry, so many can be held at once for geometry passes such
// as [Mesh.Smooth]. Structural edits invalidate outstanding views and
// circulators; circulators detect stale use and panic.
//
// # Geometry
//
// The core consumes positions through a [Surface] capability rather than
// fixing a vertex type, so any payload that can surface a [geom.Point] works
// with the spatial operations (midpoint splits, normals, extrusion,
// smoothing, bounding boxes). [PointSurface] adapts [geom.Point] itself.
package mesh
