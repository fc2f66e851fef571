package mesh

// FromRawBuffers builds a mesh from index and vertex buffers, where each
// element of faces lists the vertex indices of one face's perimeter in
// winding order. Faces may have mixed arities.
//
// Returns ErrTopologyNotFound if an index is out of bounds,
// ErrArityNonPolygonal if a face has fewer than three indices,
// ErrTopologyMalformed if a face repeats a vertex, and ErrTopologyConflict
// if the buffers describe a non-manifold surface.
func FromRawBuffers[G any](faces [][]int, vertices []G, opts ...Option[G]) (*Mesh[G], error) {
	m := New(opts...)
	keys := make([]VertexKey, len(vertices))
	mutation := m.begin()
	for i, geometry := range vertices {
		keys[i] = mutation.insertVertex(geometry)
	}
	mutation.commit()

	perimeter := make([]VertexKey, 0, 4)
	for _, face := range faces {
		perimeter = perimeter[:0]
		for _, index := range face {
			if index < 0 || index >= len(keys) {
				return nil, ErrTopologyNotFound
			}
			perimeter = append(perimeter, keys[index])
		}
		cache, err := snapshotFaceInsert(m.core, perimeter, nil)
		if err != nil {
			return nil, err
		}
		mutation := m.begin()
		mutation.applyFaceInsert(cache)
		mutation.commit()
	}
	return m, nil
}

// FromRawBuffersWithArity builds a mesh from a flat index buffer of faces
// with uniform arity and a vertex buffer.
//
// Returns ErrArityNonPolygonal if arity is less than three and an error
// wrapping ErrArityConflict if the index buffer's length is not a multiple
// of arity; otherwise errors are as for [FromRawBuffers].
func FromRawBuffersWithArity[G any](indices []int, vertices []G, arity int, opts ...Option[G]) (*Mesh[G], error) {
	if arity < 3 {
		return nil, ErrArityNonPolygonal
	}
	if remainder := len(indices) % arity; remainder != 0 {
		return nil, arityConflict(arity, remainder)
	}
	faces := make([][]int, 0, len(indices)/arity)
	for i := 0; i < len(indices); i += arity {
		faces = append(faces, indices[i:i+arity])
	}
	return FromRawBuffers(faces, vertices, opts...)
}

// ToRawBuffers converts the mesh into an index buffer of per-face perimeters
// and a vertex buffer, inverting [FromRawBuffers]. Faces and vertices are
// emitted in deterministic key order.
func (m *Mesh[G]) ToRawBuffers() ([][]int, []G) {
	keys := m.core.vertices.Keys()
	indices := make(map[VertexKey]int, len(keys))
	vertices := make([]G, len(keys))
	for i, key := range keys {
		indices[key] = i
		vertices[i] = expectConsistent(m.core.vertices.Get(key)).Geometry
	}
	faces := make([][]int, 0, m.FaceCount())
	for _, face := range m.Faces() {
		ring := face.Vertices()
		perimeter := make([]int, len(ring))
		for i, vertex := range ring {
			perimeter[i] = indices[vertex]
		}
		faces = append(faces, perimeter)
	}
	return faces, vertices
}

// ToRawBuffersWithArity converts the mesh into a flat index buffer and a
// vertex buffer, inverting [FromRawBuffersWithArity]. Every face must have
// the given arity; an error wrapping ErrArityConflict reports the first
// mismatch.
func (m *Mesh[G]) ToRawBuffersWithArity(arity int) ([]int, []G, error) {
	if arity < 3 {
		return nil, nil, ErrArityNonPolygonal
	}
	faces, vertices := m.ToRawBuffers()
	indices := make([]int, 0, len(faces)*arity)
	for _, perimeter := range faces {
		if len(perimeter) != arity {
			return nil, nil, arityConflict(arity, len(perimeter))
		}
		indices = append(indices, perimeter...)
	}
	return indices, vertices, nil
}
