package mesh

// arcLink records a pending ring link: to will follow from.
type arcLink struct {
	from, to ArcKey
}

// vertexLeading records a pending leading-arc assignment.
type vertexLeading struct {
	vertex VertexKey
	arc    ArcKey
}

// faceInsertCache describes a fully validated face insertion: which arcs
// bound the new ring, which of them must be created, every ring link to
// rewrite, and every leading arc to assign. Building the cache performs all
// fallible reads; applying it is infallible.
type faceInsertCache struct {
	arcs     []ArcKey
	isNew    []bool
	links    []arcLink
	leadings []vertexLeading
	geometry any
}

// snapshotFaceInsert validates inserting a face over the given perimeter of
// vertices, in order, against a read-only core.
//
// The linkage plan follows the classic halfedge insertion: reused arcs must
// be boundary arcs, and wherever the new ring interrupts an existing boundary
// the surrounding boundary arcs are re-spliced around it. Vertices already
// fully surrounded by faces cannot take another one, since the edge fan
// around a vertex would no longer be a disc.
func snapshotFaceInsert[G any](core *Core[G], perimeter []VertexKey, geometry any) (*faceInsertCache, error) {
	n := len(perimeter)
	if n < 3 {
		return nil, ErrArityNonPolygonal
	}
	seen := make(map[VertexKey]bool, n)
	for _, key := range perimeter {
		if !core.vertices.Contains(key) {
			return nil, ErrTopologyNotFound
		}
		if seen[key] {
			return nil, ErrTopologyMalformed
		}
		seen[key] = true
	}

	cache := &faceInsertCache{
		arcs:     make([]ArcKey, n),
		isNew:    make([]bool, n),
		geometry: geometry,
	}
	for i := range n {
		key := ArcBetween(perimeter[i], perimeter[(i+1)%n])
		cache.arcs[i] = key
		arc, exists := core.arcs.Get(key)
		if exists && !arc.IsBoundary() {
			// The arc already bounds a face; a second one on the same side
			// would make the edge adjoin more than two faces.
			return nil, ErrTopologyConflict
		}
		cache.isNew[i] = !exists
	}

	// next reads ring links from the snapshot. Links queued in cache.links
	// are deliberately not visible here; every splice below is planned
	// against the pre-insertion state.
	next := func(key ArcKey) (ArcKey, error) {
		link, ok := core.reachableNext(key)
		if !ok {
			return ArcKey{}, ErrTopologyMalformed
		}
		return link, nil
	}
	previous := func(key ArcKey) (ArcKey, error) {
		link, ok := core.reachablePrevious(key)
		if !ok {
			return ArcKey{}, ErrTopologyMalformed
		}
		return link, nil
	}

	// Where two consecutive reused arcs are not already linked, the boundary
	// arcs between them belong to another gap around the shared vertex. Find
	// a free gap elsewhere around the vertex and move the patch there.
	for i := range n {
		ii := (i + 1) % n
		if cache.isNew[i] || cache.isNew[ii] {
			continue
		}
		innerPrev, innerNext := cache.arcs[i], cache.arcs[ii]
		current, err := next(innerPrev)
		if err != nil {
			return nil, err
		}
		if current == innerNext {
			continue
		}
		boundaryPrev := innerNext.Opposite()
		for {
			link, err := next(boundaryPrev)
			if err != nil {
				return nil, err
			}
			boundaryPrev = link.Opposite()
			if boundaryPrev == innerPrev {
				// No free gap around the vertex; the patch cannot move.
				return nil, ErrTopologyConflict
			}
			arc, ok := core.arcs.Get(boundaryPrev)
			if !ok {
				return nil, ErrTopologyMalformed
			}
			if arc.IsBoundary() {
				break
			}
		}
		boundaryNext, err := next(boundaryPrev)
		if err != nil {
			return nil, err
		}
		patchStart := current
		patchEnd, err := previous(innerNext)
		if err != nil {
			return nil, err
		}
		cache.links = append(cache.links,
			arcLink{boundaryPrev, patchStart},
			arcLink{patchEnd, boundaryNext},
			arcLink{innerPrev, innerNext},
		)
	}

	// Splice the new arcs into the boundary around each vertex.
	for i := range n {
		ii := (i + 1) % n
		vertex := perimeter[ii]
		innerPrev, innerNext := cache.arcs[i], cache.arcs[ii]

		id := 0
		if cache.isNew[i] {
			id |= 1
		}
		if cache.isNew[ii] {
			id |= 2
		}
		if id == 0 {
			continue
		}
		outerPrev := innerNext.Opposite()
		outerNext := innerPrev.Opposite()

		switch id {
		case 1: // innerPrev is new, innerNext reused
			boundaryPrev, err := previous(innerNext)
			if err != nil {
				return nil, err
			}
			cache.links = append(cache.links, arcLink{boundaryPrev, outerNext})
			cache.leadings = append(cache.leadings, vertexLeading{vertex, outerNext})
		case 2: // innerPrev reused, innerNext is new
			boundaryNext, err := next(innerPrev)
			if err != nil {
				return nil, err
			}
			cache.links = append(cache.links, arcLink{outerPrev, boundaryNext})
			cache.leadings = append(cache.leadings, vertexLeading{vertex, boundaryNext})
		case 3: // both new
			payload, ok := core.vertices.Get(vertex)
			if !ok {
				return nil, ErrTopologyNotFound
			}
			if payload.Leading == nil {
				cache.links = append(cache.links, arcLink{outerPrev, outerNext})
				cache.leadings = append(cache.leadings, vertexLeading{vertex, outerNext})
				break
			}
			boundaryNext, ok := core.firstBoundaryOutgoing(vertex)
			if !ok {
				// Every arc around the vertex already has a face; inserting
				// two more edges here would pinch the vertex.
				return nil, ErrTopologyConflict
			}
			boundaryPrev, err := previous(boundaryNext)
			if err != nil {
				return nil, err
			}
			cache.links = append(cache.links,
				arcLink{boundaryPrev, outerNext},
				arcLink{outerPrev, boundaryNext},
			)
		}
		cache.links = append(cache.links, arcLink{innerPrev, innerNext})
	}
	return cache, nil
}

// applyFaceInsert commits a validated face insertion and returns the new
// face's key.
func (mu *mutation[G]) applyFaceInsert(cache *faceInsertCache) FaceKey {
	for i, key := range cache.arcs {
		if cache.isNew[i] {
			mu.insertArcPair(key, nil, nil)
		}
	}
	face := expectConsistent(mu.core.faces.Insert(Face{Geometry: cache.geometry, Leading: cache.arcs[0]}))
	for _, key := range cache.arcs {
		mu.setFace(key, &face)
	}
	for _, link := range cache.links {
		mu.link(link.from, link.to)
	}
	for _, leading := range cache.leadings {
		arc := leading.arc
		mu.setLeading(leading.vertex, &arc)
	}
	return face
}

// faceRemoveCache describes a validated face removal.
type faceRemoveCache struct {
	face FaceKey
	ring []ArcKey
}

// snapshotFaceRemove validates removing a face. The face's arcs remain in
// place as boundary arcs.
func snapshotFaceRemove[G any](core *Core[G], key FaceKey) (*faceRemoveCache, error) {
	face, ok := core.face(key)
	if !ok {
		return nil, ErrTopologyNotFound
	}
	ring, ok := core.ring(face.Leading)
	if !ok {
		return nil, ErrTopologyMalformed
	}
	return &faceRemoveCache{face: key, ring: ring}, nil
}

// applyFaceRemove commits a validated face removal.
func (mu *mutation[G]) applyFaceRemove(cache *faceRemoveCache) {
	expectConsistent(mu.core.faces.Remove(cache.face))
	for _, key := range cache.ring {
		mu.setFace(key, nil)
	}
}

// faceSplitCache describes a validated face split along a new diagonal.
type faceSplitCache struct {
	face     FaceKey
	geometry any
	diagonal ArcKey
	// near holds the ring arcs from the diagonal's destination back to its
	// source; far holds the rest. Each side closes with one of the diagonal's
	// arcs to form a new face.
	near, far []ArcKey
}

// snapshotFaceSplit validates bisecting a face along a new composite edge
// between two of its vertices.
func snapshotFaceSplit[G any](core *Core[G], key FaceKey, from, to VertexKey) (*faceSplitCache, error) {
	face, ok := core.face(key)
	if !ok {
		return nil, ErrTopologyNotFound
	}
	ring, ok := core.ring(face.Leading)
	if !ok {
		return nil, ErrTopologyMalformed
	}
	if from == to {
		return nil, ErrTopologyMalformed
	}
	source, destination := -1, -1
	for i, arc := range ring {
		if arc.Source() == from {
			source = i
		}
		if arc.Source() == to {
			destination = i
		}
	}
	if source < 0 || destination < 0 {
		return nil, ErrTopologyNotFound
	}
	diagonal := ArcBetween(from, to)
	if core.arcs.Contains(diagonal) || core.arcs.Contains(diagonal.Opposite()) {
		return nil, ErrTopologyConflict
	}

	n := len(ring)
	// far runs from the source vertex toward the destination and closes with
	// the arc from destination back to source; near is the other way around.
	var far, near []ArcKey
	for i := source; i != destination; i = (i + 1) % n {
		far = append(far, ring[i])
	}
	for i := destination; i != source; i = (i + 1) % n {
		near = append(near, ring[i])
	}
	// Each new face needs at least two ring arcs beside the diagonal.
	if len(far) < 2 || len(near) < 2 {
		return nil, ErrTopologyMalformed
	}
	return &faceSplitCache{
		face:     key,
		geometry: face.Geometry,
		diagonal: diagonal,
		near:     near,
		far:      far,
	}, nil
}

// applyFaceSplit commits a validated face split and returns the key of the
// arc directed from the split's source vertex to its destination.
func (mu *mutation[G]) applyFaceSplit(cache *faceSplitCache) ArcKey {
	expectConsistent(mu.core.faces.Remove(cache.face))
	mu.insertArcPair(cache.diagonal, nil, nil)

	closeRing := func(arcs []ArcKey, closing ArcKey) {
		face := expectConsistent(mu.core.faces.Insert(Face{Geometry: cache.geometry, Leading: closing}))
		mu.link(arcs[len(arcs)-1], closing)
		mu.link(closing, arcs[0])
		mu.setFace(closing, &face)
		for _, key := range arcs {
			mu.setFace(key, &face)
		}
	}
	// The diagonal closes the far side; its opposite closes the near side.
	closeRing(cache.far, cache.diagonal.Opposite())
	closeRing(cache.near, cache.diagonal)
	return cache.diagonal
}

// faceTriangulateCache describes a validated fan triangulation of one face.
type faceTriangulateCache struct {
	face      FaceKey
	geometry  any
	ring      []ArcKey
	apex      VertexKey
	diagonals []ArcKey
}

// snapshotFaceTriangulate validates fanning a face into triangles from the
// source vertex of its leading arc. It reports ok=false for a face that is
// already a triangle.
func snapshotFaceTriangulate[G any](core *Core[G], key FaceKey) (*faceTriangulateCache, bool, error) {
	face, ok := core.face(key)
	if !ok {
		return nil, false, ErrTopologyNotFound
	}
	ring, ok := core.ring(face.Leading)
	if !ok {
		return nil, false, ErrTopologyMalformed
	}
	n := len(ring)
	if n < 3 {
		return nil, false, ErrArityNonPolygonal
	}
	if n == 3 {
		return nil, false, nil
	}
	apex := ring[0].Source()
	diagonals := make([]ArcKey, 0, n-3)
	for i := 2; i < n-1; i++ {
		diagonal := ArcBetween(apex, ring[i].Source())
		if core.arcs.Contains(diagonal) || core.arcs.Contains(diagonal.Opposite()) {
			return nil, false, ErrTopologyConflict
		}
		diagonals = append(diagonals, diagonal)
	}
	return &faceTriangulateCache{
		face:      key,
		geometry:  face.Geometry,
		ring:      ring,
		apex:      apex,
		diagonals: diagonals,
	}, true, nil
}

// applyFaceTriangulate commits a validated fan triangulation.
func (mu *mutation[G]) applyFaceTriangulate(cache *faceTriangulateCache) {
	expectConsistent(mu.core.faces.Remove(cache.face))
	for _, diagonal := range cache.diagonals {
		mu.insertArcPair(diagonal, nil, nil)
	}
	n := len(cache.ring)
	makeFace := func(arcs ...ArcKey) {
		face := expectConsistent(mu.core.faces.Insert(Face{Geometry: cache.geometry, Leading: arcs[0]}))
		for i, key := range arcs {
			mu.setFace(key, &face)
			mu.link(key, arcs[(i+1)%len(arcs)])
		}
	}
	// Triangle i spans the apex and ring vertices i+1 and i+2. The first and
	// last triangles reuse two ring arcs; the interior ones reuse one.
	makeFace(cache.ring[0], cache.ring[1], cache.diagonals[0].Opposite())
	for i := 1; i < n-3; i++ {
		makeFace(cache.diagonals[i-1], cache.ring[i+1], cache.diagonals[i].Opposite())
	}
	makeFace(cache.diagonals[n-4], cache.ring[n-2], cache.ring[n-1])
}
