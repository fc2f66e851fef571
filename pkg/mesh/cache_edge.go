package mesh

// edgeSplitCache describes a validated split of a composite edge. The split
// replaces the arcs between a and b with two edges meeting at a new vertex.
type edgeSplitCache[G any] struct {
	arc      ArcKey // the initiating arc, a -> b
	geometry G      // geometry of the vertex to insert

	abNext, abPrevious ArcKey
	baNext, baPrevious ArcKey
	abFace, baFace     *FaceKey
	abGeometry         any
	baGeometry         any
	edgeGeometry       any

	// leading-arc fixes for topology that referenced the removed arcs
	sourceLeads      bool // source vertex leads with a -> b
	destinationLeads bool // destination vertex leads with b -> a
	abFaceLeads      bool // ab's face leads with a -> b
	baFaceLeads      bool // ba's face leads with b -> a
}

func snapshotEdgeSplit[G any](core *Core[G], key ArcKey, geometry G) (*edgeSplitCache[G], error) {
	ab, ok := core.arc(key)
	if !ok {
		return nil, ErrTopologyNotFound
	}
	opposite := key.Opposite()
	ba := expectConsistent(core.arc(opposite))
	edge := expectConsistent(core.edge(key.Edge()))

	cache := &edgeSplitCache[G]{
		arc:          key,
		geometry:     geometry,
		abNext:       expectConsistent(core.reachableNext(key)),
		abPrevious:   expectConsistent(core.reachablePrevious(key)),
		baNext:       expectConsistent(core.reachableNext(opposite)),
		baPrevious:   expectConsistent(core.reachablePrevious(opposite)),
		abGeometry:   ab.Geometry,
		baGeometry:   ba.Geometry,
		edgeGeometry: edge.Geometry,
	}
	if ab.Face != nil {
		face := *ab.Face
		cache.abFace = &face
		cache.abFaceLeads = expectConsistent(core.face(face)).Leading == key
	}
	if ba.Face != nil {
		face := *ba.Face
		cache.baFace = &face
		cache.baFaceLeads = expectConsistent(core.face(face)).Leading == opposite
	}
	source := expectConsistent(core.vertex(key.Source()))
	destination := expectConsistent(core.vertex(key.Destination()))
	cache.sourceLeads = source.Leading != nil && *source.Leading == key
	cache.destinationLeads = destination.Leading != nil && *destination.Leading == opposite
	return cache, nil
}

// applyEdgeSplit commits a validated edge split and returns the key of the
// inserted vertex. The vertex's leading arc is the arc toward the initiating
// arc's destination, so it shares a ring with the initiating arc.
func (mu *mutation[G]) applyEdgeSplit(cache *edgeSplitCache[G]) VertexKey {
	ab := cache.arc
	ba := ab.Opposite()
	m := mu.insertVertex(cache.geometry)
	am := ArcBetween(ab.Source(), m)
	mb := ArcBetween(m, ab.Destination())

	mu.removeArcPair(ab)
	mu.insertArcPair(am, cache.abGeometry, cache.edgeGeometry)
	mu.insertArcPair(mb, cache.abGeometry, cache.edgeGeometry)
	for _, key := range []ArcKey{am.Opposite(), mb.Opposite()} {
		expectConsistent(mu.core.arcs.Get(key)).Geometry = cache.baGeometry
	}
	mu.setFace(am, cache.abFace)
	mu.setFace(mb, cache.abFace)
	mu.setFace(mb.Opposite(), cache.baFace)
	mu.setFace(am.Opposite(), cache.baFace)

	// Neighbor links that pointed at a removed arc move to its head half;
	// links out of a removed arc leave from its tail half. In the smallest
	// ring the removed arcs are each other's neighbors and both remaps
	// apply.
	head := func(key ArcKey) ArcKey {
		switch key {
		case ab:
			return am
		case ba:
			return mb.Opposite()
		}
		return key
	}
	tail := func(key ArcKey) ArcKey {
		switch key {
		case ab:
			return mb
		case ba:
			return am.Opposite()
		}
		return key
	}
	mu.link(tail(cache.abPrevious), am)
	mu.link(am, mb)
	mu.link(mb, head(cache.abNext))
	mu.link(tail(cache.baPrevious), mb.Opposite())
	mu.link(mb.Opposite(), am.Opposite())
	mu.link(am.Opposite(), head(cache.baNext))

	leading := mb
	mu.setLeading(m, &leading)
	if cache.sourceLeads {
		lead := am
		mu.setLeading(ab.Source(), &lead)
	}
	if cache.destinationLeads {
		lead := mb.Opposite()
		mu.setLeading(ab.Destination(), &lead)
	}
	if cache.abFaceLeads {
		expectConsistent(mu.core.faces.Get(*cache.abFace)).Leading = am
	}
	if cache.baFaceLeads {
		expectConsistent(mu.core.faces.Get(*cache.baFace)).Leading = mb.Opposite()
	}
	return m
}

// arcBridgeCache describes a validated bridge between two boundary arcs.
type arcBridgeCache struct {
	face *faceInsertCache
}

// snapshotArcBridge validates bridging the boundary arc from a to b with the
// boundary arc from c to d by inserting the face over a, b, c, d. Orientation
// conflicts surface through snapshotFaceInsert only when the arcs share a
// ring; arcs in disconnected components carry no relative orientation, so a
// bridge between faces of opposite winding is accepted.
func snapshotArcBridge[G any](core *Core[G], source, destination ArcKey) (*arcBridgeCache, error) {
	for _, key := range []ArcKey{source, destination} {
		arc, ok := core.arc(key)
		if !ok {
			return nil, ErrTopologyNotFound
		}
		if !arc.IsBoundary() {
			return nil, ErrTopologyConflict
		}
	}
	perimeter := []VertexKey{
		source.Source(), source.Destination(),
		destination.Source(), destination.Destination(),
	}
	// A shared endpoint would collapse the quadrilateral.
	seen := make(map[VertexKey]bool, len(perimeter))
	for _, key := range perimeter {
		if seen[key] {
			return nil, ErrTopologyMalformed
		}
		seen[key] = true
	}
	face, err := snapshotFaceInsert(core, perimeter, nil)
	if err != nil {
		return nil, err
	}
	return &arcBridgeCache{face: face}, nil
}

// arcExtrudeCache describes a validated extrusion of a boundary arc.
type arcExtrudeCache[G any] struct {
	arc ArcKey
	// geometries of the two vertices spanning the extruded arc, offset along
	// the arc's normal
	sourceGeometry      G // translated from the arc's destination
	destinationGeometry G // translated from the arc's source
}

// snapshotArcExtrude validates extruding the boundary arc along its normal
// scaled by offset.
func snapshotArcExtrude[G any](m *Mesh[G], key ArcKey, offset float64) (*arcExtrudeCache[G], error) {
	arc, ok := m.core.arc(key)
	if !ok {
		return nil, ErrTopologyNotFound
	}
	if !arc.IsBoundary() {
		return nil, ErrTopologyConflict
	}
	if m.surface == nil {
		return nil, ErrGeometry
	}
	view := expectConsistent(m.Arc(key))
	normal, err := view.Normal()
	if err != nil {
		return nil, err
	}
	translation := normal.Scale(offset)
	source := expectConsistent(m.core.vertex(key.Source()))
	destination := expectConsistent(m.core.vertex(key.Destination()))
	sourcePosition := m.surface.Position(source.Geometry)
	destinationPosition := m.surface.Position(destination.Geometry)
	return &arcExtrudeCache[G]{
		arc:                 key,
		sourceGeometry:      m.surface.MoveTo(destination.Geometry, destinationPosition.Translate(translation)),
		destinationGeometry: m.surface.MoveTo(source.Geometry, sourcePosition.Translate(translation)),
	}, nil
}

// applyArcExtrude commits a validated extrusion and returns the key of the
// extruded arc, directed opposite to the initiating arc within the inserted
// ring.
func (mu *mutation[G]) applyArcExtrude(cache *arcExtrudeCache[G]) ArcKey {
	c := mu.insertVertex(cache.sourceGeometry)
	d := mu.insertVertex(cache.destinationGeometry)
	perimeter := []VertexKey{cache.arc.Source(), cache.arc.Destination(), c, d}
	// Planning against the mid-commit core cannot fail here: the initiating
	// arc was verified to be a boundary arc and the other three edges of the
	// quadrilateral end at vertices that did not exist before this commit.
	face, err := snapshotFaceInsert(mu.core, perimeter, nil)
	if err != nil {
		panic("mesh: internal consistency violated")
	}
	mu.applyFaceInsert(face)
	return ArcBetween(c, d)
}

// edgeRemoveCache describes a validated removal of a composite edge and the
// topology that depends on it.
type edgeRemoveCache struct {
	arc ArcKey // the initiating arc, a -> b

	abNext, abPrevious ArcKey
	baNext, baPrevious ArcKey

	// faces to cascade, with their rings
	faces []faceRemoveCache

	sourceDisjoint      bool // a has no arcs besides the removed pair
	destinationDisjoint bool
	sourceLeads         bool // a leads with a -> b
	destinationLeads    bool // b leads with b -> a
}

func snapshotEdgeRemove[G any](core *Core[G], key ArcKey) (*edgeRemoveCache, error) {
	ab, ok := core.arc(key)
	if !ok {
		return nil, ErrTopologyNotFound
	}
	opposite := key.Opposite()
	ba := expectConsistent(core.arc(opposite))

	cache := &edgeRemoveCache{
		arc:        key,
		abNext:     expectConsistent(core.reachableNext(key)),
		abPrevious: expectConsistent(core.reachablePrevious(key)),
		baNext:     expectConsistent(core.reachableNext(opposite)),
		baPrevious: expectConsistent(core.reachablePrevious(opposite)),
	}
	for _, face := range []*FaceKey{ab.Face, ba.Face} {
		if face == nil {
			continue
		}
		removal, err := snapshotFaceRemove(core, *face)
		if err != nil {
			return nil, err
		}
		cache.faces = append(cache.faces, *removal)
	}
	// A vertex is disjoint when the removed pair are its only arcs, in which
	// case circulating from the incoming arc returns the outgoing one.
	cache.sourceDisjoint = cache.baNext == key
	cache.destinationDisjoint = cache.abNext == opposite
	source := expectConsistent(core.vertex(key.Source()))
	destination := expectConsistent(core.vertex(key.Destination()))
	cache.sourceLeads = source.Leading != nil && *source.Leading == key
	cache.destinationLeads = destination.Leading != nil && *destination.Leading == opposite
	return cache, nil
}

// applyEdgeRemove commits a validated edge removal: adjacent faces cascade,
// the boundary rings on either side are spliced back together, and vertices
// left without arcs are removed.
func (mu *mutation[G]) applyEdgeRemove(cache *edgeRemoveCache) {
	for i := range cache.faces {
		mu.applyFaceRemove(&cache.faces[i])
	}
	ab := cache.arc
	ba := ab.Opposite()
	if !cache.sourceDisjoint {
		mu.link(cache.abPrevious, cache.baNext)
	}
	if !cache.destinationDisjoint {
		mu.link(cache.baPrevious, cache.abNext)
	}
	mu.removeArcPair(ab)
	if cache.sourceDisjoint {
		expectConsistent(mu.core.vertices.Remove(ab.Source()))
	} else if cache.sourceLeads {
		leading := cache.baNext
		mu.setLeading(ab.Source(), &leading)
	}
	if cache.destinationDisjoint {
		expectConsistent(mu.core.vertices.Remove(ab.Destination()))
	} else if cache.destinationLeads {
		leading := cache.abNext
		mu.setLeading(ba.Source(), &leading)
	}
}
