package mesh

// Circulators iterate over the topology surrounding an element: the arcs
// around a vertex, the arcs of a ring, the faces at an edge. Each circulator
// captures the mesh's structural version at creation and panics if advanced
// after a structural edit, since the neighborhood it was walking may no
// longer exist.

func checkVersion[G any](m *Mesh[G], version uint64) {
	if m.version != version {
		panic("mesh: circulator used after structural edit")
	}
}

// OutgoingCirculator iterates over the arcs directed away from a vertex,
// starting at the vertex's leading arc.
type OutgoingCirculator[G any] struct {
	mesh    *Mesh[G]
	version uint64
	start   *ArcKey
	current *ArcKey
	steps   int
}

func newOutgoingCirculator[G any](m *Mesh[G], key VertexKey) *OutgoingCirculator[G] {
	c := &OutgoingCirculator[G]{mesh: m, version: m.version}
	if leading := expectConsistent(m.core.vertex(key)).Leading; leading != nil {
		start := *leading
		c.start = &start
		current := start
		c.current = &current
	}
	return c
}

// Next returns the next outgoing arc. It reports ok=false once the
// circulation returns to the leading arc.
func (c *OutgoingCirculator[G]) Next() (ArcView[G], bool) {
	checkVersion(c.mesh, c.version)
	if c.current == nil {
		return ArcView[G]{}, false
	}
	// Bound the walk by the arc count so malformed topology cannot spin
	// forever.
	if c.steps > c.mesh.core.arcs.Len() {
		panic("mesh: internal consistency violated")
	}
	arc := *c.current
	next := expectConsistent(c.mesh.core.reachableNext(arc.Opposite()))
	if next == *c.start {
		c.current = nil
	} else {
		*c.current = next
	}
	c.steps++
	return ArcView[G]{mesh: c.mesh, key: arc}, true
}

// Reset rewinds the circulator to the leading arc.
func (c *OutgoingCirculator[G]) Reset() {
	checkVersion(c.mesh, c.version)
	c.steps = 0
	if c.start == nil {
		c.current = nil
		return
	}
	current := *c.start
	c.current = &current
}

// IncomingCirculator iterates over the arcs directed toward a vertex. Each
// incoming arc is the opposite of an outgoing arc.
type IncomingCirculator[G any] struct {
	outgoing *OutgoingCirculator[G]
}

// Next returns the next incoming arc.
func (c *IncomingCirculator[G]) Next() (ArcView[G], bool) {
	arc, ok := c.outgoing.Next()
	if !ok {
		return ArcView[G]{}, false
	}
	return arc.Opposite(), true
}

// Reset rewinds the circulator.
func (c *IncomingCirculator[G]) Reset() { c.outgoing.Reset() }

// VertexFaceCirculator iterates over the faces incident to a vertex,
// skipping the boundary sides.
type VertexFaceCirculator[G any] struct {
	outgoing *OutgoingCirculator[G]
}

// Next returns the next incident face.
func (c *VertexFaceCirculator[G]) Next() (FaceView[G], bool) {
	for {
		arc, ok := c.outgoing.Next()
		if !ok {
			return FaceView[G]{}, false
		}
		if face, ok := arc.Face(); ok {
			return face, true
		}
	}
}

// Reset rewinds the circulator.
func (c *VertexFaceCirculator[G]) Reset() { c.outgoing.Reset() }

// RingCirculator iterates over the arcs of a ring, starting at the arc
// through which the ring was entered.
type RingCirculator[G any] struct {
	mesh    *Mesh[G]
	version uint64
	start   ArcKey
	current *ArcKey
	steps   int
}

func newRingCirculator[G any](m *Mesh[G], start ArcKey) *RingCirculator[G] {
	current := start
	return &RingCirculator[G]{mesh: m, version: m.version, start: start, current: &current}
}

// Next returns the next arc of the ring. It reports ok=false once the
// circulation returns to the entry arc.
func (c *RingCirculator[G]) Next() (ArcView[G], bool) {
	checkVersion(c.mesh, c.version)
	if c.current == nil {
		return ArcView[G]{}, false
	}
	if c.steps > c.mesh.core.arcs.Len() {
		panic("mesh: internal consistency violated")
	}
	arc := *c.current
	next := expectConsistent(c.mesh.core.reachableNext(arc))
	if next == c.start {
		c.current = nil
	} else {
		*c.current = next
	}
	c.steps++
	return ArcView[G]{mesh: c.mesh, key: arc}, true
}

// Reset rewinds the circulator to the entry arc.
func (c *RingCirculator[G]) Reset() {
	checkVersion(c.mesh, c.version)
	c.steps = 0
	current := c.start
	c.current = &current
}

// EndpointCirculator iterates over the two vertices joined by an arc, source
// first.
type EndpointCirculator[G any] struct {
	mesh    *Mesh[G]
	version uint64
	arc     ArcKey
	index   int
}

func newEndpointCirculator[G any](m *Mesh[G], arc ArcKey) *EndpointCirculator[G] {
	return &EndpointCirculator[G]{mesh: m, version: m.version, arc: arc}
}

// Next returns the next endpoint vertex.
func (c *EndpointCirculator[G]) Next() (VertexView[G], bool) {
	checkVersion(c.mesh, c.version)
	var key VertexKey
	switch c.index {
	case 0:
		key = c.arc.Source()
	case 1:
		key = c.arc.Destination()
	default:
		return VertexView[G]{}, false
	}
	c.index++
	expectConsistent(c.mesh.core.vertex(key))
	return VertexView[G]{mesh: c.mesh, key: key}, true
}

// Reset rewinds the circulator.
func (c *EndpointCirculator[G]) Reset() {
	checkVersion(c.mesh, c.version)
	c.index = 0
}

// ArcFaceCirculator iterates over the faces adjacent to an arc's composite
// edge, that is, at most two faces, skipping boundary sides.
type ArcFaceCirculator[G any] struct {
	mesh    *Mesh[G]
	version uint64
	arc     ArcKey
	index   int
}

func newArcFaceCirculator[G any](m *Mesh[G], arc ArcKey) *ArcFaceCirculator[G] {
	return &ArcFaceCirculator[G]{mesh: m, version: m.version, arc: arc}
}

// Next returns the next adjacent face.
func (c *ArcFaceCirculator[G]) Next() (FaceView[G], bool) {
	checkVersion(c.mesh, c.version)
	for c.index < 2 {
		key := c.arc
		if c.index == 1 {
			key = key.Opposite()
		}
		c.index++
		payload := expectConsistent(c.mesh.core.arc(key))
		if payload.Face != nil {
			return FaceView[G]{mesh: c.mesh, key: *payload.Face}, true
		}
	}
	return FaceView[G]{}, false
}

// Reset rewinds the circulator.
func (c *ArcFaceCirculator[G]) Reset() {
	checkVersion(c.mesh, c.version)
	c.index = 0
}
