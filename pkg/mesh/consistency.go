package mesh

import "fmt"

// Validate checks the structural invariants of the mesh and returns a
// descriptive error wrapping ErrTopologyMalformed for the first violation
// found. A mesh built through this package's constructors and edit
// operations always validates; Validate exists for tests and for meshes
// assembled from untrusted external data.
//
// The invariants checked are:
//
//   - every arc's opposite is present, and arcs pair one-to-one with the
//     composite edges they reference
//   - every arc is linked to a next and previous arc, the links are mutual,
//     and consecutive arcs share a vertex
//   - every ring closes within the arc count
//   - a face's leading arc references the face, as does every arc of its
//     ring, and the ring has at least three arcs
//   - a vertex's leading arc is an outgoing arc, and every vertex with
//     incident arcs has one
func (m *Mesh[G]) Validate() error {
	malformed := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrTopologyMalformed, fmt.Sprintf(format, args...))
	}
	core := m.core

	if got, want := core.arcs.Len(), core.edges.Len()*2; got != want {
		return malformed("%d arcs for %d edges", got, core.edges.Len())
	}
	for _, key := range core.arcs.Keys() {
		arc := expectConsistent(core.arcs.Get(key))
		if !core.arcs.Contains(key.Opposite()) {
			return malformed("arc %s has no opposite", key)
		}
		if arc.EdgeRef != key.Edge() {
			return malformed("arc %s references edge %s", key, arc.EdgeRef)
		}
		edge, ok := core.edges.Get(key.Edge())
		if !ok {
			return malformed("arc %s has no edge", key)
		}
		if edge.Leading != key && edge.Leading != key.Opposite() {
			return malformed("edge %s leads with foreign arc %s", key.Edge(), edge.Leading)
		}
		if !core.vertices.Contains(key.Source()) || !core.vertices.Contains(key.Destination()) {
			return malformed("arc %s references a missing vertex", key)
		}

		next, ok := core.reachableNext(key)
		if !ok {
			return malformed("arc %s has no next arc", key)
		}
		if !core.arcs.Contains(next) {
			return malformed("arc %s links to missing arc %s", key, next)
		}
		if next.Source() != key.Destination() {
			return malformed("arc %s links to non-contiguous arc %s", key, next)
		}
		if previous, ok := core.reachablePrevious(next); !ok || previous != key {
			return malformed("arcs %s and %s disagree on adjacency", key, next)
		}
		if _, ok := core.ring(key); !ok {
			return malformed("ring through arc %s does not close", key)
		}
	}

	for _, key := range core.faces.Keys() {
		face := expectConsistent(core.faces.Get(key))
		ring, ok := core.ring(face.Leading)
		if !ok {
			return malformed("face %s has a broken ring", key)
		}
		if len(ring) < 3 {
			return malformed("face %s has arity %d", key, len(ring))
		}
		for _, arc := range ring {
			payload := expectConsistent(core.arcs.Get(arc))
			if payload.Face == nil || *payload.Face != key {
				return malformed("arc %s does not reference face %s", arc, key)
			}
		}
	}

	for _, key := range core.vertices.Keys() {
		vertex := expectConsistent(core.vertices.Get(key))
		if vertex.Leading == nil {
			continue
		}
		if vertex.Leading.Source() != key {
			return malformed("vertex %s leads with foreign arc %s", key, *vertex.Leading)
		}
		if !core.arcs.Contains(*vertex.Leading) {
			return malformed("vertex %s leads with missing arc %s", key, *vertex.Leading)
		}
	}
	for _, key := range core.arcs.Keys() {
		vertex := expectConsistent(core.vertices.Get(key.Source()))
		if vertex.Leading == nil {
			return malformed("vertex %s has arcs but no leading arc", key.Source())
		}
	}
	return nil
}
