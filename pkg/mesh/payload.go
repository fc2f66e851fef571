package mesh

// Vertex is the stored payload of a vertex: its geometry and the key of its
// leading arc. The leading arc is always an outgoing arc and is nil only for
// a vertex with no incident arcs.
type Vertex[G any] struct {
	Geometry G
	Leading  *ArcKey
}

// Arc is the stored payload of a directed arc. Next and Previous link the arc
// into its ring; they are nil only transiently while a mutation is being
// applied. Face is nil for boundary arcs. EdgeRef is the key of the composite
// edge the arc belongs to.
type Arc struct {
	Geometry any
	Next     *ArcKey
	Previous *ArcKey
	Face     *FaceKey
	EdgeRef  EdgeKey
}

// IsBoundary reports whether the arc has no associated face.
func (a *Arc) IsBoundary() bool { return a.Face == nil }

// Edge is the stored payload of a composite edge. Leading is the key of one
// of the edge's two arcs; the other is its opposite.
type Edge struct {
	Geometry any
	Leading  ArcKey
}

// Face is the stored payload of a face. Leading is the key of exactly one of
// the arcs in the face's ring.
type Face struct {
	Geometry any
	Leading  ArcKey
}
