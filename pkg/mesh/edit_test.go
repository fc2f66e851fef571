package mesh_test

import (
	"errors"
	"testing"

	"github.com/hedron-dev/hedron/pkg/geom"
	"github.com/hedron-dev/hedron/pkg/mesh"
)

func TestSplitAtMidpoint(t *testing.T) {
	m := buildQuad(t)

	arc, ok := m.ArcMut(mesh.ArcBetween(1, 2))
	if !ok {
		t.Fatal("arc 1->2 missing")
	}
	inserted, err := arc.SplitAtMidpoint()
	if err != nil {
		t.Fatalf("SplitAtMidpoint: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate after split: %v", err)
	}
	if got, want := countsOf(m), [4]int{5, 10, 5, 1}; got != want {
		t.Errorf("counts = %v, want %v", got, want)
	}

	position, err := inserted.Position()
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if got, want := position, geom.Pt2(0.5, 0); got != want {
		t.Errorf("inserted vertex at %v, want %v", got, want)
	}

	// The inserted vertex leads toward the initiating arc's destination and
	// shares that arc's ring.
	leading, ok := inserted.Leading()
	if !ok {
		t.Fatal("inserted vertex has no leading arc")
	}
	if got, want := leading.Key(), mesh.ArcBetween(inserted.Key(), 2); got != want {
		t.Errorf("leading arc = %v, want %v", got, want)
	}
	face, ok := leading.Face()
	if !ok {
		t.Fatal("leading arc lost the split face")
	}
	if got, want := face.Arity(), 5; got != want {
		t.Errorf("face arity after split = %d, want %d", got, want)
	}

	// The boundary ring grows by one as well.
	boundary, _ := m.Arc(mesh.ArcBetween(2, inserted.Key()))
	if got, want := boundary.Ring().Arity(), 5; got != want {
		t.Errorf("boundary ring arity = %d, want %d", got, want)
	}
}

func TestSplitWithGeometry(t *testing.T) {
	m := buildQuad(t)
	arc, _ := m.ArcMut(mesh.ArcBetween(2, 3))
	inserted, err := arc.SplitWith(func() geom.Point { return geom.Pt2(7, 7) })
	if err != nil {
		t.Fatalf("SplitWith: %v", err)
	}
	if got, want := inserted.Geometry(), geom.Pt2(7, 7); got != want {
		t.Errorf("geometry = %v, want %v", got, want)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestBridge(t *testing.T) {
	// Two quads with nothing between them.
	m := buildMesh(t,
		[][]int{{0, 1, 2, 3}, {4, 5, 6, 7}},
		[]geom.Point{
			geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(1, 1), geom.Pt2(0, 1),
			geom.Pt2(2, 0), geom.Pt2(3, 0), geom.Pt2(3, 1), geom.Pt2(2, 1),
		},
	)
	if got, want := countsOf(m), [4]int{8, 16, 8, 2}; got != want {
		t.Fatalf("counts = %v, want %v", got, want)
	}

	arc, ok := m.ArcMut(mesh.ArcBetween(2, 1))
	if !ok {
		t.Fatal("arc 2->1 missing")
	}
	face, err := arc.Bridge(mesh.ByKey(mesh.ArcBetween(5, 8)))
	if err != nil {
		t.Fatalf("Bridge: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate after bridge: %v", err)
	}
	if got, want := countsOf(m), [4]int{8, 20, 10, 3}; got != want {
		t.Errorf("counts = %v, want %v", got, want)
	}
	if got, want := face.Vertices(), []mesh.VertexKey{2, 1, 5, 8}; !equalKeys(got, want) {
		t.Errorf("bridge face = %v, want %v", got, want)
	}
}

func TestBridgeByIndex(t *testing.T) {
	hexagon := make([]geom.Point, 6)
	for i := range hexagon {
		hexagon[i] = geom.Pt2(float64(i), float64(i%2))
	}
	m := buildMesh(t, [][]int{{0, 1, 2, 3, 4, 5}}, hexagon)

	arc, _ := m.ArcMut(mesh.ArcBetween(2, 1))
	// Index 3 selects the arc three steps along the boundary ring, on the
	// far side of the hexagon.
	face, err := arc.Bridge(mesh.ByIndex[mesh.ArcKey](3))
	if err != nil {
		t.Fatalf("Bridge: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate after bridge: %v", err)
	}
	if got, want := countsOf(m), [4]int{6, 16, 8, 2}; got != want {
		t.Errorf("counts = %v, want %v", got, want)
	}
	if got, want := face.Vertices(), []mesh.VertexKey{2, 1, 5, 4}; !equalKeys(got, want) {
		t.Errorf("bridge face = %v, want %v", got, want)
	}
}

func TestBridgeErrors(t *testing.T) {
	hexagon := make([]geom.Point, 6)
	for i := range hexagon {
		hexagon[i] = geom.Pt2(float64(i), float64(i%2))
	}
	m := buildMesh(t, [][]int{{0, 1, 2, 3, 4, 5}}, hexagon)
	before := countsOf(m)

	boundary, _ := m.ArcMut(mesh.ArcBetween(2, 1))
	interior, _ := m.ArcMut(mesh.ArcBetween(1, 2))

	if _, err := boundary.Bridge(mesh.ByIndex[mesh.ArcKey](42)); !errors.Is(err, mesh.ErrTopologyNotFound) {
		t.Errorf("out-of-range index error = %v, want %v", err, mesh.ErrTopologyNotFound)
	}
	if _, err := interior.Bridge(mesh.ByKey(mesh.ArcBetween(5, 4))); !errors.Is(err, mesh.ErrTopologyConflict) {
		t.Errorf("non-boundary source error = %v, want %v", err, mesh.ErrTopologyConflict)
	}
	if _, err := boundary.Bridge(mesh.ByIndex[mesh.ArcKey](1)); !errors.Is(err, mesh.ErrTopologyMalformed) {
		t.Errorf("shared endpoint error = %v, want %v", err, mesh.ErrTopologyMalformed)
	}

	if got := countsOf(m); got != before {
		t.Errorf("failed bridges changed counts: %v, want %v", got, before)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate after failed bridges: %v", err)
	}
}

func TestBridgeDisjointOppositeWinding(t *testing.T) {
	// Two quads in separate components, the second wound the other way.
	// Disconnected components carry no relative orientation, so the
	// bridge succeeds and the surface stays consistent.
	m := buildMesh(t,
		[][]int{{0, 1, 2, 3}, {4, 7, 6, 5}},
		[]geom.Point{
			geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(1, 1), geom.Pt2(0, 1),
			geom.Pt2(2, 0), geom.Pt2(3, 0), geom.Pt2(3, 1), geom.Pt2(2, 1),
		},
	)

	arc, ok := m.ArcMut(mesh.ArcBetween(2, 1))
	if !ok {
		t.Fatal("arc 2->1 missing")
	}
	face, err := arc.Bridge(mesh.ByKey(mesh.ArcBetween(8, 5)))
	if err != nil {
		t.Fatalf("Bridge across components: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate after bridge: %v", err)
	}
	if got, want := countsOf(m), [4]int{8, 20, 10, 3}; got != want {
		t.Errorf("counts = %v, want %v", got, want)
	}
	if got, want := face.Vertices(), []mesh.VertexKey{2, 1, 8, 5}; !equalKeys(got, want) {
		t.Errorf("bridge face = %v, want %v", got, want)
	}
}

func TestExtrude(t *testing.T) {
	m := buildQuad(t)

	arc, _ := m.ArcMut(mesh.ArcBetween(2, 1))
	extruded, err := arc.Extrude(1)
	if err != nil {
		t.Fatalf("Extrude: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate after extrude: %v", err)
	}
	if got, want := countsOf(m), [4]int{6, 14, 7, 2}; got != want {
		t.Errorf("counts = %v, want %v", got, want)
	}
	// The returned arc shares the inserted face's ring with the initiating
	// arc; the far side of the new edge is boundary.
	if _, ok := extruded.Face(); !ok {
		t.Error("extruded arc should bound the inserted face")
	}
	if !extruded.Opposite().IsBoundary() {
		t.Error("far side of the extruded edge should be boundary")
	}

	// The initiating arc ran from (1,0) to (0,0); the extruded arc is its
	// translate one unit along the outward normal.
	source, err := extruded.Source().Position()
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	destination, err := extruded.Destination().Position()
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if got, want := source, geom.Pt2(0, -1); got != want {
		t.Errorf("extruded source = %v, want %v", got, want)
	}
	if got, want := destination, geom.Pt2(1, -1); got != want {
		t.Errorf("extruded destination = %v, want %v", got, want)
	}

	// Extrusion composes along the boundary side of the new edge.
	again, _ := m.ArcMut(extruded.Opposite().Key())
	if _, err := again.Extrude(1); err != nil {
		t.Fatalf("second Extrude: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate after second extrude: %v", err)
	}
	if got, want := m.FaceCount(), 3; got != want {
		t.Errorf("FaceCount = %d, want %d", got, want)
	}
}

func TestExtrudeErrors(t *testing.T) {
	m := buildQuad(t)
	interior, _ := m.ArcMut(mesh.ArcBetween(1, 2))
	if _, err := interior.Extrude(1); !errors.Is(err, mesh.ErrTopologyConflict) {
		t.Errorf("interior arc error = %v, want %v", err, mesh.ErrTopologyConflict)
	}

	unpositioned, err := mesh.FromRawBuffers(
		[][]int{{0, 1, 2, 3}},
		[]geom.Point{geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(1, 1), geom.Pt2(0, 1)},
	)
	if err != nil {
		t.Fatalf("FromRawBuffers: %v", err)
	}
	boundary, _ := unpositioned.ArcMut(mesh.ArcBetween(2, 1))
	if _, err := boundary.Extrude(1); !errors.Is(err, mesh.ErrGeometry) {
		t.Errorf("surfaceless mesh error = %v, want %v", err, mesh.ErrGeometry)
	}
}

func TestRemoveSharedEdge(t *testing.T) {
	m := buildSharedQuads(t)

	arc, ok := m.ArcMut(mesh.ArcBetween(2, 5))
	if !ok {
		t.Fatal("shared arc 2->5 missing")
	}
	vertex, kept, err := arc.Remove()
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate after remove: %v", err)
	}
	if !kept {
		t.Fatal("source vertex removed despite remaining arcs")
	}
	if got, want := vertex.Key(), mesh.VertexKey(2); got != want {
		t.Errorf("returned vertex = %v, want %v", got, want)
	}
	// Both adjacent faces cascade, leaving one boundary ring around the
	// combined hole.
	if got, want := countsOf(m), [4]int{6, 12, 6, 0}; got != want {
		t.Errorf("counts = %v, want %v", got, want)
	}
	ring, _ := m.Arc(mesh.ArcBetween(2, 3))
	if got, want := ring.Ring().Arity(), 6; got != want {
		t.Errorf("boundary ring arity = %d, want %d", got, want)
	}
}

func TestRemoveCascadesToVertices(t *testing.T) {
	m := buildMesh(t,
		[][]int{{0, 1, 2}},
		[]geom.Point{geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(0, 1)},
	)

	arc, _ := m.ArcMut(mesh.ArcBetween(1, 2))
	if _, _, err := arc.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got, want := countsOf(m), [4]int{3, 4, 2, 0}; got != want {
		t.Fatalf("counts = %v, want %v", got, want)
	}

	// Vertex 2 now hangs off vertex 3 alone; removing that edge drops it.
	arc, _ = m.ArcMut(mesh.ArcBetween(2, 3))
	_, kept, err := arc.Remove()
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if kept {
		t.Error("disjoint source vertex should have been removed")
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got, want := countsOf(m), [4]int{2, 2, 1, 0}; got != want {
		t.Fatalf("counts = %v, want %v", got, want)
	}

	// Removing the last edge empties the mesh entirely.
	arc, _ = m.ArcMut(mesh.ArcBetween(3, 1))
	if _, _, err := arc.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got, want := countsOf(m), [4]int{0, 0, 0, 0}; got != want {
		t.Errorf("counts = %v, want %v", got, want)
	}
}

func TestFaceSplit(t *testing.T) {
	m := buildPentagon(t)

	face, ok := m.FaceMut(1)
	if !ok {
		t.Fatal("face 1 missing")
	}
	arc, err := face.Split(mesh.ByKey(mesh.VertexKey(1)), mesh.ByKey(mesh.VertexKey(3)))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate after split: %v", err)
	}
	if got, want := countsOf(m), [4]int{5, 12, 6, 2}; got != want {
		t.Errorf("counts = %v, want %v", got, want)
	}
	if got, want := arc.Key(), mesh.ArcBetween(1, 3); got != want {
		t.Errorf("split arc = %v, want %v", got, want)
	}
	got := m.Arity()
	if got.Min != 3 || got.Max != 4 {
		t.Errorf("arity after split = %+v, want min 3 max 4", got)
	}
}

func TestFaceSplitByIndex(t *testing.T) {
	m := buildPentagon(t)
	face, _ := m.FaceMut(1)
	arc, err := face.Split(mesh.ByIndex[mesh.VertexKey](0), mesh.ByIndex[mesh.VertexKey](2))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if got, want := arc.Key(), mesh.ArcBetween(1, 3); got != want {
		t.Errorf("split arc = %v, want %v", got, want)
	}
}

func TestFaceSplitErrors(t *testing.T) {
	m := buildPentagon(t)
	before := countsOf(m)
	face, _ := m.FaceMut(1)

	tests := []struct {
		name         string
		from, to     mesh.Selector[mesh.VertexKey]
		want         error
	}{
		{"MissingVertex", mesh.ByKey(mesh.VertexKey(1)), mesh.ByKey(mesh.VertexKey(99)), mesh.ErrTopologyNotFound},
		{"IndexOutOfRange", mesh.ByIndex[mesh.VertexKey](9), mesh.ByKey(mesh.VertexKey(3)), mesh.ErrTopologyNotFound},
		{"SameVertex", mesh.ByKey(mesh.VertexKey(2)), mesh.ByKey(mesh.VertexKey(2)), mesh.ErrTopologyMalformed},
		{"AdjacentVertices", mesh.ByKey(mesh.VertexKey(1)), mesh.ByKey(mesh.VertexKey(2)), mesh.ErrTopologyConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := face.Split(tt.from, tt.to); !errors.Is(err, tt.want) {
				t.Errorf("Split error = %v, want %v", err, tt.want)
			}
		})
	}
	if got := countsOf(m); got != before {
		t.Errorf("failed splits changed counts: %v, want %v", got, before)
	}
}

func TestFaceRemove(t *testing.T) {
	m := buildSharedQuads(t)
	face, _ := m.FaceMut(1)
	if err := face.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate after face removal: %v", err)
	}
	// The arcs stay; only the face is gone.
	if got, want := countsOf(m), [4]int{6, 14, 7, 1}; got != want {
		t.Errorf("counts = %v, want %v", got, want)
	}
	arc, _ := m.Arc(mesh.ArcBetween(1, 2))
	if !arc.IsBoundary() {
		t.Error("arc of removed face still has a face")
	}
}

func TestTriangulate(t *testing.T) {
	tests := []struct {
		name     string
		faces    [][]int
		vertices int
		want     [4]int
	}{
		{
			name:     "Quad",
			faces:    [][]int{{0, 1, 2, 3}},
			vertices: 4,
			want:     [4]int{4, 10, 5, 2},
		},
		{
			name:     "Pentagon",
			faces:    [][]int{{0, 1, 2, 3, 4}},
			vertices: 5,
			want:     [4]int{5, 14, 7, 3},
		},
		{
			name:     "AlreadyTriangular",
			faces:    [][]int{{0, 1, 2}},
			vertices: 3,
			want:     [4]int{3, 6, 3, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := make([]geom.Point, tt.vertices)
			for i := range points {
				points[i] = geom.Pt2(float64(i), float64(i*i))
			}
			m := buildMesh(t, tt.faces, points)
			if err := m.Triangulate(); err != nil {
				t.Fatalf("Triangulate: %v", err)
			}
			if err := m.Validate(); err != nil {
				t.Fatalf("Validate after triangulate: %v", err)
			}
			if got := countsOf(m); got != tt.want {
				t.Errorf("counts = %v, want %v", got, tt.want)
			}
			if got := m.Arity(); !got.IsUniform() || got.Min != 3 {
				t.Errorf("arity = %+v, want uniform 3", got)
			}

			// Triangulating a fully triangular mesh changes nothing.
			if err := m.Triangulate(); err != nil {
				t.Fatalf("second Triangulate: %v", err)
			}
			if got := countsOf(m); got != tt.want {
				t.Errorf("counts after second pass = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriangulateConflict(t *testing.T) {
	// The triangle on the right already uses the quad's fan diagonal.
	m := buildMesh(t,
		[][]int{{0, 1, 2, 3}, {2, 0, 4}},
		[]geom.Point{
			geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(1, 1), geom.Pt2(0, 1), geom.Pt2(2, 2),
		},
	)
	before := countsOf(m)

	face, _ := m.FaceMut(1)
	if err := face.Triangulate(); !errors.Is(err, mesh.ErrTopologyConflict) {
		t.Errorf("Triangulate error = %v, want %v", err, mesh.ErrTopologyConflict)
	}
	if got := countsOf(m); got != before {
		t.Errorf("failed triangulation changed counts: %v, want %v", got, before)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSmooth(t *testing.T) {
	m := buildQuad(t)
	if err := m.Smooth(0.5); err != nil {
		t.Fatalf("Smooth: %v", err)
	}

	// Each corner's neighbors are the two adjacent corners, so every vertex
	// relaxes halfway toward the midpoint of its neighbors.
	want := map[mesh.VertexKey]geom.Point{
		1: geom.Pt2(0.25, 0.25),
		2: geom.Pt2(0.75, 0.25),
		3: geom.Pt2(0.75, 0.75),
		4: geom.Pt2(0.25, 0.75),
	}
	for key, target := range want {
		vertex, _ := m.Vertex(key)
		position, err := vertex.Position()
		if err != nil {
			t.Fatalf("Position: %v", err)
		}
		if position != target {
			t.Errorf("vertex %v at %v, want %v", key, position, target)
		}
	}

	if err := mesh.New[geom.Point]().Smooth(0.5); !errors.Is(err, mesh.ErrGeometry) {
		t.Errorf("surfaceless Smooth error = %v, want %v", err, mesh.ErrGeometry)
	}
}

func TestVersionBumpsPerEdit(t *testing.T) {
	m := buildQuad(t)
	version := m.Version()

	arc, _ := m.ArcMut(mesh.ArcBetween(1, 2))
	if _, err := arc.SplitAtMidpoint(); err != nil {
		t.Fatalf("SplitAtMidpoint: %v", err)
	}
	if got := m.Version(); got != version+1 {
		t.Errorf("Version after split = %d, want %d", got, version+1)
	}

	// Failed edits commit nothing.
	face, _ := m.FaceMut(1)
	if _, err := face.Split(mesh.ByKey(mesh.VertexKey(1)), mesh.ByKey(mesh.VertexKey(1))); err == nil {
		t.Fatal("degenerate split succeeded")
	}
	if got := m.Version(); got != version+1 {
		t.Errorf("Version after failed split = %d, want %d", got, version+1)
	}
}
