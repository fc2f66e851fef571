package mesh_test

import (
	"fmt"

	"github.com/hedron-dev/hedron/pkg/geom"
	"github.com/hedron-dev/hedron/pkg/mesh"
)

func ExampleFromRawBuffers() {
	// A unit square as a single quadrilateral face.
	m, _ := mesh.FromRawBuffers(
		[][]int{{0, 1, 2, 3}},
		[]geom.Point{geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(1, 1), geom.Pt2(0, 1)},
		mesh.WithSurface(mesh.PointSurface()),
	)

	fmt.Println("Vertices:", m.VertexCount())
	fmt.Println("Arcs:", m.ArcCount())
	fmt.Println("Edges:", m.EdgeCount())
	fmt.Println("Faces:", m.FaceCount())
	// Output:
	// Vertices: 4
	// Arcs: 8
	// Edges: 4
	// Faces: 1
}

func ExampleMesh_Triangulate() {
	m, _ := mesh.FromRawBuffers(
		[][]int{{0, 1, 2, 3}},
		[]geom.Point{geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(1, 1), geom.Pt2(0, 1)},
	)
	_ = m.Triangulate()

	arity := m.Arity()
	fmt.Println("Faces:", m.FaceCount())
	fmt.Println("Uniform arity:", arity.IsUniform(), arity.Min)
	// Output:
	// Faces: 2
	// Uniform arity: true 3
}

func ExampleFaceView_Ring() {
	m, _ := mesh.FromRawBuffers(
		[][]int{{0, 1, 2, 3}},
		[]geom.Point{geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(1, 1), geom.Pt2(0, 1)},
	)
	for _, face := range m.Faces() {
		arcs := face.Arcs()
		for arc, ok := arcs.Next(); ok; arc, ok = arcs.Next() {
			fmt.Println(arc.Key())
		}
	}
	// Output:
	// v1->v2
	// v2->v3
	// v3->v4
	// v4->v1
}

func ExampleArcMut_SplitAtMidpoint() {
	m, _ := mesh.FromRawBuffers(
		[][]int{{0, 1, 2, 3}},
		[]geom.Point{geom.Pt2(0, 0), geom.Pt2(1, 0), geom.Pt2(1, 1), geom.Pt2(0, 1)},
		mesh.WithSurface(mesh.PointSurface()),
	)
	arc, _ := m.ArcMut(mesh.ArcBetween(1, 2))
	vertex, _ := arc.SplitAtMidpoint()
	position, _ := vertex.Position()

	fmt.Println("New vertex:", vertex.Key(), "at", position.X, position.Y)
	fmt.Println("Face arity:", m.Arity().Max)
	// Output:
	// New vertex: v5 at 0.5 0
	// Face arity: 5
}
