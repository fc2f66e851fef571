package mesh

import "github.com/hedron-dev/hedron/pkg/geom"

// Surface is the capability that exposes positional data in a vertex
// geometry. The mesh core never interprets vertex geometry itself; spatial
// operations such as midpoint splits, arc normals, extrusion, and smoothing
// consult the surface instead. A mesh without a surface still supports every
// purely topological operation.
//
// MoveTo must return a copy of the geometry with only its position changed,
// leaving any other attached data intact.
type Surface[G any] struct {
	Position func(G) geom.Point
	MoveTo   func(G, geom.Point) G
}

// PointSurface is the surface for meshes whose vertex geometry is a bare
// point.
func PointSurface() Surface[geom.Point] {
	return Surface[geom.Point]{
		Position: func(p geom.Point) geom.Point { return p },
		MoveTo:   func(_, p geom.Point) geom.Point { return p },
	}
}
