// Package geom provides the positional primitives consumed by the mesh
// package: points, vectors, and axis-aligned bounding boxes.
//
// The mesh core is geometry-agnostic and only touches positions through
// capability functions, so this package stays deliberately small. All types
// use float64 components and treat 2D data as 3D with a zero Z component.
package geom
