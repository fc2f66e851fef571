package geom

// AABB is an axis-aligned bounding box described by its minimum and maximum
// corners.
type AABB struct {
	Min, Max Point
}

// BoundingBox returns the smallest AABB enclosing the given points and true,
// or the zero box and false if no points are given.
func BoundingBox(points []Point) (AABB, bool) {
	if len(points) == 0 {
		return AABB{}, false
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min.X = min(box.Min.X, p.X)
		box.Min.Y = min(box.Min.Y, p.Y)
		box.Min.Z = min(box.Min.Z, p.Z)
		box.Max.X = max(box.Max.X, p.X)
		box.Max.Y = max(box.Max.Y, p.Y)
		box.Max.Z = max(box.Max.Z, p.Z)
	}
	return box, true
}

// Extent returns the vector from the minimum to the maximum corner.
func (b AABB) Extent() Vector { return b.Max.Sub(b.Min) }

// Center returns the point at the middle of the box.
func (b AABB) Center() Point { return Midpoint(b.Min, b.Max) }

// Contains reports whether the point lies within the box (inclusive).
func (b AABB) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
