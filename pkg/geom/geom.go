package geom

import "math"

// Point is a position in space. Two-dimensional data uses a zero Z component.
type Point struct {
	X, Y, Z float64
}

// Pt is shorthand for constructing a 3D point.
func Pt(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

// Pt2 is shorthand for constructing a 2D point (Z is zero).
func Pt2(x, y float64) Point { return Point{X: x, Y: y} }

// Translate returns the point offset by the given vector.
func (p Point) Translate(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Vector is a displacement in space.
type Vector struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the component-wise difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns the vector multiplied by a scalar.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the vector pointing in the opposite direction.
func (v Vector) Neg() Vector { return v.Scale(-1) }

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Length returns the Euclidean length of the vector.
func (v Vector) Length() float64 { return math.Sqrt(v.Dot(v)) }

// IsZero reports whether all components are exactly zero.
func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Normalize returns the unit vector with the same direction and true, or the
// zero vector and false if the vector has zero length.
func (v Vector) Normalize() (Vector, bool) {
	length := v.Length()
	if length == 0 {
		return Vector{}, false
	}
	return v.Scale(1 / length), true
}

// Project returns the projection of v onto w. If w has zero length, the zero
// vector is returned.
func (v Vector) Project(w Vector) Vector {
	d := w.Dot(w)
	if d == 0 {
		return Vector{}
	}
	return w.Scale(v.Dot(w) / d)
}

// Reject returns the component of v perpendicular to w.
func (v Vector) Reject(w Vector) Vector {
	return v.Sub(v.Project(w))
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
		Z: (a.Z + b.Z) / 2,
	}
}

// Centroid returns the arithmetic mean of the given points and true, or the
// zero point and false if no points are given.
func Centroid(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	var c Point
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
		c.Z += p.Z
	}
	n := float64(len(points))
	return Point{X: c.X / n, Y: c.Y / n, Z: c.Z / n}, true
}

// PerpendicularTo returns the unit vector perpendicular to the segment from a
// to b that is coplanar with the reference point c and points away from it.
// This is the outward normal of a boundary segment when c lies inside the
// adjacent face. Returns false if the inputs are collinear or coincident.
func PerpendicularTo(a, b, c Point) (Vector, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	perpendicular := ac.Reject(ab)
	if perpendicular.IsZero() {
		return Vector{}, false
	}
	return perpendicular.Neg().Normalize()
}
