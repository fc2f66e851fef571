package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func vectorsAlmostEqual(v, w Vector) bool {
	return almostEqual(v.X, w.X) && almostEqual(v.Y, w.Y) && almostEqual(v.Z, w.Z)
}

func TestVectorOps(t *testing.T) {
	v := Vector{X: 3, Y: 4}
	if got, want := v.Length(), 5.0; !almostEqual(got, want) {
		t.Errorf("Length = %v, want %v", got, want)
	}
	if got, want := v.Dot(Vector{X: 1, Y: 1}), 7.0; !almostEqual(got, want) {
		t.Errorf("Dot = %v, want %v", got, want)
	}

	unit, ok := v.Normalize()
	if !ok {
		t.Fatal("Normalize failed for non-zero vector")
	}
	if got, want := unit.Length(), 1.0; !almostEqual(got, want) {
		t.Errorf("normalized length = %v, want %v", got, want)
	}

	if _, ok := (Vector{}).Normalize(); ok {
		t.Error("Normalize should fail for the zero vector")
	}
}

func TestProjectAndReject(t *testing.T) {
	v := Vector{X: 2, Y: 2}
	axis := Vector{X: 1}

	if got, want := v.Project(axis), (Vector{X: 2}); !vectorsAlmostEqual(got, want) {
		t.Errorf("Project = %+v, want %+v", got, want)
	}
	if got, want := v.Reject(axis), (Vector{Y: 2}); !vectorsAlmostEqual(got, want) {
		t.Errorf("Reject = %+v, want %+v", got, want)
	}

	// Projecting onto a zero axis yields the zero vector.
	if got := v.Project(Vector{}); !got.IsZero() {
		t.Errorf("Project onto zero = %+v, want zero", got)
	}
}

func TestMidpointAndCentroid(t *testing.T) {
	a := Pt2(0, 0)
	b := Pt2(2, 4)
	if got, want := Midpoint(a, b), Pt2(1, 2); got != want {
		t.Errorf("Midpoint = %+v, want %+v", got, want)
	}

	centroid, ok := Centroid([]Point{Pt2(0, 0), Pt2(3, 0), Pt2(0, 3)})
	if !ok {
		t.Fatal("Centroid failed for non-empty input")
	}
	if got, want := centroid, Pt2(1, 1); got != want {
		t.Errorf("Centroid = %+v, want %+v", got, want)
	}

	if _, ok := Centroid(nil); ok {
		t.Error("Centroid should fail for empty input")
	}
}

func TestPerpendicularTo(t *testing.T) {
	// The right edge of a unit square: the segment from (1,1) to (1,0) with
	// the square's interior to the left. The outward normal points along +X.
	normal, ok := PerpendicularTo(Pt2(1, 1), Pt2(1, 0), Pt2(0, 1))
	if !ok {
		t.Fatal("PerpendicularTo failed for non-degenerate input")
	}
	if want := (Vector{X: 1}); !vectorsAlmostEqual(normal, want) {
		t.Errorf("PerpendicularTo = %+v, want %+v", normal, want)
	}

	// Collinear reference point has no perpendicular component.
	if _, ok := PerpendicularTo(Pt2(0, 0), Pt2(1, 0), Pt2(2, 0)); ok {
		t.Error("PerpendicularTo should fail for collinear points")
	}
}

func TestBoundingBox(t *testing.T) {
	box, ok := BoundingBox([]Point{Pt(1, 2, 3), Pt(-1, 5, 0), Pt(0, 0, 7)})
	if !ok {
		t.Fatal("BoundingBox failed for non-empty input")
	}
	if got, want := box.Min, Pt(-1, 0, 0); got != want {
		t.Errorf("Min = %+v, want %+v", got, want)
	}
	if got, want := box.Max, Pt(1, 5, 7); got != want {
		t.Errorf("Max = %+v, want %+v", got, want)
	}
	if !box.Contains(Pt(0, 1, 1)) {
		t.Error("Contains should report interior points")
	}
	if box.Contains(Pt(2, 0, 0)) {
		t.Error("Contains should reject exterior points")
	}

	if _, ok := BoundingBox(nil); ok {
		t.Error("BoundingBox should fail for empty input")
	}
}
