package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	lengths := tri.EdgeLengths()
	expected := [3]float64{3, 5, 4}

	for i := range lengths {
		if math.Abs(lengths[i]-expected[i]) > 1e-10 {
			t.Errorf("Edge %d length failed: expected %v, got %v", i, expected[i], lengths[i])
		}
	}
	if math.Abs(tri.Perimeter()-12) > 1e-10 {
		t.Errorf("Perimeter failed: expected 12, got %v", tri.Perimeter())
	}
}

func TestTriangleNormal(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	expected := NewVector3(0, 0, 1)
	if n := tri.Normal(); n != expected {
		t.Errorf("Normal failed: expected %v, got %v", expected, n)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center.Distance(expected) > 1e-12 {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleIsDegenerate(t *testing.T) {
	tests := []struct {
		name     string
		tri      Triangle
		expected bool
	}{
		{"regular", NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(0, 1, 0)), false},
		{"collinear", NewTriangle(NewVector3(0, 0, 0), NewVector3(1, 0, 0), NewVector3(2, 0, 0)), true},
		{"repeated corner", NewTriangle(NewVector3(0, 0, 0), NewVector3(0, 0, 0), NewVector3(0, 1, 0)), true},
		{"point", NewTriangle(NewVector3(1, 1, 1), NewVector3(1, 1, 1), NewVector3(1, 1, 1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tri.IsDegenerate(); got != tt.expected {
				t.Errorf("IsDegenerate failed: expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBoundingBox(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Fatalf("new bounding box should be empty")
	}
	if size := bbox.Size(); size != (Vector3{}) {
		t.Errorf("Size of empty box failed: expected zero, got %v", size)
	}

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	if expected := NewVector3(-1, 0, 2); bbox.Min != expected {
		t.Errorf("Min failed: expected %v, got %v", expected, bbox.Min)
	}
	if expected := NewVector3(4, 5, 6); bbox.Max != expected {
		t.Errorf("Max failed: expected %v, got %v", expected, bbox.Max)
	}
	if expected := NewVector3(1.5, 2.5, 4); bbox.Center() != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, bbox.Center())
	}
}
