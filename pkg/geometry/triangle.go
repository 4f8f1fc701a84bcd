package geometry

// Triangle represents a triangle with corners A, B and C in counter-clockwise order
type Triangle struct {
	A, B, C Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// FaceNormal returns the unnormalized normal AB x BC
func (t Triangle) FaceNormal() Vector3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.B))
}

// Normal returns the unit normal, or the zero vector for degenerate triangles
func (t Triangle) Normal() Vector3 {
	return t.FaceNormal().Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.FaceNormal().Length() / 2.0
}

// IsDegenerate reports whether the triangle has (numerically) zero area
func (t Triangle) IsDegenerate() bool {
	return isDegenerate(t.B.Sub(t.A), t.C.Sub(t.B), t.FaceNormal())
}

// EdgeLengths returns the lengths of AB, BC and CA
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.A.Distance(t.B),
		t.B.Distance(t.C),
		t.C.Distance(t.A),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// ClosestPoint returns the point of the triangle nearest to p
func (t Triangle) ClosestPoint(p Vector3) Closest {
	return ClosestPoint(t.A, t.B, t.C, p)
}
