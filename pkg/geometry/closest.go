package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Region identifies which part of a triangle holds a closest point.
//
// The code is built from three sign tests, one per edge: bit 0 is set when the
// query lies outside edge AB, bit 1 outside BC and bit 2 outside CA. A point
// outside two edges falls in the Voronoi region of their shared vertex.
//
//	       \110 |
//	        \   |
//	         \  |
//	          \ |
//	           \|
//	            C
//	       100  |\  010
//	            | \
//	    --------A--B--------
//	       101  | 001\ 011
type Region uint8

const (
	RegionInterior Region = 0
	RegionEdgeAB   Region = 1 << 0
	RegionEdgeBC   Region = 1 << 1
	RegionEdgeCA   Region = 1 << 2
	RegionVertexB         = RegionEdgeAB | RegionEdgeBC
	RegionVertexA         = RegionEdgeAB | RegionEdgeCA
	RegionVertexC         = RegionEdgeBC | RegionEdgeCA

	// RegionOutside is the all-negative code. It cannot occur for a
	// non-degenerate triangle and is never returned by ClosestPoint.
	RegionOutside = RegionEdgeAB | RegionEdgeBC | RegionEdgeCA
)

// degenerateEpsilon bounds sin² of the angle between AB and BC below which a
// triangle is treated as having zero area.
const degenerateEpsilon = 1e-20

// String returns a short name for the region
func (r Region) String() string {
	switch r {
	case RegionInterior:
		return "interior"
	case RegionEdgeAB:
		return "edge-AB"
	case RegionEdgeBC:
		return "edge-BC"
	case RegionEdgeCA:
		return "edge-CA"
	case RegionVertexA:
		return "vertex-A"
	case RegionVertexB:
		return "vertex-B"
	case RegionVertexC:
		return "vertex-C"
	default:
		return "outside"
	}
}

// IsVertex reports whether the region is one of the three vertex regions
func (r Region) IsVertex() bool {
	return r == RegionVertexA || r == RegionVertexB || r == RegionVertexC
}

// IsEdge reports whether the region is one of the three edge regions
func (r Region) IsEdge() bool {
	return r == RegionEdgeAB || r == RegionEdgeBC || r == RegionEdgeCA
}

// Barycentric holds the weights of a point over the corners A, B and C
type Barycentric struct {
	A, B, C float64
}

// Sum returns A + B + C
func (w Barycentric) Sum() float64 {
	return w.A + w.B + w.C
}

// Point returns the weighted combination of the corners
func (w Barycentric) Point(a, b, c Vector3) Vector3 {
	return a.Mul(w.A).Add(b.Mul(w.B)).Add(c.Mul(w.C))
}

// normalized clamps negative weights to zero and rescales them to sum to one.
// It fails when nothing positive and finite is left to rescale.
func (w Barycentric) normalized() (Barycentric, bool) {
	clamp := func(x float64) float64 {
		if !(x > 0) {
			return 0
		}
		return x
	}
	w = Barycentric{A: clamp(w.A), B: clamp(w.B), C: clamp(w.C)}
	sum := w.Sum()
	if !(sum > 0) || math.IsInf(sum, 0) {
		return Barycentric{}, false
	}
	if sum != 1 {
		w = Barycentric{A: w.A / sum, B: w.B / sum, C: w.C / sum}
	}
	return w, true
}

// region derives the feature a normalized weight triple lies on. A zero
// weight puts the point on the edge opposite that corner; two zero weights
// combine into the code of the remaining corner.
func (w Barycentric) region() Region {
	var r Region
	if w.C == 0 {
		r |= RegionEdgeAB
	}
	if w.A == 0 {
		r |= RegionEdgeBC
	}
	if w.B == 0 {
		r |= RegionEdgeCA
	}
	return r
}

// Closest is the result of a closest-point query
type Closest struct {
	Point   Vector3
	Region  Region
	Weights Barycentric
}

// Distance returns the distance from p to the closest point
func (c Closest) Distance(p Vector3) float64 {
	return c.Point.Distance(p)
}

// ClosestPoint returns the point of the closed triangle ABC nearest to p.
//
// Each edge gets a plane through it with normal N x edge, where N = AB x BC is
// the face normal. The signed quantities AP·(N×AB), BP·(N×BC) and CP·(N×CA)
// are positive on the inner side of their edge, and their signs select one of
// the seven Voronoi regions of the triangle:
//
//   - interior: the three quantities are the unnormalized weights of C, A and B
//   - outside one edge: P is projected onto that edge
//   - outside two edges: the nearer projection onto the two edges sharing the
//     vertex; for acute corners both clamp to the vertex itself
//
// Negative weights are clamped to zero and the rest renormalized, which keeps
// points on region boundaries from leaking across them. Zero-area triangles
// and the unreachable all-negative code fall back to a scan of the three edge
// segments, so the result is never NaN for finite input.
func ClosestPoint(a, b, c, p Vector3) Closest {
	ab := b.Sub(a)
	bc := c.Sub(b)
	ca := a.Sub(c)
	n := ab.Cross(bc)
	if isDegenerate(ab, bc, n) {
		return nearestFeature(a, b, c, p)
	}

	ap := p.Sub(a)
	bp := p.Sub(b)
	cp := p.Sub(c)

	dAB := ap.Dot(n.Cross(ab))
	dBC := bp.Dot(n.Cross(bc))
	dCA := cp.Dot(n.Cross(ca))

	var region Region
	if dAB < 0 {
		region |= RegionEdgeAB
	}
	if dBC < 0 {
		region |= RegionEdgeBC
	}
	if dCA < 0 {
		region |= RegionEdgeCA
	}

	edgeAB := Barycentric{A: -bp.Dot(ab), B: ap.Dot(ab)}
	edgeBC := Barycentric{B: -cp.Dot(bc), C: bp.Dot(bc)}
	edgeCA := Barycentric{C: -ap.Dot(ca), A: cp.Dot(ca)}

	switch region {
	case RegionInterior:
		return resolve(a, b, c, p, Barycentric{A: dBC, B: dCA, C: dAB})
	case RegionEdgeAB:
		return resolve(a, b, c, p, edgeAB)
	case RegionEdgeBC:
		return resolve(a, b, c, p, edgeBC)
	case RegionEdgeCA:
		return resolve(a, b, c, p, edgeCA)
	case RegionVertexA:
		return nearer(p, resolve(a, b, c, p, edgeAB), resolve(a, b, c, p, edgeCA))
	case RegionVertexB:
		return nearer(p, resolve(a, b, c, p, edgeAB), resolve(a, b, c, p, edgeBC))
	case RegionVertexC:
		return nearer(p, resolve(a, b, c, p, edgeBC), resolve(a, b, c, p, edgeCA))
	default:
		return nearestFeature(a, b, c, p)
	}
}

// ClosestPointVec3 is ClosestPoint for mathgl vectors
func ClosestPointVec3(a, b, c, p mgl64.Vec3) (mgl64.Vec3, Region) {
	res := ClosestPoint(FromVec3(a), FromVec3(b), FromVec3(c), FromVec3(p))
	return res.Point.Vec3(), res.Region
}

func isDegenerate(ab, bc, n Vector3) bool {
	scale := ab.LengthSquared() * bc.LengthSquared()
	return scale == 0 || !(n.LengthSquared() > degenerateEpsilon*scale)
}

func resolve(a, b, c, p Vector3, w Barycentric) Closest {
	nw, ok := w.normalized()
	if !ok {
		return nearestFeature(a, b, c, p)
	}
	return Closest{
		Point:   nw.Point(a, b, c),
		Region:  nw.region(),
		Weights: nw,
	}
}

// nearer returns the candidate closer to p, preferring the first on ties
func nearer(p Vector3, first, second Closest) Closest {
	if second.Point.DistanceSquared(p) < first.Point.DistanceSquared(p) {
		return second
	}
	return first
}

// nearestFeature projects p onto the segments AB, BC and CA and keeps the
// nearest projection. Ties go to the earlier segment.
func nearestFeature(a, b, c, p Vector3) Closest {
	best := Closest{Point: a, Region: RegionVertexA, Weights: Barycentric{A: 1}}
	bestDist := math.Inf(1)

	try := func(from, to Vector3, weights func(t float64) Barycentric) {
		w := weights(segmentParameter(from, to, p))
		q := w.Point(a, b, c)
		if d := q.DistanceSquared(p); d < bestDist {
			bestDist = d
			best = Closest{Point: q, Region: w.region(), Weights: w}
		}
	}

	try(a, b, func(t float64) Barycentric { return Barycentric{A: 1 - t, B: t} })
	try(b, c, func(t float64) Barycentric { return Barycentric{B: 1 - t, C: t} })
	try(c, a, func(t float64) Barycentric { return Barycentric{C: 1 - t, A: t} })

	return best
}

// segmentParameter returns t in [0, 1] such that from + t*(to-from) is the
// point of the segment nearest to p
func segmentParameter(from, to, p Vector3) float64 {
	d := to.Sub(from)
	dd := d.LengthSquared()
	if !(dd > 0) {
		return 0
	}
	t := p.Sub(from).Dot(d) / dd
	switch {
	case t > 1:
		return 1
	case t > 0:
		return t
	default:
		return 0
	}
}
