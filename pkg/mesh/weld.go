package mesh

import (
	"math"

	"github.com/philipparndt/gosimplify/pkg/geometry"
)

// Weld builds an indexed mesh from a triangle soup, merging corners whose
// coordinates round to the same multiple of tolerance. A tolerance of zero
// merges only equal coordinates. Vertices keep the order of their
// first appearance.
func Weld(name string, triangles []geometry.Triangle, tolerance float64) *Mesh {
	m := New(name)
	m.Indices = make([]uint32, 0, 3*len(triangles))

	lookup := make(map[[3]float64]uint32)
	key := func(v geometry.Vector3) [3]float64 {
		if tolerance <= 0 {
			return [3]float64{v.X, v.Y, v.Z}
		}
		return [3]float64{
			math.Round(v.X / tolerance),
			math.Round(v.Y / tolerance),
			math.Round(v.Z / tolerance),
		}
	}
	index := func(v geometry.Vector3) uint32 {
		k := key(v)
		if i, ok := lookup[k]; ok {
			return i
		}
		i := m.AddVertex(v)
		lookup[k] = i
		return i
	}

	for _, tri := range triangles {
		m.AddTriangle(index(tri.A), index(tri.B), index(tri.C))
	}
	return m
}
