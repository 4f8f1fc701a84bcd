// Package probe samples points around a triangle, projects them onto it and
// dumps the projections as an OBJ line list for visual inspection.
package probe

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gosimplify/pkg/geometry"
	"github.com/philipparndt/gosimplify/pkg/obj"
)

// Sample pairs a query point with its closest point on the triangle
type Sample struct {
	Query   geometry.Vector3
	Closest geometry.Closest
}

// SpherePoints returns rings*segments points on a sphere, plus the two poles.
// Ring j lies at inclination pi*j/(rings+1), segment i at azimuth 2*pi*i/segments.
func SpherePoints(center geometry.Vector3, radius float64, rings, segments int) ([]geometry.Vector3, error) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("radius must be positive and finite, got %g", radius)
	}
	if rings < 1 || segments < 1 {
		return nil, fmt.Errorf("rings and segments must be positive, got %d and %d", rings, segments)
	}

	c := center.Vec3()
	points := make([]geometry.Vector3, 0, rings*segments+2)
	points = append(points, geometry.FromVec3(c.Add(mgl64.SphericalToCartesian(radius, 0, 0))))
	for j := 1; j <= rings; j++ {
		theta := math.Pi * float64(j) / float64(rings+1)
		for i := 0; i < segments; i++ {
			phi := 2 * math.Pi * float64(i) / float64(segments)
			points = append(points, geometry.FromVec3(c.Add(mgl64.SphericalToCartesian(radius, theta, phi))))
		}
	}
	points = append(points, geometry.FromVec3(c.Add(mgl64.SphericalToCartesian(radius, math.Pi, 0))))
	return points, nil
}

// Sweep projects every query onto tri using up to workers goroutines.
// Results keep the order of queries.
func Sweep(tri geometry.Triangle, queries []geometry.Vector3, workers int) []Sample {
	samples := make([]Sample, len(queries))
	if len(queries) == 0 {
		return samples
	}
	workers = max(1, min(workers, len(queries)))

	chunk := (len(queries) + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(queries); lo += chunk {
		hi := min(lo+chunk, len(queries))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				samples[i] = Sample{Query: queries[i], Closest: tri.ClosestPoint(queries[i])}
			}
		}()
	}
	wg.Wait()
	return samples
}

// Dump writes one line segment from each query to its closest point,
// followed by the triangle itself.
func Dump(w io.Writer, tri geometry.Triangle, samples []Sample) error {
	ow := obj.NewWriter(w)
	ow.Comment(fmt.Sprintf("%d closest point probes", len(samples)))
	for _, s := range samples {
		ow.Segment(s.Query, s.Closest.Point)
	}
	ow.Triangle(tri)
	if err := ow.Flush(); err != nil {
		return fmt.Errorf("failed to write probe dump: %w", err)
	}
	return nil
}

// RegionCounts tallies samples per Voronoi region
func RegionCounts(samples []Sample) map[geometry.Region]int {
	counts := make(map[geometry.Region]int)
	for _, s := range samples {
		counts[s.Closest.Region]++
	}
	return counts
}
