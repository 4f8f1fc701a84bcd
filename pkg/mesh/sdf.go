package mesh

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/philipparndt/gosimplify/pkg/geometry"
)

// weldFraction scales the marching cubes cell size into the weld tolerance.
const weldFraction = 1e-4

// FromSDF tessellates a solid with uniform marching cubes and welds the
// resulting soup. cells is the number of cells along the longest axis.
func FromSDF(name string, s sdf.SDF3, cells int) (*Mesh, error) {
	if cells <= 0 {
		return nil, fmt.Errorf("cell count must be positive, got %d", cells)
	}

	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	if len(triangles) == 0 {
		return nil, fmt.Errorf("solid %q produced no triangles", name)
	}

	soup := make([]geometry.Triangle, 0, len(triangles))
	for _, tri := range triangles {
		soup = append(soup, geometry.NewTriangle(fromSdfx(tri[0]), fromSdfx(tri[1]), fromSdfx(tri[2])))
	}

	size := s.BoundingBox().Size()
	longest := max(size.X, size.Y, size.Z)
	return Weld(name, soup, longest/float64(cells)*weldFraction), nil
}

// Box tessellates an axis-aligned cube of the given edge length centered at
// the origin.
func Box(size float64, cells int) (*Mesh, error) {
	s, err := sdf.Box3D(v3.Vec{X: size, Y: size, Z: size}, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create box: %w", err)
	}
	return FromSDF("box", s, cells)
}

// Sphere tessellates a sphere of the given radius centered at the origin.
func Sphere(radius float64, cells int) (*Mesh, error) {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, fmt.Errorf("failed to create sphere: %w", err)
	}
	return FromSDF("sphere", s, cells)
}

func fromSdfx(v v3.Vec) geometry.Vector3 {
	return geometry.NewVector3(v.X, v.Y, v.Z)
}
