// Package mesh holds indexed triangle meshes and the conversions into them:
// flat position buffers, welded triangle soups and SDF solids.
package mesh

import (
	"fmt"

	"github.com/philipparndt/gosimplify/pkg/geometry"
)

// Mesh is an indexed triangle mesh. Indices holds three 0-based vertex
// indices per triangle.
type Mesh struct {
	Name      string
	Positions []geometry.Vector3
	Indices   []uint32
}

// New creates an empty mesh
func New(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddVertex appends a vertex and returns its index
func (m *Mesh) AddVertex(v geometry.Vector3) uint32 {
	m.Positions = append(m.Positions, v)
	return uint32(len(m.Positions) - 1)
}

// AddTriangle appends a triangle by vertex indices
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the corners of triangle t
func (m *Mesh) Triangle(t int) geometry.Triangle {
	return geometry.NewTriangle(
		m.Positions[m.Indices[3*t]],
		m.Positions[m.Indices[3*t+1]],
		m.Positions[m.Indices[3*t+2]],
	)
}

// Validate checks that the index buffer holds whole triangles of valid vertices
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for slot, v := range m.Indices {
		if int(v) >= len(m.Positions) {
			return fmt.Errorf("index %d at slot %d is out of range for %d vertices", v, slot, len(m.Positions))
		}
	}
	return nil
}

// BoundingBox calculates the bounding box of all referenced vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Indices {
		bbox.Extend(m.Positions[v])
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for t := 0; t < m.TriangleCount(); t++ {
		total += m.Triangle(t).Area()
	}
	return total
}

// Flatten returns the positions as a tightly packed float32 buffer with a
// stride of 3 floats.
func (m *Mesh) Flatten() []float32 {
	out := make([]float32, 0, 3*len(m.Positions))
	for _, p := range m.Positions {
		out = append(out, float32(p.X), float32(p.Y), float32(p.Z))
	}
	return out
}
