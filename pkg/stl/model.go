package stl

import (
	"github.com/philipparndt/gosimplify/pkg/geometry"
	"github.com/philipparndt/gosimplify/pkg/mesh"
)

// Facet is one STL triangle together with its stored normal
type Facet struct {
	Normal   geometry.Vector3
	Triangle geometry.Triangle
}

// Model is an STL triangle soup
type Model struct {
	Name   string
	Facets []Facet
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:   name,
		Facets: make([]Facet, 0),
	}
}

// AddFacet adds a facet to the model
func (m *Model) AddFacet(normal geometry.Vector3, triangle geometry.Triangle) {
	m.Facets = append(m.Facets, Facet{Normal: normal, Triangle: triangle})
}

// TriangleCount returns the number of facets in the model
func (m *Model) TriangleCount() int {
	return len(m.Facets)
}

// Triangles returns the facet corners without normals
func (m *Model) Triangles() []geometry.Triangle {
	triangles := make([]geometry.Triangle, len(m.Facets))
	for i, f := range m.Facets {
		triangles[i] = f.Triangle
	}
	return triangles
}

// Mesh welds the facets into an indexed mesh. STL stores every corner
// separately, so shared vertices are recovered by merging corners that agree
// within tolerance.
func (m *Model) Mesh(tolerance float64) *mesh.Mesh {
	return mesh.Weld(m.Name, m.Triangles(), tolerance)
}
