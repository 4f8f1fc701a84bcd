package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gosimplify/pkg/geometry"
	"github.com/philipparndt/gosimplify/pkg/halfedge"
	"github.com/philipparndt/gosimplify/pkg/mesh"
)

// EdgeInfo contains information about an undirected edge of a mesh
type EdgeInfo struct {
	Lower, Higher uint32
	Start         geometry.Vector3
	End           geometry.Vector3
	Length        float64
	Kind          halfedge.Kind
	// Faces lists the triangles using the edge.
	Faces []int
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox         geometry.BoundingBox
	Dimensions          geometry.Vector3
	SurfaceArea         float64
	VertexCount         int
	TriangleCount       int
	EdgeCount           int
	MinEdgeLength       float64
	MaxEdgeLength       float64
	AvgEdgeLength       float64
	DegenerateTriangles int
	IsolatedVertices    int
	Topology            halfedge.Stats
	AllEdges            []EdgeInfo
}

// AnalyzeMesh performs comprehensive analysis on an indexed mesh
func AnalyzeMesh(m *mesh.Mesh) (*MeasurementResult, error) {
	topo, err := halfedge.Build(m.Indices, m.VertexCount())
	if err != nil {
		return nil, fmt.Errorf("failed to build connectivity: %w", err)
	}

	result := &MeasurementResult{
		BoundingBox:   m.BoundingBox(),
		SurfaceArea:   m.SurfaceArea(),
		VertexCount:   m.VertexCount(),
		TriangleCount: m.TriangleCount(),
		Topology:      halfedge.Classify(topo),
	}
	if !result.BoundingBox.IsEmpty() {
		result.Dimensions = result.BoundingBox.Size()
	}

	for t := 0; t < m.TriangleCount(); t++ {
		if m.Triangle(t).IsDegenerate() {
			result.DegenerateTriangles++
		}
	}
	for _, v := range topo.Vertices {
		if !v.Leading.Valid() {
			result.IsolatedVertices++
		}
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	edges := halfedge.Edges(topo)
	result.AllEdges = make([]EdgeInfo, 0, len(edges))
	for _, e := range edges {
		start, end := m.Positions[e.Lower], m.Positions[e.Higher]
		length := start.Distance(end)

		faces := make([]int, len(e.HalfEdges))
		for i, he := range e.HalfEdges {
			faces[i] = int(topo.HalfEdges[he].Face)
		}

		result.AllEdges = append(result.AllEdges, EdgeInfo{
			Lower:  e.Lower,
			Higher: e.Higher,
			Start:  start,
			End:    end,
			Length: length,
			Kind:   e.Kind,
			Faces:  faces,
		})

		totalLength += length
		minLength = math.Min(minLength, length)
		maxLength = math.Max(maxLength, length)
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result, nil
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindEdgesByKind returns the edges of the given kind in index order
func FindEdgesByKind(result *MeasurementResult, kind halfedge.Kind) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Kind == kind {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the mesh. A count below one
// returns no edges.
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	return edges[:max(0, min(count, len(edges)))]
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	return edges[:max(0, min(count, len(edges)))]
}

// ParseKind parses the name of an edge kind as printed by halfedge.Kind
func ParseKind(name string) (halfedge.Kind, error) {
	for _, k := range []halfedge.Kind{halfedge.Boundary, halfedge.Manifold, halfedge.NonManifold} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown edge kind %q (expected boundary, manifold or non-manifold)", name)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
