// Package simplify is the entry point of the simplification pipeline. It
// validates caller-owned vertex and index buffers, builds the half-edge
// connectivity and reports the topology. Decimation itself is not performed.
package simplify

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gosimplify/pkg/halfedge"
	"github.com/philipparndt/gosimplify/pkg/mesh"
)

// ErrNonManifold is returned when Options.RequireManifold is set and the
// input has an edge shared by more than two triangles.
var ErrNonManifold = errors.New("mesh has non-manifold edges")

// Options configures Simplify
type Options struct {
	// Diagnostics receives the topology report. Nil means os.Stderr.
	Diagnostics io.Writer
	// Workers bounds the goroutines used for edge classification.
	Workers int
	// RequireManifold turns non-manifold edges into an error.
	RequireManifold bool
}

// Result holds the connectivity built for the input
type Result struct {
	Positions mesh.PositionBuffer
	Indices   []uint32
	Topology  *halfedge.Mesh
	Stats     halfedge.Stats
}

// Simplify validates the buffers, builds the half-edge mesh and classifies its
// edges. positions holds vertexCount positions strideBytes apart; indices
// holds at least 3*triangleCount entries, extra entries are ignored. The
// stats line is written to opts.Diagnostics before any manifold check.
func Simplify(positions []float32, strideBytes int, indices []uint32, vertexCount, triangleCount int, opts Options) (*Result, error) {
	buf, err := mesh.NewPositionBuffer(positions, strideBytes, vertexCount)
	if err != nil {
		return nil, fmt.Errorf("invalid vertex buffer: %w", err)
	}
	if triangleCount < 0 {
		return nil, fmt.Errorf("negative triangle count %d", triangleCount)
	}
	if len(indices) < 3*triangleCount {
		return nil, fmt.Errorf("index buffer holds %d entries, %d triangles need %d", len(indices), triangleCount, 3*triangleCount)
	}
	indices = indices[:3*triangleCount]

	topo, err := halfedge.Build(indices, vertexCount)
	if err != nil {
		return nil, fmt.Errorf("failed to build connectivity: %w", err)
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	stats := halfedge.ClassifyParallel(topo, workers)

	out := opts.Diagnostics
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintln(out, stats.String())

	res := &Result{
		Positions: buf,
		Indices:   indices,
		Topology:  topo,
		Stats:     stats,
	}
	if opts.RequireManifold && stats.NonManifold > 0 {
		return res, fmt.Errorf("%w: %d edges", ErrNonManifold, stats.NonManifold)
	}
	return res, nil
}

// SimplifyMesh runs Simplify on an indexed mesh
func SimplifyMesh(m *mesh.Mesh, opts Options) (*Result, error) {
	return Simplify(m.Flatten(), 12, m.Indices, m.VertexCount(), m.TriangleCount(), opts)
}
