// Package halfedge builds half-edge connectivity for indexed triangle meshes.
//
// Build turns an index buffer into three half-edges per triangle and one
// leading half-edge per vertex. Classify then pairs half-edges that share an
// undirected edge and reports how many edges are boundary, manifold or
// non-manifold. Only manifold edges are twinned; edges shared by three or more
// triangles are left untwinned so their topology is never guessed.
package halfedge

import (
	"errors"
	"fmt"
)

// ErrIndexCount is returned when the index buffer does not hold whole triangles.
var ErrIndexCount = errors.New("index count is not a multiple of 3")

// IndexError reports an index buffer entry that is not a valid vertex.
type IndexError struct {
	Slot        int
	Index       uint32
	VertexCount int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d at slot %d is out of range for %d vertices", e.Index, e.Slot, e.VertexCount)
}

// Ref is an optional reference to a half-edge. The zero value is None.
type Ref struct {
	slot uint32 // index + 1, zero when absent
}

// None is the absent reference.
var None = Ref{}

// RefTo returns a reference to half-edge i.
func RefTo(i int) Ref {
	return Ref{slot: uint32(i) + 1}
}

// Valid reports whether the reference points at a half-edge.
func (r Ref) Valid() bool {
	return r.slot != 0
}

// Index returns the referenced half-edge and whether there is one.
func (r Ref) Index() (int, bool) {
	if r.slot == 0 {
		return 0, false
	}
	return int(r.slot - 1), true
}

func (r Ref) String() string {
	if i, ok := r.Index(); ok {
		return fmt.Sprintf("%d", i)
	}
	return "none"
}

// Vertex is a mesh vertex. Its position lives in the caller's buffer at the
// same index.
type Vertex struct {
	// Leading is a half-edge leaving the vertex, used to seed traversals.
	Leading Ref
}

// HalfEdge is a directed edge of one triangle.
type HalfEdge struct {
	To   uint32 // destination vertex
	Next uint32 // next half-edge around the same triangle
	Twin Ref    // opposite half-edge across the edge, None on boundaries
	Face uint32 // owning triangle
}

// Mesh is the half-edge representation of a triangle mesh. Half-edge 3t+i
// belongs to triangle t and starts at its i-th corner.
type Mesh struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.HalfEdges) / 3
}

// Prev returns the half-edge preceding e around its triangle.
func (m *Mesh) Prev(e int) int {
	return int(m.HalfEdges[m.HalfEdges[e].Next].Next)
}

// Origin returns the vertex e starts at.
func (m *Mesh) Origin(e int) uint32 {
	return m.HalfEdges[m.Prev(e)].To
}

// Endpoints returns the origin and destination of e.
func (m *Mesh) Endpoints(e int) (from, to uint32) {
	return m.Origin(e), m.HalfEdges[e].To
}

// IsBoundary reports whether e has no twin.
func (m *Mesh) IsBoundary(e int) bool {
	return !m.HalfEdges[e].Twin.Valid()
}

// Outgoing returns the half-edges leaving v that are reachable from its
// leading half-edge by crossing twinned edges. On closed manifold fans this
// is the full one-ring; walks stop at boundary and non-manifold edges and at
// twins with inconsistent winding.
func (m *Mesh) Outgoing(v int) []int {
	start, ok := m.Vertices[v].Leading.Index()
	if !ok {
		return nil
	}

	out := []int{start}
	limit := len(m.HalfEdges)

	// Clockwise: the twin of the incoming half-edge leaves v again.
	e := start
	for len(out) <= limit {
		twin, ok := m.HalfEdges[m.Prev(e)].Twin.Index()
		if !ok {
			break
		}
		if twin == start {
			return out
		}
		if m.Origin(twin) != uint32(v) {
			break
		}
		out = append(out, twin)
		e = twin
	}

	// Hit a boundary: walk the other way from the start.
	e = start
	for len(out) <= limit {
		twin, ok := m.HalfEdges[e].Twin.Index()
		if !ok {
			break
		}
		next := int(m.HalfEdges[twin].Next)
		if next == start || m.Origin(next) != uint32(v) {
			break
		}
		out = append(out, next)
		e = next
	}
	return out
}

// CheckTwins verifies that every twin link is symmetric and joins the same
// pair of vertices.
func (m *Mesh) CheckTwins() error {
	for e := range m.HalfEdges {
		twin, ok := m.HalfEdges[e].Twin.Index()
		if !ok {
			continue
		}
		if twin < 0 || twin >= len(m.HalfEdges) {
			return fmt.Errorf("half-edge %d: twin %d out of range", e, twin)
		}
		if back, ok := m.HalfEdges[twin].Twin.Index(); !ok || back != e {
			return fmt.Errorf("half-edge %d: twin %d points back to %s", e, twin, m.HalfEdges[twin].Twin)
		}
		a, b := m.Endpoints(e)
		c, d := m.Endpoints(twin)
		if !(a == d && b == c) && !(a == c && b == d) {
			return fmt.Errorf("half-edge %d (%d->%d): twin %d joins %d->%d", e, a, b, twin, c, d)
		}
	}
	return nil
}
