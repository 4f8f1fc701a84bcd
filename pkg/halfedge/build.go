package halfedge

// Build creates the half-edges of an indexed triangle list.
//
// Half-edge 3t+i runs from corner i of triangle t to corner (i+1)%3, links to
// 3t+(i+1)%3 as its successor and starts without a twin. Each vertex records
// the last half-edge found leaving it; any outgoing half-edge is a valid
// traversal seed. Vertices used by no triangle keep a None leading edge.
func Build(indices []uint32, vertexCount int) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, ErrIndexCount
	}
	for slot, v := range indices {
		if int(v) >= vertexCount {
			return nil, &IndexError{Slot: slot, Index: v, VertexCount: vertexCount}
		}
	}

	m := &Mesh{
		Vertices:  make([]Vertex, vertexCount),
		HalfEdges: make([]HalfEdge, len(indices)),
	}

	for t := 0; t < len(indices)/3; t++ {
		base := 3 * t
		for i := 0; i < 3; i++ {
			e := base + i
			next := base + (i+1)%3
			m.HalfEdges[e] = HalfEdge{
				To:   indices[next],
				Next: uint32(next),
				Twin: None,
				Face: uint32(t),
			}
			m.Vertices[indices[e]].Leading = RefTo(e)
		}
	}
	return m, nil
}
