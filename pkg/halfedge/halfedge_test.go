package halfedge

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

// tetrahedron is a closed, consistently oriented mesh with 4 faces and 6 edges.
var tetrahedron = []uint32{
	0, 2, 1,
	0, 1, 3,
	0, 3, 2,
	1, 2, 3,
}

func mustBuild(t testing.TB, indices []uint32, vertexCount int) *Mesh {
	t.Helper()
	m, err := Build(indices, vertexCount)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return m
}

// grid returns an n x n quad grid split into 2n² triangles.
func grid(n int) ([]uint32, int) {
	var indices []uint32
	stride := n + 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v00 := uint32(i*stride + j)
			v10 := v00 + 1
			v01 := v00 + uint32(stride)
			v11 := v01 + 1
			indices = append(indices, v00, v10, v11, v00, v11, v01)
		}
	}
	return indices, stride * stride
}

func TestRef(t *testing.T) {
	var zero Ref
	if zero.Valid() || zero != None {
		t.Errorf("zero Ref should be None")
	}
	if _, ok := None.Index(); ok {
		t.Errorf("None.Index should report absence")
	}
	if None.String() != "none" {
		t.Errorf("String failed: expected none, got %q", None.String())
	}

	r := RefTo(0)
	if i, ok := r.Index(); !ok || i != 0 {
		t.Errorf("RefTo(0) failed: got %d, %v", i, ok)
	}
	if r := RefTo(41); r.String() != "41" {
		t.Errorf("String failed: expected 41, got %q", r.String())
	}
}

func TestBuildLayout(t *testing.T) {
	m := mustBuild(t, []uint32{5, 7, 9}, 10)

	expected := []HalfEdge{
		{To: 7, Next: 1, Twin: None, Face: 0},
		{To: 9, Next: 2, Twin: None, Face: 0},
		{To: 5, Next: 0, Twin: None, Face: 0},
	}
	if !reflect.DeepEqual(m.HalfEdges, expected) {
		t.Errorf("HalfEdges failed: expected %+v, got %+v", expected, m.HalfEdges)
	}

	for v, e := range map[int]int{5: 0, 7: 1, 9: 2} {
		if got, ok := m.Vertices[v].Leading.Index(); !ok || got != e {
			t.Errorf("Leading of %d failed: expected %d, got %v", v, e, m.Vertices[v].Leading)
		}
		if m.Origin(e) != uint32(v) {
			t.Errorf("Origin of %d failed: expected %d, got %d", e, v, m.Origin(e))
		}
	}
	if m.Vertices[0].Leading.Valid() {
		t.Errorf("unused vertex should have no leading half-edge")
	}
	if m.Prev(0) != 2 {
		t.Errorf("Prev failed: expected 2, got %d", m.Prev(0))
	}
}

func TestBuildNextCycles(t *testing.T) {
	indices, nv := grid(3)
	m := mustBuild(t, indices, nv)

	for e := range m.HalfEdges {
		n1 := m.HalfEdges[e].Next
		n2 := m.HalfEdges[n1].Next
		n3 := m.HalfEdges[n2].Next
		if int(n3) != e {
			t.Fatalf("half-edge %d: next cycle does not close", e)
		}
		if m.HalfEdges[n1].Face != m.HalfEdges[e].Face {
			t.Fatalf("half-edge %d: next leaves the face", e)
		}
	}
	for v := range m.Vertices {
		e, ok := m.Vertices[v].Leading.Index()
		if !ok {
			t.Fatalf("vertex %d has no leading half-edge", v)
		}
		if m.Origin(e) != uint32(v) {
			t.Fatalf("vertex %d: leading half-edge %d starts at %d", v, e, m.Origin(e))
		}
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build([]uint32{0, 1}, 3); !errors.Is(err, ErrIndexCount) {
		t.Errorf("expected ErrIndexCount, got %v", err)
	}

	_, err := Build([]uint32{0, 1, 2, 0, 2, 3}, 3)
	var indexErr *IndexError
	if !errors.As(err, &indexErr) {
		t.Fatalf("expected IndexError, got %v", err)
	}
	if indexErr.Slot != 5 || indexErr.Index != 3 {
		t.Errorf("IndexError failed: got %+v", indexErr)
	}

	m, err := Build(nil, 0)
	if err != nil || len(m.HalfEdges) != 0 {
		t.Errorf("empty Build failed: %v", err)
	}
}

func TestOutgoing(t *testing.T) {
	t.Run("closed fan", func(t *testing.T) {
		m := mustBuild(t, tetrahedron, 4)
		Classify(m)

		for v := 0; v < 4; v++ {
			out := m.Outgoing(v)
			if len(out) != 3 {
				t.Errorf("vertex %d: expected 3 outgoing half-edges, got %v", v, out)
			}
			for _, e := range out {
				if m.Origin(e) != uint32(v) {
					t.Errorf("vertex %d: half-edge %d starts at %d", v, e, m.Origin(e))
				}
			}
		}
	})

	t.Run("open fan", func(t *testing.T) {
		m := mustBuild(t, []uint32{0, 1, 2, 0, 2, 3}, 4)
		Classify(m)

		out := m.Outgoing(0)
		if len(out) != 2 {
			t.Fatalf("expected 2 outgoing half-edges, got %v", out)
		}
		for _, e := range out {
			if m.Origin(e) != 0 {
				t.Errorf("half-edge %d starts at %d", e, m.Origin(e))
			}
		}
	})

	t.Run("grid interior", func(t *testing.T) {
		indices, nv := grid(2)
		m := mustBuild(t, indices, nv)
		Classify(m)

		// The center vertex of a 2x2 grid touches all 6 diagonal-split triangles.
		if out := m.Outgoing(4); len(out) != 6 {
			t.Errorf("expected 6 outgoing half-edges, got %v", out)
		}
	})

	t.Run("inconsistent winding", func(t *testing.T) {
		// Both triangles run 0->1, so the shared edge is twinned but misoriented.
		m := mustBuild(t, []uint32{0, 1, 2, 0, 1, 3}, 4)
		if stats := Classify(m); stats.Misoriented != 1 {
			t.Fatalf("expected 1 misoriented pair, got %d", stats.Misoriented)
		}

		for v := 0; v < 2; v++ {
			out := m.Outgoing(v)
			if len(out) != 1 {
				t.Errorf("vertex %d: expected 1 outgoing half-edge, got %v", v, out)
			}
			for _, e := range out {
				if m.Origin(e) != uint32(v) {
					t.Errorf("vertex %d: half-edge %d starts at %d", v, e, m.Origin(e))
				}
			}
		}
	})

	t.Run("isolated vertex", func(t *testing.T) {
		m := mustBuild(t, []uint32{0, 1, 2}, 4)
		if out := m.Outgoing(3); out != nil {
			t.Errorf("expected nil, got %v", out)
		}
	})
}

func BenchmarkBuild(b *testing.B) {
	indices, nv := grid(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(indices, nv); err != nil {
			b.Fatal(err)
		}
	}
}

func randomIndices(rng *rand.Rand, triangles, vertices int) []uint32 {
	indices := make([]uint32, 3*triangles)
	for i := range indices {
		indices[i] = uint32(rng.Intn(vertices))
	}
	return indices
}
