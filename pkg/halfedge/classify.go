package halfedge

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Kind classifies an undirected edge by how many half-edges lie on it.
type Kind int

const (
	// Boundary edges have exactly one half-edge.
	Boundary Kind = iota
	// Manifold edges have exactly two half-edges, linked as twins.
	Manifold
	// NonManifold edges have three or more half-edges, none of them twinned.
	NonManifold
)

func (k Kind) String() string {
	switch k {
	case Boundary:
		return "boundary"
	case Manifold:
		return "manifold"
	case NonManifold:
		return "non-manifold"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf returns the kind of an edge carrying n half-edges.
func KindOf(n int) Kind {
	switch {
	case n <= 1:
		return Boundary
	case n == 2:
		return Manifold
	default:
		return NonManifold
	}
}

// Stats counts undirected edges by kind.
type Stats struct {
	Boundary    int
	Manifold    int
	NonManifold int

	// NonManifoldHalfEdges is the number of half-edges on non-manifold edges.
	NonManifoldHalfEdges int
	// Misoriented counts manifold edges whose two half-edges run the same way.
	Misoriented int
	// Degenerate counts half-edges that start and end at the same vertex.
	Degenerate int
}

// Edges returns the number of undirected edges.
func (s Stats) Edges() int {
	return s.Boundary + s.Manifold + s.NonManifold
}

// HalfEdges returns the number of half-edges accounted for, which equals
// three times the triangle count.
func (s Stats) HalfEdges() int {
	return s.Boundary + 2*s.Manifold + s.NonManifoldHalfEdges
}

// IsManifold reports whether no edge is shared by more than two triangles.
func (s Stats) IsManifold() bool {
	return s.NonManifold == 0
}

// IsClosed reports whether every edge is shared by exactly two triangles.
func (s Stats) IsClosed() bool {
	return s.Boundary == 0 && s.NonManifold == 0
}

func (s Stats) String() string {
	return fmt.Sprintf("%d boundary edges, %d manifold edges, and %d non-manifold edges.",
		s.Boundary, s.Manifold, s.NonManifold)
}

func (s *Stats) add(o Stats) {
	s.Boundary += o.Boundary
	s.Manifold += o.Manifold
	s.NonManifold += o.NonManifold
	s.NonManifoldHalfEdges += o.NonManifoldHalfEdges
	s.Misoriented += o.Misoriented
	s.Degenerate += o.Degenerate
}

// Classify links twins across manifold edges and counts edges by kind.
//
// Half-edges are bucketed by the lower vertex of their undirected edge in
// linked lists rooted per vertex, so no edge map is allocated. Each bucket is
// sorted by the higher vertex and scanned for runs: one half-edge is a
// boundary edge, two are twinned, three or more stay untwinned. Runs are
// O(E log E) overall for E half-edges.
func Classify(m *Mesh) Stats {
	return ClassifyParallel(m, 1)
}

// ClassifyParallel is Classify with the bucket scan split into vertex ranges
// processed by up to workers goroutines. A half-edge is only ever touched by
// the shard owning the lower vertex of its edge, so twin writes never race.
func ClassifyParallel(m *Mesh, workers int) Stats {
	for e := range m.HalfEdges {
		m.HalfEdges[e].Twin = None
	}

	b, degenerate := newBuckets(m)
	stats := Stats{Degenerate: degenerate}

	nv := len(m.Vertices)
	if nv == 0 {
		return stats
	}
	workers = max(1, min(workers, nv))
	if workers == 1 {
		stats.add(b.classifyRange(m, 0, nv))
		return stats
	}

	shard := (nv + workers - 1) / workers
	results := make([]Stats, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * shard
		hi := min(lo+shard, nv)
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[w] = b.classifyRange(m, lo, hi)
		}()
	}
	wg.Wait()

	for _, r := range results {
		stats.add(r)
	}
	return stats
}

// Edge is an undirected edge together with the half-edges lying on it.
type Edge struct {
	Lower, Higher uint32
	HalfEdges     []int
	Kind          Kind
}

// Edges lists the undirected edges of m ordered by lower then higher vertex.
// It does not modify m.
func Edges(m *Mesh) []Edge {
	b, _ := newBuckets(m)

	var edges []Edge
	var scratch []entry
	b.forEachRun(0, len(m.Vertices), &scratch, func(lower uint32, run []entry) {
		hes := make([]int, len(run))
		for i, r := range run {
			hes[i] = int(r.he)
		}
		edges = append(edges, Edge{
			Lower:     lower,
			Higher:    run[0].major,
			HalfEdges: hes,
			Kind:      KindOf(len(run)),
		})
	})
	return edges
}

type entry struct {
	major uint32
	he    int32
}

// buckets holds one singly-linked list of half-edges per lower vertex.
type buckets struct {
	head  []int32  // first half-edge per vertex, -1 when empty
	next  []int32  // next half-edge in the same list, -1 at the end
	major []uint32 // higher vertex of each half-edge's edge
}

func newBuckets(m *Mesh) (*buckets, int) {
	b := &buckets{
		head:  make([]int32, len(m.Vertices)),
		next:  make([]int32, len(m.HalfEdges)),
		major: make([]uint32, len(m.HalfEdges)),
	}
	for v := range b.head {
		b.head[v] = -1
	}

	degenerate := 0
	for e := range m.HalfEdges {
		from, to := m.Endpoints(e)
		if from == to {
			degenerate++
		}
		lower, higher := min(from, to), max(from, to)
		b.major[e] = higher
		b.next[e] = b.head[lower]
		b.head[lower] = int32(e)
	}
	return b, degenerate
}

// forEachRun calls fn for every group of half-edges sharing an undirected
// edge whose lower vertex lies in [lo, hi). Runs are sorted by half-edge index.
func (b *buckets) forEachRun(lo, hi int, scratch *[]entry, fn func(lower uint32, run []entry)) {
	for v := lo; v < hi; v++ {
		sub := (*scratch)[:0]
		for e := b.head[v]; e >= 0; e = b.next[e] {
			sub = append(sub, entry{major: b.major[e], he: e})
		}
		*scratch = sub
		if len(sub) == 0 {
			continue
		}

		slices.SortFunc(sub, func(x, y entry) int {
			if c := cmp.Compare(x.major, y.major); c != 0 {
				return c
			}
			return cmp.Compare(x.he, y.he)
		})

		for j := 0; j < len(sub); {
			i := j + 1
			for i < len(sub) && sub[i].major == sub[j].major {
				i++
			}
			fn(uint32(v), sub[j:i])
			j = i
		}
	}
}

func (b *buckets) classifyRange(m *Mesh, lo, hi int) Stats {
	var s Stats
	var scratch []entry
	b.forEachRun(lo, hi, &scratch, func(_ uint32, run []entry) {
		switch KindOf(len(run)) {
		case Boundary:
			s.Boundary++
		case Manifold:
			x, y := int(run[0].he), int(run[1].he)
			m.HalfEdges[x].Twin = RefTo(y)
			m.HalfEdges[y].Twin = RefTo(x)
			if m.HalfEdges[x].To == m.HalfEdges[y].To {
				s.Misoriented++
			}
			s.Manifold++
		default:
			s.NonManifold++
			s.NonManifoldHalfEdges += len(run)
		}
	})
	return s
}
