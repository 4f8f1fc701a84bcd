package obj

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/philipparndt/gosimplify/pkg/geometry"
	"github.com/philipparndt/gosimplify/pkg/mesh"
)

func mustRead(t *testing.T, text string) *Result {
	t.Helper()
	res, err := Read(strings.NewReader(text), "test.obj")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	return res
}

func warningsContaining(res *Result, substr string) int {
	n := 0
	for _, w := range res.Diagnostics.Warnings {
		if strings.Contains(w.Message, substr) {
			n++
		}
	}
	return n
}

func TestReadTetrahedron(t *testing.T) {
	res := mustRead(t, `# tetrahedron
o tet
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1

vn 0 0 1
f 1 3 2
f 1 2 4
f 1 4 3
f 2 3 4
`)

	m := res.Mesh
	if m.VertexCount() != 4 || m.TriangleCount() != 4 {
		t.Fatalf("counts failed: got %d vertices, %d triangles", m.VertexCount(), m.TriangleCount())
	}
	if m.Positions[1] != geometry.NewVector3(1, 0, 0) {
		t.Errorf("position failed: got %v", m.Positions[1])
	}
	expected := []uint32{0, 2, 1, 0, 1, 3, 0, 3, 2, 1, 2, 3}
	if !reflect.DeepEqual(m.Indices, expected) {
		t.Errorf("Indices failed: expected %v, got %v", expected, m.Indices)
	}
	if len(res.Diagnostics.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", res.Diagnostics.Warnings)
	}
}

func TestReadRelativeIndices(t *testing.T) {
	res := mustRead(t, `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
v 1 1 0
f -3 -1 -2
`)

	expected := []uint32{0, 1, 2, 1, 3, 2}
	if !reflect.DeepEqual(res.Mesh.Indices, expected) {
		t.Errorf("Indices failed: expected %v, got %v", expected, res.Mesh.Indices)
	}
}

func TestReadSkipsMalformedFaces(t *testing.T) {
	tests := []struct {
		name    string
		face    string
		message string
	}{
		{"quad", "f 1 2 3 1", "non-triangle polygon with 4 corners"},
		{"line", "f 1 2", "non-triangle polygon with 2 corners"},
		{"zero index", "f 0 1 2", "zero index"},
		{"beyond end", "f 1 2 4", "beyond the last vertex"},
		{"before start", "f -1 -2 -4", "before the first vertex"},
		{"not a number", "f 1 x 2", "failed to parse index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustRead(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\n"+tt.face+"\nf 1 2 3\n")

			if res.Mesh.TriangleCount() != 1 {
				t.Errorf("expected the valid face to survive, got %d triangles", res.Mesh.TriangleCount())
			}
			if res.SkippedFaces != 1 {
				t.Errorf("SkippedFaces failed: expected 1, got %d", res.SkippedFaces)
			}
			if warningsContaining(res, tt.message) != 1 {
				t.Errorf("expected warning %q, got %+v", tt.message, res.Diagnostics.Warnings)
			}
			if res.Diagnostics.Warnings[0].Line != 4 {
				t.Errorf("warning line failed: expected 4, got %d", res.Diagnostics.Warnings[0].Line)
			}
		})
	}
}

func TestReadAnnotationsWarnOnce(t *testing.T) {
	res := mustRead(t, `v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
f 2//1 4//1 3//1
`)

	if res.Mesh.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", res.Mesh.TriangleCount())
	}
	if n := warningsContaining(res, "texture and normal indices"); n != 1 {
		t.Errorf("expected one annotation warning, got %d", n)
	}

	// A second read starts with fresh diagnostics.
	again := mustRead(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1 2/2 3/3\n")
	if n := warningsContaining(again, "texture and normal indices"); n != 1 {
		t.Errorf("expected one annotation warning on second read, got %d", n)
	}
}

func TestReadVertexWarnings(t *testing.T) {
	res := mustRead(t, `v 1 2
v 1 2 3 1 5
v 1 2 3 2
v 1 2 3 1
v 1 nope 3
`)

	m := res.Mesh
	if m.VertexCount() != 5 {
		t.Fatalf("expected 5 vertices, got %d", m.VertexCount())
	}
	if m.Positions[0] != geometry.NewVector3(1, 2, 0) {
		t.Errorf("short vertex failed: got %v", m.Positions[0])
	}
	if m.Positions[2] != geometry.NewVector3(1, 2, 3) {
		t.Errorf("homogeneous vertex failed: got %v", m.Positions[2])
	}
	if m.Positions[4] != geometry.NewVector3(1, 0, 3) {
		t.Errorf("unparsable coordinate failed: got %v", m.Positions[4])
	}

	for _, msg := range []string{
		"vertex with 2 coordinates",
		"vertex with 5 coordinates, truncating to 4",
		"non-Euclidean vertex position",
		"failed to parse coordinate",
	} {
		if warningsContaining(res, msg) != 1 {
			t.Errorf("expected warning %q, got %+v", msg, res.Diagnostics.Warnings)
		}
	}
	if len(res.Diagnostics.Warnings) != 4 {
		t.Errorf("expected 4 warnings, got %+v", res.Diagnostics.Warnings)
	}
}

func TestDiagnosticsPrint(t *testing.T) {
	res := mustRead(t, "v 0 0 0\nf 1 1\n")

	var buf bytes.Buffer
	res.Diagnostics.Print(&buf)

	expected := "test.obj@2: non-triangle polygon with 2 corners, skipping face\n"
	if buf.String() != expected {
		t.Errorf("Print failed: expected %q, got %q", expected, buf.String())
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	res, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if res.Mesh.TriangleCount() != 1 || res.Diagnostics.Name != path {
		t.Errorf("ReadFile failed: got %+v", res)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestWriterSegmentsAndTriangle(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Comment("probe")
	w.Segment(geometry.NewVector3(0.5, 0, 0), geometry.NewVector3(0.5, -2, 0))
	w.Triangle(geometry.NewTriangle(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	expected := `# probe
v 0.5 0 0
v 0.5 -2 0
l -2 -1
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	if buf.String() != expected {
		t.Errorf("output failed:\nexpected %q\n     got %q", expected, buf.String())
	}
}

func TestWriterMeshRoundTrip(t *testing.T) {
	m := mesh.New("quad")
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 1, 0))
	m.AddVertex(geometry.NewVector3(0, 1, 0))
	m.AddTriangle(0, 1, 2)
	m.AddTriangle(0, 2, 3)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Segment(geometry.NewVector3(5, 5, 5), geometry.NewVector3(6, 6, 6))
	w.Mesh(m)
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	res := mustRead(t, buf.String())
	if res.Mesh.VertexCount() != 6 {
		t.Fatalf("expected 6 vertices, got %d", res.Mesh.VertexCount())
	}
	expected := []uint32{2, 3, 4, 2, 4, 5}
	if !reflect.DeepEqual(res.Mesh.Indices, expected) {
		t.Errorf("Indices failed: expected %v, got %v", expected, res.Mesh.Indices)
	}
}
