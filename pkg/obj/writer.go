package obj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/philipparndt/gosimplify/pkg/geometry"
	"github.com/philipparndt/gosimplify/pkg/mesh"
)

// Writer emits OBJ records. Elements written with Segment and Triangle use
// relative indices, so they can be mixed freely with whole meshes. The first
// write error is kept and returned by Flush.
type Writer struct {
	w        *bufio.Writer
	vertices int
	err      error
}

// NewWriter creates a writer on top of w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Comment writes a comment line
func (w *Writer) Comment(text string) {
	w.printf("# %s\n", text)
}

// Vertex writes a position
func (w *Writer) Vertex(v geometry.Vector3) {
	w.printf("v %s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	w.vertices++
}

// Segment writes a line element between two new vertices
func (w *Writer) Segment(a, b geometry.Vector3) {
	w.Vertex(a)
	w.Vertex(b)
	w.printf("l -2 -1\n")
}

// Triangle writes a face over three new vertices, keeping the corner order
func (w *Writer) Triangle(t geometry.Triangle) {
	w.Vertex(t.A)
	w.Vertex(t.B)
	w.Vertex(t.C)
	w.printf("f -3 -2 -1\n")
}

// Mesh writes all vertices and faces of m
func (w *Writer) Mesh(m *mesh.Mesh) {
	if m.Name != "" {
		w.printf("o %s\n", m.Name)
	}
	base := w.vertices + 1
	for _, p := range m.Positions {
		w.Vertex(p)
	}
	for t := 0; t < m.TriangleCount(); t++ {
		w.printf("f %d %d %d\n",
			base+int(m.Indices[3*t]),
			base+int(m.Indices[3*t+1]),
			base+int(m.Indices[3*t+2]))
	}
}

// Flush writes buffered data and reports the first error encountered
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}
