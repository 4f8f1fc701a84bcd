// Package obj reads triangle meshes from Wavefront OBJ text and writes
// meshes and line lists back out.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gosimplify/pkg/geometry"
	"github.com/philipparndt/gosimplify/pkg/mesh"
)

// Warning describes a malformed record that was skipped or repaired
type Warning struct {
	Line    int
	Message string
}

// Diagnostics collects the warnings of a single read
type Diagnostics struct {
	Name     string
	Warnings []Warning

	annotationsSeen bool
}

func (d *Diagnostics) warnf(line int, format string, args ...any) {
	d.Warnings = append(d.Warnings, Warning{Line: line, Message: fmt.Sprintf(format, args...)})
}

// Format renders a warning as name@line: message
func (d *Diagnostics) Format(w Warning) string {
	return fmt.Sprintf("%s@%d: %s", d.Name, w.Line, w.Message)
}

// Print writes every warning on its own line
func (d *Diagnostics) Print(w io.Writer) {
	for _, warning := range d.Warnings {
		fmt.Fprintln(w, d.Format(warning))
	}
}

// Result is the outcome of reading an OBJ file
type Result struct {
	Mesh         *mesh.Mesh
	Diagnostics  Diagnostics
	SkippedFaces int
}

// ReadFile reads an OBJ file from disk
func ReadFile(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return Read(file, path)
}

// Read parses OBJ text. Vertex positions and triangular faces are kept;
// malformed records are reported in the diagnostics and skipped. Only
// failures of the underlying reader are returned as errors.
func Read(r io.Reader, name string) (*Result, error) {
	res := &Result{
		Mesh:        mesh.New(name),
		Diagnostics: Diagnostics{Name: name},
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			res.readVertex(lineNo, fields[1:])
		case "f":
			if !res.readFace(lineNo, fields[1:]) {
				res.SkippedFaces++
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	return res, nil
}

func (res *Result) readVertex(lineNo int, fields []string) {
	d := &res.Diagnostics

	coords := make([]float64, 0, 4)
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			d.warnf(lineNo, "failed to parse coordinate %q, using 0", f)
		}
		coords = append(coords, x)
	}

	switch {
	case len(coords) < 3:
		d.warnf(lineNo, "vertex with %d coordinates, missing ones set to 0", len(coords))
		for len(coords) < 3 {
			coords = append(coords, 0)
		}
	case len(coords) > 4:
		d.warnf(lineNo, "vertex with %d coordinates, truncating to 4", len(coords))
		coords = coords[:4]
	}
	if len(coords) == 4 && coords[3] != 1 {
		d.warnf(lineNo, "non-Euclidean vertex position with w=%g", coords[3])
	}

	// Added even when malformed so later indices keep their meaning.
	res.Mesh.AddVertex(geometry.NewVector3(coords[0], coords[1], coords[2]))
}

func (res *Result) readFace(lineNo int, fields []string) bool {
	d := &res.Diagnostics

	raw := make([]int, 0, 3)
	for _, f := range fields {
		if pos := strings.IndexByte(f, '/'); pos >= 0 {
			f = f[:pos]
			if !d.annotationsSeen {
				d.annotationsSeen = true
				d.warnf(lineNo, "texture and normal indices are ignored")
			}
		}
		i, err := strconv.Atoi(f)
		if err != nil {
			d.warnf(lineNo, "failed to parse index %q, skipping face", f)
			return false
		}
		raw = append(raw, i)
	}

	if len(raw) != 3 {
		d.warnf(lineNo, "non-triangle polygon with %d corners, skipping face", len(raw))
		return false
	}

	count := res.Mesh.VertexCount()
	var corners [3]uint32
	for i, ix := range raw {
		switch {
		case ix == 0:
			d.warnf(lineNo, "zero index is illegal, skipping face")
			return false
		case ix < 0:
			abs := count + ix
			if abs < 0 {
				d.warnf(lineNo, "relative index %d points before the first vertex, skipping face", ix)
				return false
			}
			corners[i] = uint32(abs)
		default:
			if ix > count {
				d.warnf(lineNo, "index %d points beyond the last vertex, skipping face", ix)
				return false
			}
			corners[i] = uint32(ix - 1)
		}
	}

	res.Mesh.AddTriangle(corners[0], corners[1], corners[2])
	return true
}
