package loader

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gosimplify/pkg/openscad"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadOBJ(t *testing.T) {
	path := write(t, "tri.OBJ", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\nf 1 2\n")

	loaded, err := Load(context.Background(), path, 0)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Mesh.TriangleCount() != 1 {
		t.Errorf("expected 1 triangle, got %d", loaded.Mesh.TriangleCount())
	}
	if len(loaded.Warnings) != 1 || !strings.HasPrefix(loaded.Warnings[0], path+"@5: ") {
		t.Errorf("Warnings failed: got %v", loaded.Warnings)
	}
	if len(loaded.Sources) != 1 || loaded.Sources[0] != path {
		t.Errorf("Sources failed: got %v", loaded.Sources)
	}
}

func TestLoadSTL(t *testing.T) {
	path := write(t, "quad.stl", `solid quad
facet normal 0 0 1
outer loop
vertex 0 0 0
vertex 1 0 0
vertex 1 1 0
endloop
endfacet
facet normal 0 0 1
outer loop
vertex 0 0 0
vertex 1 1 0
vertex 0 1 0
endloop
endfacet
endsolid quad
`)

	loaded, err := Load(context.Background(), path, 1e-9)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Mesh.VertexCount() != 4 || loaded.Mesh.TriangleCount() != 2 {
		t.Errorf("weld failed: got %d vertices, %d triangles", loaded.Mesh.VertexCount(), loaded.Mesh.TriangleCount())
	}
	if len(loaded.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", loaded.Warnings)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(context.Background(), write(t, "mesh.ply", "ply\n"), 0); err == nil {
		t.Errorf("expected error for unsupported extension")
	}
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.obj"), 0); err == nil {
		t.Errorf("expected error for missing file")
	}
	if _, err := Load(context.Background(), write(t, "broken.stl", "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nendloop\nendfacet\n"), 0); err == nil {
		t.Errorf("expected error for malformed STL")
	}
}

func TestLoadOpenSCADWithoutBinary(t *testing.T) {
	if _, err := exec.LookPath("openscad"); err == nil {
		t.Skip("openscad is installed")
	}

	path := write(t, "cube.scad", "cube(1);\n")
	_, err := Load(context.Background(), path, 0)
	if !errors.Is(err, openscad.ErrNotInstalled) {
		t.Errorf("expected ErrNotInstalled, got %v", err)
	}
}

func TestLoadOpenSCAD(t *testing.T) {
	if _, err := exec.LookPath("openscad"); err != nil {
		t.Skip("openscad is not installed")
	}

	path := write(t, "cube.scad", "cube(2);\n")
	loaded, err := Load(context.Background(), path, 1e-9)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Mesh.Name != "cube" || loaded.Mesh.VertexCount() != 8 {
		t.Errorf("render failed: got %q with %d vertices", loaded.Mesh.Name, loaded.Mesh.VertexCount())
	}
}
