package openscad

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestResolveDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.scad"), `use <lib/shapes.scad>
include <./params.scad>
// use <commented.scad>
cube(size);
`)
	writeFile(t, filepath.Join(dir, "lib", "shapes.scad"), "include <../params.scad>\nmodule s() {}\n")
	writeFile(t, filepath.Join(dir, "params.scad"), "size = 10;\n")

	r := NewRenderer(dir)
	deps, err := r.ResolveDependencies("main.scad")
	if err != nil {
		t.Fatalf("ResolveDependencies failed: %v", err)
	}

	expected := []string{
		filepath.Join(dir, "main.scad"),
		filepath.Join(dir, "lib", "shapes.scad"),
		filepath.Join(dir, "params.scad"),
	}
	if !reflect.DeepEqual(deps, expected) {
		t.Errorf("ResolveDependencies failed: expected %v, got %v", expected, deps)
	}
}

func TestResolveDependenciesCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.scad"), "use <b.scad>\n")
	writeFile(t, filepath.Join(dir, "b.scad"), "use <a.scad>\n")

	deps, err := NewRenderer(dir).ResolveDependencies(filepath.Join(dir, "a.scad"))
	if err != nil {
		t.Fatalf("ResolveDependencies failed: %v", err)
	}
	if len(deps) != 2 {
		t.Errorf("expected 2 files, got %v", deps)
	}
}

func TestResolveDependenciesMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.scad"), "use <missing.scad>\n")

	if _, err := NewRenderer(dir).ResolveDependencies("main.scad"); err == nil {
		t.Errorf("expected error for missing dependency")
	}
}

func TestRenderWithoutBinary(t *testing.T) {
	r := NewRenderer(t.TempDir())
	r.binary = "openscad-binary-that-does-not-exist"

	if r.Available() {
		t.Fatal("expected binary to be unavailable")
	}
	err := r.RenderToSTL(context.Background(), "main.scad", "out.stl")
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("expected ErrNotInstalled, got %v", err)
	}
}
