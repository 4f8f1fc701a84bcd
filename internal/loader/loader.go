// Package loader opens mesh files by extension.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gosimplify/pkg/mesh"
	"github.com/philipparndt/gosimplify/pkg/obj"
	"github.com/philipparndt/gosimplify/pkg/openscad"
	"github.com/philipparndt/gosimplify/pkg/stl"
)

// Loaded is a mesh together with what was learned while reading it
type Loaded struct {
	Mesh *mesh.Mesh
	// Warnings are formatted loader diagnostics, one per malformed record.
	Warnings []string
	// Sources lists the files the mesh was built from, for watching.
	Sources []string
}

// Load reads an .obj, .stl or .scad file. STL triangle soups and rendered
// OpenSCAD models are welded with the given tolerance.
func Load(ctx context.Context, path string, tolerance float64) (*Loaded, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".obj":
		res, err := obj.ReadFile(path)
		if err != nil {
			return nil, err
		}
		loaded := &Loaded{Mesh: res.Mesh, Sources: []string{path}}
		for _, w := range res.Diagnostics.Warnings {
			loaded.Warnings = append(loaded.Warnings, res.Diagnostics.Format(w))
		}
		return loaded, nil

	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
		return &Loaded{Mesh: model.Mesh(tolerance), Sources: []string{path}}, nil

	case ".scad":
		return loadOpenSCAD(ctx, path, tolerance)

	default:
		return nil, fmt.Errorf("unsupported file type: %q (expected .obj, .stl or .scad)", ext)
	}
}

func loadOpenSCAD(ctx context.Context, path string, tolerance float64) (*Loaded, error) {
	renderer := openscad.NewRenderer(filepath.Dir(path))

	deps, err := renderer.ResolveDependencies(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}

	tmp, err := os.CreateTemp("", "gosimplify-*.stl")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := renderer.RenderToSTL(ctx, path, tmp.Name()); err != nil {
		return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
	}

	model, err := stl.Parse(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
	}

	m := model.Mesh(tolerance)
	m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Loaded{Mesh: m, Sources: deps}, nil
}
