// Package viewer renders meshes to images without a display. Faces are flat
// shaded and edges are colored by their topology, so boundary and
// non-manifold edges stand out.
package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/philipparndt/gosimplify/pkg/geometry"
	"github.com/philipparndt/gosimplify/pkg/halfedge"
	"github.com/philipparndt/gosimplify/pkg/mesh"
	"golang.org/x/image/draw"
)

var (
	backgroundColor  = color.RGBA{30, 30, 36, 255}
	faceColor        = color.RGBA{170, 180, 200, 255}
	manifoldColor    = color.RGBA{90, 95, 110, 255}
	boundaryColor    = color.RGBA{240, 200, 40, 255}
	nonManifoldColor = color.RGBA{230, 50, 60, 255}
	textColor        = color.RGBA{230, 230, 230, 255}
)

// edgeBias pulls edges in front of coplanar faces
const edgeBias = 1e-3

// Options configures a snapshot
type Options struct {
	Width, Height int
	// RotationX and RotationY orbit the camera around the mesh, in radians.
	RotationX, RotationY float64
	// Wireframe also draws manifold edges.
	Wireframe bool
	// Supersample renders at this multiple of the size and scales down.
	Supersample int
	// Legend prints the edge counts in the top left corner.
	Legend bool
}

// DefaultOptions returns an 800x600 three-quarter view
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		RotationX:   math.Pi / 6,
		RotationY:   math.Pi / 4,
		Supersample: 2,
		Legend:      true,
	}
}

// Snapshot renders m as seen by an orbit camera framing its bounding box
func Snapshot(m *mesh.Mesh, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	topo, err := halfedge.Build(m.Indices, m.VertexCount())
	if err != nil {
		return nil, fmt.Errorf("failed to build connectivity: %w", err)
	}
	stats := halfedge.Classify(topo)

	scale := max(1, opts.Supersample)
	width, height := opts.Width*scale, opts.Height*scale

	camera := NewCamera(m.BoundingBox())
	camera.Rotate(opts.RotationX, opts.RotationY)
	proj := camera.Projector(float64(width), float64(height))
	eye := camera.Position()

	screen := make([]screenVertex, m.VertexCount())
	visible := make([]bool, m.VertexCount())
	for i, p := range m.Positions {
		x, y, z, ok := proj.Project(p)
		screen[i] = screenVertex{x, y, z}
		visible[i] = ok
	}

	r := newRaster(width, height, backgroundColor)
	for t := 0; t < m.TriangleCount(); t++ {
		ia, ib, ic := m.Indices[3*t], m.Indices[3*t+1], m.Indices[3*t+2]
		if !visible[ia] || !visible[ib] || !visible[ic] {
			continue
		}
		tri := m.Triangle(t)
		r.fillTriangle(screen[ia], screen[ib], screen[ic], shade(tri, eye))
	}

	for _, e := range halfedge.Edges(topo) {
		if !visible[e.Lower] || !visible[e.Higher] {
			continue
		}
		var col color.RGBA
		switch e.Kind {
		case halfedge.Boundary:
			col = boundaryColor
		case halfedge.NonManifold:
			col = nonManifoldColor
		default:
			if !opts.Wireframe {
				continue
			}
			col = manifoldColor
		}
		r.drawLine(screen[e.Lower], screen[e.Higher], edgeBias, col)
	}

	img := r.img
	if scale > 1 {
		img = image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
		draw.CatmullRom.Scale(img, img.Bounds(), r.img, r.img.Bounds(), draw.Src, nil)
	}
	if opts.Legend {
		drawLegend(img, stats)
	}
	return img, nil
}

// shade returns the face color lit from the eye, two-sided
func shade(tri geometry.Triangle, eye geometry.Vector3) color.RGBA {
	n := tri.Normal()
	toEye := eye.Sub(tri.Center()).Normalize()
	intensity := 0.25 + 0.75*math.Abs(n.Dot(toEye))
	if math.IsNaN(intensity) {
		intensity = 0.25
	}
	return color.RGBA{
		R: uint8(float64(faceColor.R) * intensity),
		G: uint8(float64(faceColor.G) * intensity),
		B: uint8(float64(faceColor.B) * intensity),
		A: 255,
	}
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
