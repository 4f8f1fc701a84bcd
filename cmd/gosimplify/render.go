package main

import (
	"fmt"
	"math"
	"os"

	"github.com/philipparndt/gosimplify/internal/loader"
	"github.com/philipparndt/gosimplify/pkg/viewer"
	"github.com/spf13/cobra"
)

var (
	renderOutput    string
	renderWidth     int
	renderHeight    int
	renderElevation float64
	renderAzimuth   float64
	renderWireframe bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a mesh to PNG with boundary and non-manifold edges highlighted",
	Long: `Render a flat shaded view of the mesh. Boundary edges are drawn in yellow and
non-manifold edges in red; with --wireframe manifold edges are drawn too.`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	defaults := viewer.DefaultOptions()
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "mesh.png", "PNG file to write")
	renderCmd.Flags().IntVar(&renderWidth, "width", defaults.Width, "Image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", defaults.Height, "Image height in pixels")
	renderCmd.Flags().Float64Var(&renderElevation, "elevation", defaults.RotationX*180/math.Pi, "Camera elevation in degrees")
	renderCmd.Flags().Float64Var(&renderAzimuth, "azimuth", defaults.RotationY*180/math.Pi, "Camera azimuth in degrees")
	renderCmd.Flags().BoolVar(&renderWireframe, "wireframe", false, "Draw manifold edges as well")
}

func runRender(cmd *cobra.Command, args []string) {
	filename := args[0]

	loaded, err := loader.Load(cmd.Context(), filename, weldTolerance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	opts := viewer.DefaultOptions()
	opts.Width = renderWidth
	opts.Height = renderHeight
	opts.RotationX = renderElevation * math.Pi / 180
	opts.RotationY = renderAzimuth * math.Pi / 180
	opts.Wireframe = renderWireframe

	img, err := viewer.Snapshot(loaded.Mesh, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering mesh: %v\n", err)
		os.Exit(1)
	}

	file, err := os.Create(renderOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	if err := viewer.WritePNG(file, img); err != nil {
		file.Close()
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", renderOutput, err)
		os.Exit(1)
	}
	if err := file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", renderOutput, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %dx%d image to %s\n", opts.Width, opts.Height, renderOutput)
}
