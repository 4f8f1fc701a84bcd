package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gosimplify/version"
	"github.com/spf13/cobra"
)

var weldTolerance float64

var rootCmd = &cobra.Command{
	Use:   "gosimplify",
	Short: "Inspect triangle mesh topology and closest-point queries",
	Long: `gosimplify builds half-edge connectivity for OBJ, STL and OpenSCAD meshes.
It classifies every edge as boundary, manifold or non-manifold, and projects
points onto triangles through their Voronoi regions.`,
	Version: version.GetFullVersion(),
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&weldTolerance, "tolerance", 0, "Distance below which STL corners are merged (0 merges exact duplicates)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
