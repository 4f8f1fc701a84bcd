package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/philipparndt/gosimplify/internal/loader"
	"github.com/philipparndt/gosimplify/pkg/simplify"
	"github.com/spf13/cobra"
)

var (
	simplifyStrict  bool
	simplifyWorkers int
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [file]",
	Short: "Run the simplification entry point on a mesh file",
	Long: `Validate the mesh buffers, build the half-edge connectivity and report the
edge topology on stderr. With --strict, non-manifold edges make the command fail.`,
	Args: cobra.ExactArgs(1),
	Run:  runSimplify,
}

func init() {
	rootCmd.AddCommand(simplifyCmd)

	simplifyCmd.Flags().BoolVar(&simplifyStrict, "strict", false, "Fail when an edge is shared by more than two triangles")
	simplifyCmd.Flags().IntVarP(&simplifyWorkers, "workers", "j", runtime.NumCPU(), "Number of goroutines used for edge classification")
}

func runSimplify(cmd *cobra.Command, args []string) {
	filename := args[0]

	loaded, err := loader.Load(cmd.Context(), filename, weldTolerance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}
	for _, w := range loaded.Warnings {
		fmt.Fprintln(os.Stderr, w)
	}

	res, err := simplify.SimplifyMesh(loaded.Mesh, simplify.Options{
		Diagnostics:     os.Stderr,
		Workers:         simplifyWorkers,
		RequireManifold: simplifyStrict,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error simplifying %s: %v\n", filename, err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d vertices, %d triangles, %d half-edges\n",
		filename, res.Positions.Len(), res.Topology.TriangleCount(), len(res.Topology.HalfEdges))
}
