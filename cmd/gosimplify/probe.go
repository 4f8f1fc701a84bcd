package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/philipparndt/gosimplify/pkg/geometry"
	"github.com/philipparndt/gosimplify/pkg/probe"
	"github.com/spf13/cobra"
)

var (
	probeOutput   string
	probeRadius   float64
	probeRings    int
	probeSegments int
	probeWorkers  int

	probeA, probeB, probeC []float64
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Dump closest point probes around a triangle as OBJ lines",
	Long: `Sample points on a sphere around the triangle's centroid, project each
onto the triangle and write one line segment per sample plus the triangle
itself to an OBJ file for inspection in a viewer.`,
	Args: cobra.NoArgs,
	Run:  runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)

	probeCmd.Flags().StringVarP(&probeOutput, "output", "o", "probe.obj", "OBJ file to write")
	probeCmd.Flags().Float64Var(&probeRadius, "radius", 2, "Sphere radius")
	probeCmd.Flags().IntVar(&probeRings, "rings", 16, "Number of latitude rings")
	probeCmd.Flags().IntVar(&probeSegments, "segments", 32, "Number of points per ring")
	probeCmd.Flags().IntVarP(&probeWorkers, "workers", "j", runtime.NumCPU(), "Number of goroutines")
	probeCmd.Flags().Float64SliceVar(&probeA, "a", []float64{0, 0, 0}, "Corner A as x,y,z")
	probeCmd.Flags().Float64SliceVar(&probeB, "b", []float64{1, 0, 0}, "Corner B as x,y,z")
	probeCmd.Flags().Float64SliceVar(&probeC, "c", []float64{0, 1, 0}, "Corner C as x,y,z")
}

func runProbe(cmd *cobra.Command, args []string) {
	tri, err := triangleFlags(probeA, probeB, probeC)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	queries, err := probe.SpherePoints(tri.Center(), probeRadius, probeRings, probeSegments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	samples := probe.Sweep(tri, queries, probeWorkers)

	file, err := os.Create(probeOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	if err := probe.Dump(file, tri, samples); err != nil {
		file.Close()
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", probeOutput, err)
		os.Exit(1)
	}
	if err := file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", probeOutput, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d probes to %s\n", len(samples), probeOutput)
	counts := probe.RegionCounts(samples)
	for _, r := range []geometry.Region{
		geometry.RegionInterior,
		geometry.RegionEdgeAB, geometry.RegionEdgeBC, geometry.RegionEdgeCA,
		geometry.RegionVertexA, geometry.RegionVertexB, geometry.RegionVertexC,
	} {
		fmt.Printf("  %-9s %d\n", r.String()+":", counts[r])
	}
}
