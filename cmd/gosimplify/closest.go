package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gosimplify/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	closestA, closestB, closestC []float64
	closestP                     []float64
)

var closestCmd = &cobra.Command{
	Use:   "closest",
	Short: "Find the closest point on a triangle",
	Long: `Project a point onto the triangle ABC and print the closest point, the
Voronoi region it was found in and its barycentric weights.`,
	Args: cobra.NoArgs,
	Run:  runClosest,
}

func init() {
	rootCmd.AddCommand(closestCmd)

	closestCmd.Flags().Float64SliceVar(&closestA, "a", []float64{0, 0, 0}, "Corner A as x,y,z")
	closestCmd.Flags().Float64SliceVar(&closestB, "b", []float64{1, 0, 0}, "Corner B as x,y,z")
	closestCmd.Flags().Float64SliceVar(&closestC, "c", []float64{0, 1, 0}, "Corner C as x,y,z")
	closestCmd.Flags().Float64SliceVar(&closestP, "p", nil, "Query point as x,y,z")
	closestCmd.MarkFlagRequired("p")
}

func runClosest(cmd *cobra.Command, args []string) {
	tri, err := triangleFlags(closestA, closestB, closestC)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	p, err := toVector("p", closestP)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res := tri.ClosestPoint(p)

	fmt.Println("Closest Point")
	fmt.Println("=============")
	fmt.Printf("Query:    %s\n", analysis.FormatVector(p))
	fmt.Printf("Closest:  %s\n", analysis.FormatVector(res.Point))
	fmt.Printf("Region:   %s\n", res.Region)
	fmt.Printf("Weights:  A=%.6f B=%.6f C=%.6f\n", res.Weights.A, res.Weights.B, res.Weights.C)
	fmt.Printf("Distance: %.6f units\n", res.Distance(p))
	if tri.IsDegenerate() {
		fmt.Println("Note: the triangle has zero area, the nearest edge was used")
	}
}
