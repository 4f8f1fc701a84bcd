package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/philipparndt/gosimplify/internal/loader"
	"github.com/philipparndt/gosimplify/pkg/analysis"
	"github.com/philipparndt/gosimplify/pkg/watcher"
	"github.com/spf13/cobra"
)

var infoWatch bool

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a mesh file",
	Long:  "Show vertex and triangle counts, bounds, surface area, edge statistics, loader warnings and edge topology.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVarP(&infoWatch, "watch", "w", false, "Print the report again whenever the file changes")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loaded, err := printInfo(ctx, filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}
	if !infoWatch {
		return
	}

	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file watcher: %v\n", err)
		os.Exit(1)
	}
	fw.OnError = func(err error) {
		fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
	}

	reload := func(changed string) {
		fmt.Printf("\nFile changed: %s\n\n", changed)
		if _, err := printInfo(ctx, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		}
	}
	if err := fw.Watch(loaded.Sources, reload); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching files: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nWatching %d file(s) for changes, press Ctrl+C to stop\n", len(loaded.Sources))
	if err := fw.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching files: %v\n", err)
		os.Exit(1)
	}
}

func printInfo(ctx context.Context, filename string) (*loader.Loaded, error) {
	loaded, err := loader.Load(ctx, filename, weldTolerance)
	if err != nil {
		return nil, err
	}
	result, err := analysis.AnalyzeMesh(loaded.Mesh)
	if err != nil {
		return nil, err
	}

	fmt.Println("Mesh Information")
	fmt.Println("================")
	if loaded.Mesh.Name != "" {
		fmt.Printf("Name: %s\n", loaded.Mesh.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Vertices: %d (%d unused)\n", result.VertexCount, result.IsolatedVertices)
	fmt.Printf("  Triangles: %d (%d degenerate)\n", result.TriangleCount, result.DegenerateTriangles)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	if !result.BoundingBox.IsEmpty() {
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Printf("  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
		fmt.Printf("  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())
	}

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n\n", result.AvgEdgeLength)

	fmt.Println("Topology:")
	fmt.Printf("  %s\n", result.Topology)
	if result.Topology.Misoriented > 0 {
		fmt.Printf("  Inconsistently oriented edges: %d\n", result.Topology.Misoriented)
	}
	if result.Topology.IsClosed() {
		fmt.Println("  The mesh is closed.")
	}

	if len(loaded.Warnings) > 0 {
		fmt.Printf("\nLoader Warnings (%d):\n", len(loaded.Warnings))
		for _, w := range loaded.Warnings {
			fmt.Printf("  %s\n", w)
		}
	}

	return loaded, nil
}
