package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gosimplify/internal/loader"
	"github.com/philipparndt/gosimplify/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	edgesCount    int
	edgesKind     string
	edgesLongest  bool
	edgesShortest bool
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "List the undirected edges of a mesh",
	Long:  "List edges with their endpoints, length and topology, optionally filtered by kind or sorted by length.",
	Args:  cobra.ExactArgs(1),
	Run:   runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().StringVarP(&edgesKind, "kind", "k", "", "Only show edges of this kind (boundary, manifold, non-manifold)")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
	edgesCmd.MarkFlagsMutuallyExclusive("longest", "shortest")
}

func runEdges(cmd *cobra.Command, args []string) {
	filename := args[0]

	if edgesCount < 0 {
		fmt.Fprintf(os.Stderr, "Error: --count must not be negative, got %d\n", edgesCount)
		os.Exit(1)
	}

	loaded, err := loader.Load(cmd.Context(), filename, weldTolerance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	result, err := analysis.AnalyzeMesh(loaded.Mesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing mesh: %v\n", err)
		os.Exit(1)
	}

	// narrow the result to one kind so the length queries below apply to it
	if edgesKind != "" {
		kind, err := analysis.ParseKind(edgesKind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filtered := *result
		filtered.AllEdges = analysis.FindEdgesByKind(result, kind)
		result = &filtered
	}

	var edges []analysis.EdgeInfo
	var title string

	if edgesLongest {
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	} else if edgesShortest {
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	} else {
		edges = result.AllEdges
		title = fmt.Sprintf("Edges (showing %d of %d)", min(edgesCount, len(edges)), len(edges))
		if len(edges) > edgesCount {
			edges = edges[:edgesCount]
		}
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total edges in mesh: %d\n", result.EdgeCount)
	fmt.Printf("%s\n\n", result.Topology)

	if len(edges) == 0 {
		fmt.Println("No edges found matching the criteria.")
		return
	}

	fmt.Printf("%-6s %-13s %-35s %-35s %-15s %s\n", "Index", "Vertices", "Start", "End", "Length", "Kind")
	fmt.Println("--------------------------------------------------------------------------------------------------------------------------")
	for i, edge := range edges {
		fmt.Printf("%-6d %-13s %-35s %-35s %-15.6f %s (%d faces)\n",
			i+1,
			fmt.Sprintf("%d-%d", edge.Lower, edge.Higher),
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length,
			edge.Kind,
			len(edge.Faces))
	}
}
