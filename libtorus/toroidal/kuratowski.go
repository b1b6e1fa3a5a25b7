package toroidal

import (
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/2x3systems/gotorus/libtorus/planar"
)

// FindKuratowski returns an edge-minimal non-planar subgraph of X with its isolated vertices
// dropped, or false if X is planar.  Removing any edge of the result makes it planar.
func FindKuratowski(X *graph.Graph) (graph.Graph, bool) {
	var H graph.Graph
	found := false
	for _, C := range X.Components() {
		if !planar.IsPlanar(&C) {
			H, found = C, true
			break
		}
	}
	if !found {
		return graph.Graph{}, false
	}

	for _, e := range H.Edges() {
		H.DelEdge(e.U, e.V)
		if planar.IsPlanar(&H) {
			H.AddEdge(e.U, e.V)
		}
	}
	return H.WithoutIsolated(), true
}
