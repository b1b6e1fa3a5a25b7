package embedding

import "github.com/2x3systems/gotorus/libtorus/graph"

// HalfEdge is the directed use of edge U-V leaving U.
type HalfEdge struct {
	U, V int
}

// Face is identified by one of its boundary half-edges.  Its boundary walk is traced on demand.
type Face struct {
	U0, V0 int
}

// Embedding is a rotation system: for each vertex, a cyclic order of its neighbors.
//
// The cyclic order around u is kept as mutually inverse successor / predecessor maps,
// next[u][v] and prev[u][v], defined for each neighbor v of u.  Like graph.Graph, an
// Embedding is a fixed-size value and copying one is the intended way to branch a search.
type Embedding struct {
	nodes graph.Set
	edges [graph.MaxNodes]graph.Set
	next  [graph.MaxNodes][graph.MaxNodes]uint8
	prev  [graph.MaxNodes][graph.MaxNodes]uint8
}
