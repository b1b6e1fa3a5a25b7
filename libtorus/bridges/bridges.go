package bridges

import "github.com/2x3systems/gotorus/libtorus/graph"

// Bridge is a piece of G that must be placed inside a single face of an embedded subgraph H:
// either a chord (an edge of G joining two vertices of H) or a component of G - H together
// with its edges to H.
type Bridge struct {
	Graph  graph.Graph
	Attach graph.Set // vertices shared with H
}

// Compute returns the bridges of G relative to its subgraph H: chords first, then the
// components of G - H ordered by smallest vertex.
func Compute(G, H *graph.Graph) []Bridge {
	inH := H.Nodes()

	var out []Bridge
	for _, e := range G.Edges() {
		if inH.Has(e.U) && inH.Has(e.V) && !H.HasEdge(e.U, e.V) {
			out = append(out, Bridge{
				Graph:  graph.FromEdges(e),
				Attach: graph.SetOf(e.U, e.V),
			})
		}
	}

	rest := G.Induced(G.Nodes() &^ inH)
	for _, C := range rest.Components() {
		feet := G.BipartiteSplit(C.Nodes(), inH)
		C.Union(&feet)
		out = append(out, Bridge{
			Graph:  C,
			Attach: C.Nodes() & inH,
		})
	}
	return out
}

// Merged returns the bridge graph with all its attachment vertices identified into one.
func (b *Bridge) Merged() graph.Graph {
	X := b.Graph
	root := b.Attach.Min()
	b.Attach.Without(root).ForEach(func(v int) {
		X.MergeNodes(root, v)
	})
	return X
}
