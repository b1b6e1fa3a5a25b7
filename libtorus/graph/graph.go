package graph

import "strings"

// New returns a graph with isolated vertices 0..n-1.
func New(n int) Graph {
	return Graph{
		nodes: Range(n),
	}
}

// Complete returns K_n over vertices 0..n-1.
func Complete(n int) Graph {
	X := New(n)
	for u := 0; u < n; u++ {
		X.adj[u] = X.nodes.Without(u)
	}
	return X
}

// CompleteBipartite returns K_{a,b} with parts {0..a-1} and {a..a+b-1}.
func CompleteBipartite(a, b int) Graph {
	X := New(a + b)
	left := Range(a)
	right := Range(a+b) &^ left
	for u := 0; u < a+b; u++ {
		if left.Has(u) {
			X.adj[u] = right
		} else {
			X.adj[u] = left
		}
	}
	return X
}

// FromEdges returns the graph formed by the given edges and their end vertices.
func FromEdges(edges ...Edge) Graph {
	var X Graph
	for _, e := range edges {
		X.AddEdge(e.U, e.V)
	}
	return X
}

// FromPath returns the graph formed by the consecutive edges of path.
func FromPath(path []int) Graph {
	var X Graph
	for i, u := range path {
		X.AddNode(u)
		if i > 0 {
			X.AddEdge(path[i-1], u)
		}
	}
	return X
}

func (X *Graph) AddNode(u int) {
	X.nodes |= Single(u)
}

// DelNode removes u and every edge incident to u.
func (X *Graph) DelNode(u int) {
	X.adj[u].ForEach(func(v int) {
		X.adj[v] &^= Single(u)
	})
	X.adj[u] = 0
	X.nodes &^= Single(u)
}

func (X *Graph) HasNode(u int) bool {
	return X.nodes.Has(u)
}

// AddEdge adds edge u-v, adding u and v as vertices if needed.
func (X *Graph) AddEdge(u, v int) {
	if u == v {
		panic("graph: self-loop")
	}
	X.nodes |= Single(u) | Single(v)
	X.adj[u] |= Single(v)
	X.adj[v] |= Single(u)
}

// AddEdges adds an edge from u to each vertex in vs.
func (X *Graph) AddEdges(u int, vs Set) {
	vs.ForEach(func(v int) {
		X.AddEdge(u, v)
	})
}

func (X *Graph) DelEdge(u, v int) {
	X.adj[u] &^= Single(v)
	X.adj[v] &^= Single(u)
}

func (X *Graph) HasEdge(u, v int) bool {
	return X.adj[u].Has(v)
}

func (X *Graph) Nodes() Set {
	return X.nodes
}

func (X *Graph) Neighbors(u int) Set {
	return X.adj[u]
}

func (X *Graph) Degree(u int) int {
	return X.adj[u].Count()
}

// MinDegree returns the smallest vertex degree, or 0 for the empty graph.
func (X *Graph) MinDegree() int {
	lo := -1
	X.nodes.ForEach(func(u int) {
		if d := X.adj[u].Count(); lo < 0 || d < lo {
			lo = d
		}
	})
	if lo < 0 {
		return 0
	}
	return lo
}

func (X *Graph) NodeCount() int {
	return X.nodes.Count()
}

func (X *Graph) EdgeCount() int {
	ends := 0
	X.nodes.ForEach(func(u int) {
		ends += X.adj[u].Count()
	})
	return ends / 2
}

func (X *Graph) IsEmpty() bool {
	return X.nodes == 0
}

// Edges returns every edge with U < V, sorted by U then V.
func (X *Graph) Edges() []Edge {
	edges := make([]Edge, 0, 8)
	X.nodes.ForEach(func(u int) {
		(X.adj[u] &^ Range(u+1)).ForEach(func(v int) {
			edges = append(edges, Edge{u, v})
		})
	})
	return edges
}

// Induced returns the subgraph induced by the vertices of X in s.
func (X *Graph) Induced(s Set) Graph {
	var Y Graph
	Y.nodes = X.nodes & s
	Y.nodes.ForEach(func(u int) {
		Y.adj[u] = X.adj[u] & Y.nodes
	})
	return Y
}

// Neighbouring returns the subgraph of every edge with at least one end in s.
func (X *Graph) Neighbouring(s Set) Graph {
	var Y Graph
	(X.nodes & s).ForEach(func(u int) {
		X.adj[u].ForEach(func(v int) {
			Y.AddEdge(u, v)
		})
	})
	return Y
}

// BipartiteSplit returns the subgraph of every edge with one end in a and the other in b.
func (X *Graph) BipartiteSplit(a, b Set) Graph {
	var Y Graph
	(X.nodes & a).ForEach(func(u int) {
		(X.adj[u] & b).ForEach(func(v int) {
			Y.AddEdge(u, v)
		})
	})
	return Y
}

// Union adds the vertices and edges of Y to X.
func (X *Graph) Union(Y *Graph) {
	X.nodes |= Y.nodes
	Y.nodes.ForEach(func(u int) {
		X.adj[u] |= Y.adj[u]
	})
}

// Difference removes the edges of Y from X.  Vertices are kept.
func (X *Graph) Difference(Y *Graph) {
	Y.nodes.ForEach(func(u int) {
		X.adj[u] &^= Y.adj[u]
	})
}

// MergeNodes replaces v by u: every neighbor of v becomes a neighbor of u and v is removed.
// A u-v edge vanishes rather than becoming a loop.
func (X *Graph) MergeNodes(u, v int) {
	nbrs := X.adj[v].Without(u)
	X.DelNode(v)
	nbrs.ForEach(func(w int) {
		X.AddEdge(u, w)
	})
}

// ContractEdge contracts edge u-v into vertex u.
func (X *Graph) ContractEdge(u, v int) {
	X.MergeNodes(u, v)
}

// WithoutIsolated returns X less its vertices of degree 0.
func (X *Graph) WithoutIsolated() Graph {
	Y := *X
	X.nodes.ForEach(func(u int) {
		if X.adj[u] == 0 {
			Y.nodes &^= Single(u)
		}
	})
	return Y
}

// Minors returns every single vertex deletion, edge deletion and edge contraction of X.
func (X *Graph) Minors() []Graph {
	minors := X.Subgraphs()
	for _, e := range X.Edges() {
		Y := *X
		Y.ContractEdge(e.U, e.V)
		minors = append(minors, Y)
	}
	return minors
}

// Subgraphs returns every single vertex deletion and edge deletion of X.
func (X *Graph) Subgraphs() []Graph {
	edges := X.Edges()
	subs := make([]Graph, 0, X.NodeCount()+len(edges))
	X.nodes.ForEach(func(u int) {
		Y := *X
		Y.DelNode(u)
		subs = append(subs, Y)
	})
	for _, e := range edges {
		Y := *X
		Y.DelEdge(e.U, e.V)
		subs = append(subs, Y)
	}
	return subs
}

func (X *Graph) String() string {
	b := strings.Builder{}
	b.WriteString(X.nodes.String())
	b.WriteByte(' ')
	b.WriteByte('[')
	for i, e := range X.Edges() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}
