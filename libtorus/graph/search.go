package graph

// Reach returns the vertex set of the component containing u.
func (X *Graph) Reach(u int) Set {
	seen := Single(u)
	frontier := seen
	for frontier != 0 {
		var next Set
		frontier.ForEach(func(v int) {
			next |= X.adj[v]
		})
		frontier = next &^ seen
		seen |= frontier
	}
	return seen
}

// Components returns the connected components of X, ordered by smallest vertex.
func (X *Graph) Components() []Graph {
	var comps []Graph
	remain := X.nodes
	for remain != 0 {
		c := X.Reach(remain.Min())
		comps = append(comps, X.Induced(c))
		remain &^= c
	}
	return comps
}

func (X *Graph) ComponentCount() int {
	count := 0
	remain := X.nodes
	for remain != 0 {
		remain &^= X.Reach(remain.Min())
		count++
	}
	return count
}

// IsConnected returns true if X has at most one component.
func (X *Graph) IsConnected() bool {
	if X.nodes == 0 {
		return true
	}
	return X.Reach(X.nodes.Min()) == X.nodes
}

// IsForest returns true if X has no cycle.
func (X *Graph) IsForest() bool {
	return X.EdgeCount()+X.ComponentCount() == X.NodeCount()
}

// SpanningTree returns a breadth-first spanning forest of X.
func (X *Graph) SpanningTree() Graph {
	var T Graph
	T.nodes = X.nodes
	remain := X.nodes
	for remain != 0 {
		root := remain.Min()
		seen := Single(root)
		frontier := seen
		for frontier != 0 {
			var next Set
			frontier.ForEach(func(v int) {
				(X.adj[v] &^ seen &^ next).ForEach(func(w int) {
					T.AddEdge(v, w)
					next |= Single(w)
				})
			})
			seen |= next
			frontier = next
		}
		remain &^= seen
	}
	return T
}

// Cycle returns some cycle of X as a subgraph, or false if X is a forest.
func (X *Graph) Cycle() (Graph, bool) {
	var parent [MaxNodes]int
	var visited Set

	var found []int
	var visit func(u, from int) bool
	visit = func(u, from int) bool {
		visited |= Single(u)
		parent[u] = from
		hit := false
		X.adj[u].ForEach(func(v int) {
			if hit || v == from {
				return
			}
			if visited.Has(v) {
				// v is an ancestor of u; walk back up the tree
				found = append(found, u)
				for w := u; w != v; {
					w = parent[w]
					found = append(found, w)
				}
				hit = true
				return
			}
			hit = visit(v, u)
		})
		return hit
	}

	remain := X.nodes
	for remain != 0 {
		root := remain.Min()
		if visit(root, -1) {
			found = append(found, found[0])
			return FromPath(found), true
		}
		remain &^= visited
	}
	return Graph{}, false
}

// Path returns a depth-first path from start to the first vertex of targets it reaches.
// The path's interior avoids targets.  Neighbors are explored in ascending order.
func (X *Graph) Path(start int, targets Set) ([]int, bool) {
	targets = targets.Without(start)
	visited := Single(start)
	path := []int{start}

	var visit func(u int) bool
	visit = func(u int) bool {
		for nbrs := X.adj[u] &^ visited; nbrs != 0; nbrs = X.adj[u] &^ visited {
			v := nbrs.Min()
			visited |= Single(v)
			path = append(path, v)
			if targets.Has(v) || visit(v) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}

	if visit(start) {
		return path, true
	}
	return nil, false
}
