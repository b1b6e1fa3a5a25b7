package embedding

import (
	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/pkg/errors"
)

// Simple returns an embedding of X in which each vertex lists its neighbors in ascending cyclic order.
func Simple(X *graph.Graph) Embedding {
	var e Embedding
	e.nodes = X.Nodes()
	e.nodes.ForEach(func(u int) {
		nbrs := X.Neighbors(u)
		e.edges[u] = nbrs
		if nbrs.IsEmpty() {
			return
		}
		first := nbrs.Min()
		last := first
		nbrs.Without(first).ForEach(func(v int) {
			e.link(u, last, v)
			last = v
		})
		e.link(u, last, first)
	})
	return e
}

// link makes w the successor of v around u.
func (e *Embedding) link(u, v, w int) {
	e.next[u][v] = uint8(w)
	e.prev[u][w] = uint8(v)
}

// Graph returns the embedded graph.
func (e *Embedding) Graph() graph.Graph {
	var X graph.Graph
	e.nodes.ForEach(func(u int) {
		X.AddNode(u)
		e.edges[u].ForEach(func(v int) {
			X.AddEdge(u, v)
		})
	})
	return X
}

func (e *Embedding) Nodes() graph.Set {
	return e.nodes
}

func (e *Embedding) Neighbors(u int) graph.Set {
	return e.edges[u]
}

// After returns the neighbor following v in the rotation at u.
func (e *Embedding) After(u, v int) int {
	return int(e.next[u][v])
}

// Before returns the neighbor preceding v in the rotation at u.
func (e *Embedding) Before(u, v int) int {
	return int(e.prev[u][v])
}

// Rotation returns the cyclic neighbor order at u, starting from its smallest neighbor.
func (e *Embedding) Rotation(u int) []int {
	nbrs := e.edges[u]
	if nbrs.IsEmpty() {
		return nil
	}
	out := make([]int, 0, nbrs.Count())
	first := nbrs.Min()
	for v := first; ; {
		out = append(out, v)
		v = e.After(u, v)
		if v == first || len(out) > graph.MaxNodes {
			break
		}
	}
	return out
}

// InsertEdge places dest directly after the neighbor after in the rotation at node.
// If node has no neighbors yet, pass after == dest.
func (e *Embedding) InsertEdge(node, after, dest int) {
	e.nodes |= graph.Single(node) | graph.Single(dest)
	e.edges[node] |= graph.Single(dest)
	k := int(e.next[node][after])
	if after == dest {
		k = dest
	}
	e.link(node, dest, k)
	e.link(node, after, dest)
}

// InsertEdgeAny places dest after the smallest neighbor of node.
func (e *Embedding) InsertEdgeAny(node, dest int) {
	if nbrs := e.edges[node]; !nbrs.IsEmpty() {
		e.InsertEdge(node, nbrs.Min(), dest)
	} else {
		e.InsertEdge(node, dest, dest)
	}
}

// RemoveEdgeDir unlinks v from the rotation at u.  A vertex left without neighbors is removed.
func (e *Embedding) RemoveEdgeDir(u, v int) {
	e.edges[u] &^= graph.Single(v)
	if e.edges[u].IsEmpty() {
		e.nodes &^= graph.Single(u)
	}
	before := int(e.prev[u][v])
	after := int(e.next[u][v])
	e.link(u, before, after)
}

// RemoveEdge undoes EmbedFreeEdge, or InsertEdge on both ends, except that an end left
// without neighbors is dropped from Nodes even if it was an isolated vertex before.
func (e *Embedding) RemoveEdge(u, v int) {
	e.RemoveEdgeDir(u, v)
	e.RemoveEdgeDir(v, u)
}

// RemoveNode removes u and every edge incident to it.
func (e *Embedding) RemoveNode(u int) {
	e.edges[u].ForEach(func(v int) {
		e.RemoveEdge(u, v)
	})
	e.nodes &^= graph.Single(u)
}

// EmbedFreeEdge adds edge u-v at an arbitrary position in both rotations.
func (e *Embedding) EmbedFreeEdge(u, v int) {
	e.InsertEdgeAny(u, v)
	e.InsertEdgeAny(v, u)
}

// EmbedEdgeAfter adds edge u-v with v following uAfter at u and u following vAfter at v.
func (e *Embedding) EmbedEdgeAfter(u, uAfter, v, vAfter int) {
	e.InsertEdge(u, uAfter, v)
	e.InsertEdge(v, vAfter, u)
}

// EmbedBisectingPath inserts path through face f, whose boundary holds both path ends,
// using the first boundary occurrence of each end.  It returns the two faces f splits into.
func (e *Embedding) EmbedBisectingPath(f Face, path []int) [2]Face {
	start := path[0]
	end := path[len(path)-1]
	startU, endU := -1, -1
	for _, h := range e.Walk(f) {
		if startU < 0 && h.U == start {
			startU = h.V
		}
		if endU < 0 && h.V == end {
			endU = h.U
		}
	}
	return e.EmbedBisectingPathAfter(path, startU, endU)
}

// EmbedBisectingPathAfter inserts path so that it leaves its start vertex just before the
// boundary half-edge start->startU and enters its end vertex just after endU->end.
// Interior path vertices must be new to the embedding.
func (e *Embedding) EmbedBisectingPathAfter(path []int, startU, endU int) [2]Face {
	n := len(path)
	start, startSnd := path[0], path[1]
	end, endSnd := path[n-1], path[n-2]

	e.InsertEdge(start, e.Before(start, startU), startSnd)
	e.InsertEdge(end, endU, endSnd)
	if startSnd != end {
		e.InsertEdgeAny(startSnd, start)
		e.InsertEdgeAny(endSnd, end)
	}
	for i := 1; i+2 < n; i++ {
		e.EmbedFreeEdge(path[i], path[i+1])
	}

	return [2]Face{
		{start, startSnd},
		{startSnd, start},
	}
}

// EmbedDisconnected adds the rotations of other, which must share no vertex with e.
func (e *Embedding) EmbedDisconnected(other *Embedding) {
	e.nodes |= other.nodes
	other.nodes.ForEach(func(u int) {
		e.edges[u] = other.edges[u]
		e.next[u] = other.next[u]
		e.prev[u] = other.prev[u]
	})
}

// Validate checks that the rotations are consistent with each other and the vertex set.
func (e *Embedding) Validate() error {
	var err error
	e.nodes.ForEach(func(u int) {
		if err != nil {
			return
		}
		nbrs := e.edges[u]
		if !e.nodes.Contains(nbrs) {
			err = errors.Wrapf(gotorus.ErrInvariantViolation, "vertex %d has neighbors %v outside the vertex set", u, nbrs.Minus(e.nodes))
			return
		}
		var seen graph.Set
		nbrs.ForEach(func(v int) {
			if err != nil {
				return
			}
			switch {
			case !e.edges[v].Has(u):
				err = errors.Wrapf(gotorus.ErrInvariantViolation, "edge %d-%d is one-sided", u, v)
			case !nbrs.Has(e.After(u, v)):
				err = errors.Wrapf(gotorus.ErrInvariantViolation, "rotation at %d leaves its neighbors after %d", u, v)
			case e.Before(u, e.After(u, v)) != v:
				err = errors.Wrapf(gotorus.ErrInvariantViolation, "next/prev at %d disagree after %d", u, v)
			}
		})
		if err != nil || nbrs.IsEmpty() {
			return
		}
		for v := nbrs.Min(); !seen.Has(v); v = e.After(u, v) {
			seen |= graph.Single(v)
		}
		if seen != nbrs {
			err = errors.Wrapf(gotorus.ErrInvariantViolation, "rotation at %d is not a single cycle", u)
		}
	})
	return err
}
