package embedding

import (
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/soniakeys/bits"
)

// Walk returns the boundary of f as the sequence of half-edges traced from f's starting half-edge.
// Arriving at v from u, the walk continues along the neighbor following u in v's rotation.
func (e *Embedding) Walk(f Face) []HalfEdge {
	walk := make([]HalfEdge, 0, 8)
	u, v := f.U0, f.V0
	for {
		walk = append(walk, HalfEdge{u, v})
		u, v = v, e.After(v, u)
		if u == f.U0 && v == f.V0 {
			break
		}
		if len(walk) > 2*graph.MaxNodes*graph.MaxNodes {
			panic("embedding: face walk does not close")
		}
	}
	return walk
}

// FaceNodes returns the vertices on the boundary of f.
func (e *Embedding) FaceNodes(f Face) graph.Set {
	var nodes graph.Set
	for _, h := range e.Walk(f) {
		nodes |= graph.Single(h.U)
	}
	return nodes
}

// Faces returns every face exactly once, each starting from the smallest half-edge
// not consumed by a face returned before it.
func (e *Embedding) Faces() []Face {
	const N = graph.MaxNodes

	var faces []Face
	used := bits.New(N * N)
	e.nodes.ForEach(func(u int) {
		e.edges[u].ForEach(func(v int) {
			if used.Bit(u*N+v) != 0 {
				return
			}
			f := Face{u, v}
			for _, h := range e.Walk(f) {
				used.SetBit(h.U*N+h.V, 1)
			}
			faces = append(faces, f)
		})
	})
	return faces
}

// FaceCount returns the number of faces, counting at least one.
func (e *Embedding) FaceCount() int {
	if n := len(e.Faces()); n > 1 {
		return n
	}
	return 1
}

// Genus returns the total genus of the surfaces the rotation system embeds its components in,
// from V - E + F = 2c - 2g.  An isolated vertex contributes one face.
func (e *Embedding) Genus() int {
	X := e.Graph()
	V := X.NodeCount()
	if V == 0 {
		return 0
	}
	F := len(e.Faces())
	X.Nodes().ForEach(func(u int) {
		if X.Degree(u) == 0 {
			F++
		}
	})
	return (2*X.ComponentCount() + X.EdgeCount() - V - F) / 2
}
