package graph

import "github.com/2x3systems/gotorus/gotorus"

// MaxNodes is the vertex capacity of a Graph.
const MaxNodes = gotorus.MaxVertices

// Set is a set of vertex IDs, one bit per vertex.
type Set uint64

// Edge is an undirected edge, normally with U < V.
type Edge struct {
	U, V int
}

// Graph is a simple undirected graph over vertex IDs 0..MaxNodes-1.
//
// Graph is a value type: assignment copies it, so callers snapshot a graph with
// Y := X and mutate either one independently.  An edge is only ever present between
// two present vertices.
type Graph struct {
	nodes Set
	adj   [MaxNodes]Set
}
