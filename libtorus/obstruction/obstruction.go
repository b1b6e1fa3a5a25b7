// Package obstruction tests and searches for torus obstructions: graphs that do not embed in
// the torus while every proper subgraph (or minor) does.
package obstruction

import (
	"context"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/2x3systems/gotorus/libtorus/toroidal"
)

// Checker answers obstruction queries with a fixed set of embedder options.
type Checker struct {
	Ctx  context.Context
	Opts gotorus.EmbedOpts
}

// DefaultChecker uses gotorus.DefaultEmbedOpts and never cancels.
var DefaultChecker = Checker{
	Ctx:  context.Background(),
	Opts: gotorus.DefaultEmbedOpts,
}

func (c Checker) toroidal(X *graph.Graph) (bool, error) {
	_, ok, err := toroidal.FindEmbeddingContext(c.Ctx, X, c.Opts)
	return ok, err
}

// IsObstruction returns true if X has minimum degree 3, does not embed in the torus, and
// every single vertex or edge deletion of X does.
func (c Checker) IsObstruction(X *graph.Graph) (bool, error) {
	if X.MinDegree() < 3 {
		return false, nil
	}
	if ok, err := c.toroidal(X); ok || err != nil {
		return false, err
	}
	for _, Y := range X.Subgraphs() {
		if ok, err := c.toroidal(&Y); !ok || err != nil {
			return false, err
		}
	}
	return true, nil
}

// IsMinorObstruction returns true if X is an obstruction and every edge contraction of X embeds in the torus.
func (c Checker) IsMinorObstruction(X *graph.Graph) (bool, error) {
	if ok, err := c.IsObstruction(X); !ok || err != nil {
		return false, err
	}
	for _, e := range X.Edges() {
		Y := *X
		Y.ContractEdge(e.U, e.V)
		if ok, err := c.toroidal(&Y); !ok || err != nil {
			return false, err
		}
	}
	return true, nil
}

// Minimize shrinks a graph with no torus embedding to a minor-minimal one by repeatedly taking
// the first vertex deletion, edge deletion or edge contraction that still does not embed.
// It returns false if X embeds in the torus.
func (c Checker) Minimize(X *graph.Graph) (graph.Graph, bool, error) {
	if ok, err := c.toroidal(X); ok || err != nil {
		return graph.Graph{}, false, err
	}
	cur := X.WithoutIsolated()
	for {
		shrunk := false
		for _, M := range cur.Minors() {
			ok, err := c.toroidal(&M)
			if err != nil {
				return graph.Graph{}, false, err
			}
			if !ok {
				cur = M.WithoutIsolated()
				shrunk = true
				break
			}
		}
		if !shrunk {
			return cur, true, nil
		}
	}
}

// IsObstruction calls DefaultChecker.IsObstruction.
func IsObstruction(X *graph.Graph) bool {
	ok, _ := DefaultChecker.IsObstruction(X)
	return ok
}

// IsMinorObstruction calls DefaultChecker.IsMinorObstruction.
func IsMinorObstruction(X *graph.Graph) bool {
	ok, _ := DefaultChecker.IsMinorObstruction(X)
	return ok
}
