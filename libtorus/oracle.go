// Package libtorus ties the embedders together: an Oracle answering embedding queries and a
// GraphStream pipeline that classifies, catalogs and prints graphs.
package libtorus

import (
	"context"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/embedding"
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/2x3systems/gotorus/libtorus/graph6"
	"github.com/2x3systems/gotorus/libtorus/planar"
	"github.com/2x3systems/gotorus/libtorus/toroidal"
)

// Oracle answers embedding queries for graphs of up to gotorus.MaxVertices vertices.
//
// A graph with no embedding of the requested genus is a normal outcome (ok == false), not an error.
type Oracle interface {

	// FindPlanarEmbedding returns a genus 0 embedding of X, or false if X is not planar.
	FindPlanarEmbedding(X *graph.Graph) (e *embedding.Embedding, ok bool, err error)

	// FindToroidalEmbedding returns an embedding of X of genus <= 1, or false if X does not embed in the torus.
	FindToroidalEmbedding(ctx context.Context, X *graph.Graph) (e *embedding.Embedding, ok bool, err error)

	// FindKuratowskiCertificate returns a subdivision of K5 or K3,3 contained in X, or false if X is planar.
	FindKuratowskiCertificate(X *graph.Graph) (H graph.Graph, ok bool)

	// Classify returns the smallest genus X embeds in along with an embedding of that genus.
	Classify(ctx context.Context, X *graph.Graph) (gotorus.Classification, *embedding.Embedding, error)
}

// NewOracle returns an Oracle using the given embedder options.
func NewOracle(opts gotorus.EmbedOpts) Oracle {
	return &oracle{
		opts: opts,
	}
}

type oracle struct {
	opts gotorus.EmbedOpts
}

func (o *oracle) FindPlanarEmbedding(X *graph.Graph) (*embedding.Embedding, bool, error) {
	if X == nil {
		return nil, false, gotorus.ErrNilGraph
	}
	return planar.FindEmbeddingOpts(X, o.opts)
}

func (o *oracle) FindToroidalEmbedding(ctx context.Context, X *graph.Graph) (*embedding.Embedding, bool, error) {
	if X == nil {
		return nil, false, gotorus.ErrNilGraph
	}
	return toroidal.FindEmbeddingContext(ctx, X, o.opts)
}

func (o *oracle) FindKuratowskiCertificate(X *graph.Graph) (graph.Graph, bool) {
	if X == nil {
		return graph.Graph{}, false
	}
	return toroidal.FindKuratowski(X)
}

func (o *oracle) Classify(ctx context.Context, X *graph.Graph) (gotorus.Classification, *embedding.Embedding, error) {
	if X == nil {
		return gotorus.Classification{}, nil, gotorus.ErrNilGraph
	}
	c := gotorus.Classification{
		Graph6: graph6.Format(X),
	}

	// planar inputs come back with their plane embedding
	e, ok, err := toroidal.FindEmbeddingContext(ctx, X, o.opts)
	if err != nil {
		return c, nil, err
	}
	if !ok {
		c.Genus = gotorus.NoEmbedding
		c.Verdict = gotorus.VerdictNotEmbeddable
		return c, nil, nil
	}
	c.Genus = gotorus.Genus(e.Genus())
	c.Verdict = gotorus.VerdictEmbedded
	return c, e, nil
}
