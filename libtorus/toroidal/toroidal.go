// Package toroidal finds embeddings of graphs on the torus.
//
// A non-planar graph is reduced to a Kuratowski subgraph H.  Every genus 1 rotation system of H
// is then extended to the whole graph by placing the bridges of the graph relative to H into
// faces, backtracking over every face and boundary position a bridge could take.
package toroidal

import (
	"context"
	"sync"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/bridges"
	"github.com/2x3systems/gotorus/libtorus/embedding"
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/2x3systems/gotorus/libtorus/planar"
	"github.com/plan-systems/klog"
)

// FindEmbedding returns an embedding of X of genus at most 1, or false if there is none.
// Planar graphs get their plane embedding.
func FindEmbedding(X *graph.Graph) (*embedding.Embedding, bool) {
	e, ok, err := FindEmbeddingContext(context.Background(), X, gotorus.DefaultEmbedOpts)
	if err != nil {
		panic(err)
	}
	return e, ok
}

// IsToroidal returns true if X embeds in the torus.
func IsToroidal(X *graph.Graph) bool {
	_, ok := FindEmbedding(X)
	return ok
}

// FindEmbeddingContext is FindEmbedding with explicit options.  It returns ctx.Err() if ctx is
// done before the search completes.
func FindEmbeddingContext(ctx context.Context, X *graph.Graph, opts gotorus.EmbedOpts) (*embedding.Embedding, bool, error) {
	if X.EdgeCount() > 3*X.NodeCount() {
		return nil, false, nil
	}

	var out embedding.Embedding
	var hard *graph.Graph
	comps := X.Components()
	for i := range comps {
		e, ok, err := planar.FindEmbeddingOpts(&comps[i], opts)
		if err != nil {
			return nil, false, err
		}
		if ok {
			out.EmbedDisconnected(e)
			continue
		}

		// genus adds up over components
		if hard != nil {
			return nil, false, nil
		}
		hard = &comps[i]
	}

	if hard != nil {
		e, ok, err := embedConnected(ctx, hard, opts)
		if err != nil || !ok {
			return nil, false, err
		}
		out.EmbedDisconnected(e)
	}
	return &out, true, nil
}

// embedConnected searches a genus 1 embedding of a connected non-planar graph.
func embedConnected(ctx context.Context, X *graph.Graph, opts gotorus.EmbedOpts) (*embedding.Embedding, bool, error) {
	if X.EdgeCount() > 3*X.NodeCount() {
		return nil, false, nil
	}

	H, _ := FindKuratowski(X)

	// each bridge lies in a disc, so it must stay planar with its attachments pinched together
	for _, b := range bridges.Compute(X, &H) {
		M := b.Merged()
		if !planar.IsPlanar(&M) {
			klog.V(2).Infof("toroidal: bridge at %v is not planar", b.Attach)
			return nil, false, nil
		}
	}

	klog.V(2).Infof("toroidal: certificate with %d vertices, %d edges", H.NodeCount(), H.EdgeCount())
	return searchCandidates(ctx, X, &H, opts)
}

type outcome struct {
	e   *embedding.Embedding
	err error
}

// searchCandidates fans the genus 1 rotation systems of H out to opts.Workers goroutines,
// each extending its candidate to X on private state.  The first success wins.
func searchCandidates(ctx context.Context, X, H *graph.Graph, opts gotorus.EmbedOpts) (*embedding.Embedding, bool, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	candidates := make(chan *embedding.Embedding, workers)
	go func() {
		defer close(candidates)
		embedding.EnumerateGenus(H, 1, func(e *embedding.Embedding) bool {
			c := *e
			select {
			case candidates <- &c:
				return true
			case <-searchCtx.Done():
				return false
			}
		})
	}()

	results := make(chan outcome, workers)
	wg := sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tried := 0
			for c := range candidates {
				if searchCtx.Err() != nil {
					continue
				}
				tried++
				e, ok, err := extend(searchCtx, X, H, c, opts)
				if err != nil || ok {
					results <- outcome{e, err}
					cancel()
					return
				}
			}
			klog.V(3).Infof("toroidal: worker exhausted after %d candidates", tried)
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	r, found := <-results
	if !found {
		return nil, false, ctx.Err()
	}
	if r.err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, false, r.err
	}
	return r.e, true, nil
}
