// Package planar finds plane embeddings with the Demoucron-Malgrange-Pertuiset algorithm:
// starting from an embedded cycle, bridges of the rest of the graph are placed one at a time
// into faces whose boundary holds all their attachment vertices.
package planar

import (
	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/bridges"
	"github.com/2x3systems/gotorus/libtorus/embedding"
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// FindEmbedding returns a genus 0 embedding of X, or false if X is not planar.
func FindEmbedding(X *graph.Graph) (*embedding.Embedding, bool) {
	e, ok, err := FindEmbeddingOpts(X, gotorus.DefaultEmbedOpts)
	if err != nil {
		panic(err)
	}
	return e, ok
}

// IsPlanar returns true if X has a plane embedding.
func IsPlanar(X *graph.Graph) bool {
	_, ok := FindEmbedding(X)
	return ok
}

// FindEmbeddingOpts is FindEmbedding with explicit options.  An error is only returned when
// opts.Validate is set and a rotation invariant breaks.
func FindEmbeddingOpts(X *graph.Graph, opts gotorus.EmbedOpts) (*embedding.Embedding, bool, error) {
	if tooDense(X) {
		return nil, false, nil
	}

	var out embedding.Embedding
	comps := X.Components()
	for i := range comps {
		e, ok, err := embedConnected(&comps[i], opts)
		if err != nil || !ok {
			return nil, false, err
		}
		out.EmbedDisconnected(e)
	}
	return &out, true, nil
}

// tooDense applies the Euler bound |E| <= 3|V| - 6.
func tooDense(X *graph.Graph) bool {
	V := X.NodeCount()
	return V >= 3 && X.EdgeCount()+6 > 3*V
}

func embedConnected(X *graph.Graph, opts gotorus.EmbedOpts) (*embedding.Embedding, bool, error) {
	if opts.Bounded {
		e, ok, err := embed(X, true, opts.Validate)
		if !errors.Is(err, gotorus.ErrCapacityExceeded) {
			return e, ok, err
		}
		klog.V(2).Infof("planar: %v on %d vertices, retrying unbounded", err, X.NodeCount())
	}
	return embed(X, false, opts.Validate)
}

// embed runs DMP on a connected graph.
func embed(X *graph.Graph, bounded, validate bool) (*embedding.Embedding, bool, error) {
	if tooDense(X) {
		return nil, false, nil
	}

	H, hasCycle := X.Cycle()
	if !hasCycle {
		e := embedding.Simple(X)
		return &e, true, nil
	}

	e := embedding.Simple(&H)
	t := bridges.NewTracker(bounded)

	faceIDs := make([]int, 0, 2)
	for _, f := range e.Faces() {
		id, err := t.AddFace(f, e.FaceNodes(f))
		if err != nil {
			return nil, false, err
		}
		faceIDs = append(faceIDs, id)
	}
	if ok, err := t.Fold(X, &H, faceIDs); !ok || err != nil {
		return nil, false, err
	}

	for {
		b, faces, more := t.Next()
		if !more {
			break
		}

		var placed []int
		if b.Attach.Count() == 1 {
			u := b.Attach.Min()
			v := b.Graph.Neighbors(u).Min()
			e.EmbedFreeEdge(u, v)
			H.AddEdge(u, v)
			for _, f := range faces {
				t.SetFaceNodes(f, e.FaceNodes(t.Face(f)))
			}
			placed = faces
		} else {
			start := b.Attach.Min()
			path, _ := b.Graph.Path(start, b.Attach)

			face, stranded := t.TakeFace(faces[0])
			halves := e.EmbedBisectingPath(face, path)
			P := graph.FromPath(path)
			H.Union(&P)

			placed = make([]int, 0, 2)
			for _, f := range halves {
				id, err := t.AddFace(f, e.FaceNodes(f))
				if err != nil {
					return nil, false, err
				}
				placed = append(placed, id)
			}
			if !t.Readmit(stranded, placed) {
				return nil, false, nil
			}
		}

		if ok, err := t.Fold(&b.Graph, &H, placed); !ok || err != nil {
			return nil, false, err
		}
		if validate {
			if err := e.Validate(); err != nil {
				return nil, false, err
			}
		}
	}

	return &e, true, nil
}
