package toroidal

import (
	"context"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/bridges"
	"github.com/2x3systems/gotorus/libtorus/embedding"
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// state is one node of the backtracking search: a partial embedding of X, the subgraph H it
// embeds, and the bridges of X still to be placed.  Branches work on clones.
type state struct {
	e embedding.Embedding
	H graph.Graph
	t *bridges.Tracker
}

func (s *state) clone() *state {
	return &state{
		e: s.e,
		H: s.H,
		t: s.t.Clone(),
	}
}

// extend tries to grow the genus 1 embedding cand of H into one of X, first on the bounded
// representation and then, if slots run out, on the unbounded one.
func extend(ctx context.Context, X, H *graph.Graph, cand *embedding.Embedding, opts gotorus.EmbedOpts) (*embedding.Embedding, bool, error) {
	if opts.Bounded {
		e, ok, err := extendWith(ctx, X, H, cand, true, opts.Validate)
		if !errors.Is(err, gotorus.ErrCapacityExceeded) {
			return e, ok, err
		}
		klog.V(2).Infof("toroidal: %v, retrying unbounded", err)
	}
	return extendWith(ctx, X, H, cand, false, opts.Validate)
}

func extendWith(ctx context.Context, X, H *graph.Graph, cand *embedding.Embedding, bounded, validate bool) (*embedding.Embedding, bool, error) {
	s := &state{
		e: *cand,
		H: *H,
		t: bridges.NewTracker(bounded),
	}

	var faceIDs []int
	for _, f := range s.e.Faces() {
		id, err := s.t.AddFace(f, s.e.FaceNodes(f))
		if err != nil {
			return nil, false, err
		}
		faceIDs = append(faceIDs, id)
	}
	if ok, err := s.t.Fold(X, &s.H, faceIDs); !ok || err != nil {
		return nil, false, err
	}
	return s.search(ctx, validate)
}

// search places the next bridge in every possible way, recursing on each.
func (s *state) search(ctx context.Context, validate bool) (*embedding.Embedding, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if validate {
		if err := s.e.Validate(); err != nil {
			return nil, false, err
		}
	}

	b, faces, more := s.t.Next()
	if !more {
		e := s.e
		return &e, true, nil
	}

	if b.Attach.Count() == 1 {
		return s.placePendant(ctx, &b, faces, validate)
	}
	return s.placePath(ctx, &b, faces, validate)
}

// placePendant starts a bridge with a single attachment u by adding its first edge u-v in each
// corner at u of each admissible face.
func (s *state) placePendant(ctx context.Context, b *bridges.Bridge, faces []int, validate bool) (*embedding.Embedding, bool, error) {
	u := b.Attach.Min()
	v := b.Graph.Neighbors(u).Min()

	for _, f := range faces {
		for _, h := range s.e.Walk(s.t.Face(f)) {
			if h.V != u {
				continue
			}
			child := s.clone()
			child.e.InsertEdge(u, h.U, v)
			child.e.InsertEdgeAny(v, u)
			child.H.AddEdge(u, v)
			child.t.SetFaceNodes(f, child.e.FaceNodes(child.t.Face(f)))

			ok, err := child.t.Fold(&b.Graph, &child.H, []int{f})
			if err != nil {
				return nil, false, err
			}
			if !ok {
				continue
			}
			if e, ok, err := child.search(ctx, validate); ok || err != nil {
				return e, ok, err
			}
		}
	}
	return nil, false, nil
}

// placePath starts a bridge with several attachments by embedding a path through it between
// two attachments, across each admissible face and each pair of boundary positions of the ends.
func (s *state) placePath(ctx context.Context, b *bridges.Bridge, faces []int, validate bool) (*embedding.Embedding, bool, error) {
	start := b.Attach.Min()
	path, _ := b.Graph.Path(start, b.Attach)
	end := path[len(path)-1]
	P := graph.FromPath(path)

	for _, f := range faces {
		walk := s.e.Walk(s.t.Face(f))
		for _, out := range walk {
			if out.U != start {
				continue
			}
			for _, in := range walk {
				if in.V != end {
					continue
				}
				child := s.clone()
				_, stranded := child.t.TakeFace(f)
				halves := child.e.EmbedBisectingPathAfter(path, out.V, in.U)
				child.H.Union(&P)

				ids := make([]int, 0, 2)
				for _, half := range halves {
					id, err := child.t.AddFace(half, child.e.FaceNodes(half))
					if err != nil {
						return nil, false, err
					}
					ids = append(ids, id)
				}
				if !child.t.Readmit(stranded, ids) {
					continue
				}
				ok, err := child.t.Fold(&b.Graph, &child.H, ids)
				if err != nil {
					return nil, false, err
				}
				if !ok {
					continue
				}
				if e, ok, err := child.search(ctx, validate); ok || err != nil {
					return e, ok, err
				}
			}
		}
	}
	return nil, false, nil
}
