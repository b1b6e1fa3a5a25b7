package catalog_test

import (
	"errors"
	"os"
	"path"
	"testing"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/catalog"
	"github.com/2x3systems/gotorus/libtorus/graph"
)

type entry struct {
	X graph.Graph
	c gotorus.Classification
}

func entries() []entry {
	K33 := graph.CompleteBipartite(3, 3)
	K33.AddEdge(0, 1)
	return []entry{
		{graph.Complete(3), gotorus.Classification{Label: "K3", Genus: 0, Verdict: gotorus.VerdictEmbedded}},
		{graph.Complete(4), gotorus.Classification{Label: "K4", Genus: 0, Verdict: gotorus.VerdictEmbedded}},
		{graph.Complete(5), gotorus.Classification{Label: "K5", Genus: 1, Verdict: gotorus.VerdictEmbedded}},
		{K33, gotorus.Classification{Label: "K33+e", Genus: 1, Verdict: gotorus.VerdictEmbedded}},
		{graph.Complete(8), gotorus.Classification{Label: "K8", Genus: gotorus.NoEmbedding, Verdict: gotorus.VerdictNotEmbeddable}},
	}
}

func selectAll(t *testing.T, cat *catalog.Catalog, sel catalog.Selector) []*catalog.Record {
	var recs []*catalog.Record
	onHit := make(chan *catalog.Record)
	go func() {
		if err := cat.Select(sel, onHit); err != nil {
			t.Error(err)
		}
		close(onHit)
	}()
	for rec := range onHit {
		recs = append(recs, rec)
	}
	return recs
}

func TestBasics(t *testing.T) {
	dir, err := os.MkdirTemp("", "junk*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	opts := gotorus.CatalogOpts{
		DbPathName: path.Join(dir, "TestBasics"),
	}
	cat, err := catalog.Open(opts)
	if err != nil {
		t.Fatal(err)
	}

	for _, e := range entries() {
		if added, err := cat.TryAdd(&e.X, e.c); !added || err != nil {
			t.Fatalf("%s: TryAdd = %v, %v", e.c.Label, added, err)
		}
		if added, err := cat.TryAdd(&e.X, e.c); added || err != nil {
			t.Fatalf("%s: second TryAdd = %v, %v", e.c.Label, added, err)
		}
	}
	if cat.Count(-1) != 5 || cat.Count(6) != 1 || cat.Count(7) != 0 {
		t.Fatalf("Count: %d %d %d", cat.Count(-1), cat.Count(6), cat.Count(7))
	}

	// relabelled copy of K4 has the same graph6
	K4 := graph.FromEdges(
		graph.Edge{U: 10, V: 11}, graph.Edge{U: 10, V: 12}, graph.Edge{U: 10, V: 13},
		graph.Edge{U: 11, V: 12}, graph.Edge{U: 11, V: 13}, graph.Edge{U: 12, V: 13},
	)
	rec, ok, err := cat.Get(&K4)
	if err != nil || !ok {
		t.Fatalf("Get(K4) = %v, %v", ok, err)
	}
	if rec.Label != "K4" || rec.Graph6 != "C~" || rec.NumEdges != 6 || rec.Genus != 0 {
		t.Fatalf("Get(K4) = %v", rec.String())
	}

	K6 := graph.Complete(6)
	if _, ok, err = cat.Get(&K6); ok || err != nil {
		t.Fatalf("Get(K6) = %v, %v", ok, err)
	}

	if recs := selectAll(t, cat, catalog.DefaultSelector); len(recs) != 5 {
		t.Fatalf("Select all: %d", len(recs))
	} else if recs[0].Label != "K3" || recs[4].Label != "K8" {
		t.Fatalf("Select order: %v .. %v", recs[0].Label, recs[4].Label)
	}

	sel := catalog.Selector{MinVertices: 4, MaxVertices: 6, Toroidal: true}
	recs := selectAll(t, cat, sel)
	if len(recs) != 2 || recs[0].Label != "K5" || recs[1].Label != "K33+e" {
		t.Fatalf("Select toroidal: %v", recs)
	}

	sel = catalog.DefaultSelector
	sel.Planar, sel.Toroidal = false, false
	recs = selectAll(t, cat, sel)
	if len(recs) != 1 || recs[0].Genus != -1 {
		t.Fatalf("Select not embeddable: %v", recs)
	}

	if err = cat.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen read-only; the header and records survive
	opts.ReadOnly = true
	cat, err = catalog.Open(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer cat.Close()

	if cat.Count(-1) != 5 {
		t.Fatalf("reopened Count = %d", cat.Count(-1))
	}
	if _, ok, _ := cat.Get(&K4); !ok {
		t.Fatal("reopened Get(K4) failed")
	}
	if _, err := cat.TryAdd(&K6, gotorus.Classification{Genus: 1}); !errors.Is(err, gotorus.ErrCatalogReadOnly) {
		t.Fatalf("read-only TryAdd = %v", err)
	}
}

func TestInMemory(t *testing.T) {
	if _, err := catalog.Open(gotorus.CatalogOpts{ReadOnly: true}); !errors.Is(err, gotorus.ErrBadCatalogParam) {
		t.Fatalf("read-only in-memory Open = %v", err)
	}

	cat, err := catalog.Open(gotorus.CatalogOpts{})
	if err != nil {
		t.Fatal(err)
	}
	defer cat.Close()

	// every graph added below is a 3-vertex path
	cat.Canonize = func(X graph.Graph) graph.Graph {
		return graph.FromPath([]int{0, 1, 2})
	}
	P1 := graph.FromPath([]int{0, 1, 2})
	P2 := graph.FromPath([]int{1, 0, 2})
	if added, _ := cat.TryAdd(&P1, gotorus.Classification{Label: "P3"}); !added {
		t.Fatal("TryAdd(P1)")
	}
	if added, _ := cat.TryAdd(&P2, gotorus.Classification{Label: "P3'"}); added {
		t.Fatal("TryAdd(P2) should be a duplicate under Canonize")
	}
}

func TestKeySet(t *testing.T) {
	set := catalog.NewKeySet(nil)
	defer set.Close()

	K4 := graph.Complete(4)
	C4 := graph.FromPath([]int{0, 1, 2, 3, 0})
	C4b := graph.FromPath([]int{0, 2, 1, 3, 0})

	if !set.TryAdd(&K4) || set.TryAdd(&K4) {
		t.Fatal("K4")
	}
	if !set.TryAdd(&C4) || set.TryAdd(&C4) {
		t.Fatal("C4")
	}
	// a relabelled C4 is distinct without a canonizer
	if !set.TryAdd(&C4b) {
		t.Fatal("C4b")
	}
}
