package libtorus

import (
	"context"
	"errors"
	"testing"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/graph"
)

func TestClassify(t *testing.T) {
	ctx := context.Background()
	oracle := NewOracle(gotorus.DefaultEmbedOpts)

	tests := []struct {
		X       graph.Graph
		genus   gotorus.Genus
		verdict gotorus.Verdict
	}{
		{graph.Graph{}, 0, gotorus.VerdictEmbedded},
		{graph.Complete(4), 0, gotorus.VerdictEmbedded},
		{graph.Complete(5), 1, gotorus.VerdictEmbedded},
		{graph.CompleteBipartite(3, 3), 1, gotorus.VerdictEmbedded},
		{graph.Complete(7), 1, gotorus.VerdictEmbedded},
		{graph.Complete(8), gotorus.NoEmbedding, gotorus.VerdictNotEmbeddable},
	}
	for _, tt := range tests {
		c, e, err := oracle.Classify(ctx, &tt.X)
		if err != nil {
			t.Fatal(err)
		}
		if c.Genus != tt.genus || c.Verdict != tt.verdict {
			t.Fatalf("Classify(%v) = %v/%v, want %v/%v", tt.X.String(), c.Genus, c.Verdict, tt.genus, tt.verdict)
		}
		if (e != nil) != (tt.verdict == gotorus.VerdictEmbedded) {
			t.Fatalf("Classify(%v): embedding %v", tt.X.String(), e)
		}
		if e != nil {
			if G := e.Graph(); G != tt.X {
				t.Fatalf("embedding of %v covers %v", tt.X.String(), G.String())
			}
		}
	}

	if _, _, err := oracle.Classify(ctx, nil); !errors.Is(err, gotorus.ErrNilGraph) {
		t.Fatalf("Classify(nil) = %v", err)
	}
}

func TestOracleQueries(t *testing.T) {
	oracle := NewOracle(gotorus.EmbedOpts{Workers: 2, Validate: true})

	K5 := graph.Complete(5)
	if _, ok, err := oracle.FindPlanarEmbedding(&K5); ok || err != nil {
		t.Fatalf("K5 planar: %v %v", ok, err)
	}
	e, ok, err := oracle.FindToroidalEmbedding(context.Background(), &K5)
	if !ok || err != nil || e.Genus() != 1 {
		t.Fatalf("K5 toroidal: %v %v", ok, err)
	}

	K33 := graph.CompleteBipartite(3, 3)
	K33.AddEdge(0, 1)
	H, ok := oracle.FindKuratowskiCertificate(&K33)
	if !ok || H.EdgeCount() != 9 {
		t.Fatalf("certificate of K3,3+e: %v %v", ok, H.String())
	}

	K4 := graph.Complete(4)
	if _, ok = oracle.FindKuratowskiCertificate(&K4); ok {
		t.Fatal("K4 has no Kuratowski subgraph")
	}
	e, ok, err = oracle.FindPlanarEmbedding(&K4)
	if !ok || err != nil || e.FaceCount() != 4 {
		t.Fatalf("K4 planar: %v %v", ok, err)
	}
}

func TestParseGraph(t *testing.T) {
	K5 := graph.Complete(5)
	for _, in := range []string{
		"D~{",
		">>graph6<<D~{",
		"5 1111111111",
		"0-1-2-3-4-0-2-4-1-3-0",
	} {
		X, err := ParseGraph(in)
		if err != nil {
			t.Fatalf("ParseGraph(%q): %v", in, err)
		}
		if X != K5 {
			t.Fatalf("ParseGraph(%q) = %v", in, X.String())
		}
	}
	if _, err := ParseGraph("bad line!"); !errors.Is(err, gotorus.ErrMalformedInput) {
		t.Fatalf("ParseGraph(bad) = %v", err)
	}
}
