package obstruction

import (
	"testing"

	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/2x3systems/gotorus/libtorus/graph6"
)

// glued returns two copies of X sharing vertex X.Nodes().Max()
func glued(X graph.Graph) graph.Graph {
	shift := X.Nodes().Max()
	Y := X
	for _, e := range X.Edges() {
		Y.AddEdge(e.U+shift, e.V+shift)
	}
	return Y
}

func disjoint(X, Y graph.Graph) graph.Graph {
	shift := X.Nodes().Max() + 1
	for _, e := range Y.Edges() {
		X.AddEdge(e.U+shift, e.V+shift)
	}
	return X
}

func TestObstructions(t *testing.T) {
	K5K5, err := graph6.ParseUpperTriangular("9 111000011100001100001000011111111111")
	if err != nil {
		t.Fatal(err)
	}
	if K5K5.EdgeCount() != 20 || K5K5.Degree(8) != 8 {
		t.Fatalf("unexpected fixture %v", K5K5.String())
	}

	for name, X := range map[string]graph.Graph{
		"K5.K5":   K5K5,
		"K33.K33": glued(graph.CompleteBipartite(3, 3)),
		"K5+K5":   disjoint(graph.Complete(5), graph.Complete(5)),
	} {
		if !IsObstruction(&X) {
			t.Fatalf("%s: expected obstruction", name)
		}
		if !IsMinorObstruction(&X) {
			t.Fatalf("%s: expected minor obstruction", name)
		}
	}
}

func TestNotObstructions(t *testing.T) {
	K5 := graph.Complete(5)
	pendant := glued(graph.Complete(5))
	pendant.AddEdge(0, 9)
	cycle := glued(graph.CompleteBipartite(3, 3))
	cycle.AddEdge(0, 1)

	for name, X := range map[string]graph.Graph{
		"K5":        K5,
		"K6":        graph.Complete(6),
		"K5.K5+e":   pendant,
		"K33.K33+e": cycle,
	} {
		if IsObstruction(&X) {
			t.Fatalf("%s: unexpected obstruction", name)
		}
	}
}

func TestMinimize(t *testing.T) {
	X := glued(graph.Complete(5))
	X.AddEdge(0, 9)

	M, ok, err := DefaultChecker.Minimize(&X)
	if err != nil || !ok {
		t.Fatalf("Minimize: %v %v", ok, err)
	}
	if want := glued(graph.Complete(5)); M != want {
		t.Fatalf("Minimize = %v, want %v", M.String(), want.String())
	}
	if !IsMinorObstruction(&M) {
		t.Fatal("minimized graph is not a minor obstruction")
	}

	K7 := graph.Complete(7)
	if _, ok, _ := DefaultChecker.Minimize(&K7); ok {
		t.Fatal("K7 embeds in the torus")
	}
}
