package planar

import (
	"errors"
	"testing"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/graph"
)

func cube() graph.Graph {
	var X graph.Graph
	for u := 0; u < 8; u++ {
		for _, bit := range []int{1, 2, 4} {
			if u&bit == 0 {
				X.AddEdge(u, u|bit)
			}
		}
	}
	return X
}

func octahedron() graph.Graph {
	X := graph.Complete(6)
	X.DelEdge(0, 1)
	X.DelEdge(2, 3)
	X.DelEdge(4, 5)
	return X
}

func wheel(spokes int) graph.Graph {
	var X graph.Graph
	for i := 1; i <= spokes; i++ {
		X.AddEdge(0, i)
		X.AddEdge(i, i%spokes+1)
	}
	return X
}

// triangulatedGrid returns a rows x cols grid with one diagonal per square.
func triangulatedGrid(rows, cols int) graph.Graph {
	var X graph.Graph
	at := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				X.AddEdge(at(r, c), at(r, c+1))
			}
			if r+1 < rows {
				X.AddEdge(at(r, c), at(r+1, c))
			}
			if r+1 < rows && c+1 < cols {
				X.AddEdge(at(r, c), at(r+1, c+1))
			}
		}
	}
	return X
}

func petersen() graph.Graph {
	var X graph.Graph
	for i := 0; i < 5; i++ {
		X.AddEdge(i, (i+1)%5)
		X.AddEdge(i, i+5)
		X.AddEdge(i+5, (i+2)%5+5)
	}
	return X
}

func checkPlanar(t *testing.T, name string, X graph.Graph) {
	t.Helper()
	opts := gotorus.DefaultEmbedOpts
	opts.Validate = true
	e, ok, err := FindEmbeddingOpts(&X, opts)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	if !ok {
		t.Fatalf("%s: want planar", name)
	}
	if g := e.Genus(); g != 0 {
		t.Fatalf("%s: want genus 0, got %d", name, g)
	}
	if Y := e.Graph(); Y != X {
		t.Fatalf("%s: embedded graph %v differs from %v", name, Y.String(), X.String())
	}
}

func TestForests(t *testing.T) {
	var empty graph.Graph
	star := graph.Graph{}
	for i := 1; i < 9; i++ {
		star.AddEdge(0, i)
	}
	forest := graph.FromPath([]int{0, 1, 2, 3})
	forest.AddEdge(2, 7)
	forest.AddEdge(10, 11)
	forest.AddNode(20)

	for name, X := range map[string]graph.Graph{
		"empty":    empty,
		"K1":       graph.New(1),
		"isolated": graph.New(12),
		"path":     graph.FromPath([]int{0, 1, 2, 3, 4, 5, 6}),
		"star":     star,
		"forest":   forest,
	} {
		checkPlanar(t, name, X)
		e, _ := FindEmbedding(&X)
		if f := e.FaceCount(); f != 1 && name != "forest" {
			t.Errorf("%s: want 1 face, got %d", name, f)
		}
	}
}

func TestPlanar(t *testing.T) {
	K4 := graph.Complete(4)
	K4.AddEdge(3, 4)
	twoK4 := graph.Complete(4)
	for _, e := range twoK4.Edges() {
		twoK4.AddEdge(e.U+4, e.V+4)
	}

	for name, X := range map[string]graph.Graph{
		"K3":         graph.Complete(3),
		"K4":         graph.Complete(4),
		"K4+pendant": K4,
		"2K4":        twoK4,
		"K2,7":       graph.CompleteBipartite(2, 7),
		"cube":       cube(),
		"octahedron": octahedron(),
		"wheel":      wheel(7),
		"grid":       triangulatedGrid(4, 5),
	} {
		checkPlanar(t, name, X)
	}
}

func TestNonPlanar(t *testing.T) {
	K6 := graph.Complete(6)
	K33 := graph.CompleteBipartite(3, 3)
	subdivided := K33
	subdivided.DelEdge(0, 3)
	subdivided.AddEdge(0, 9)
	subdivided.AddEdge(9, 3)
	sparse := graph.Complete(5)
	sparse.AddNode(30)

	for name, X := range map[string]graph.Graph{
		"K5":          graph.Complete(5),
		"K6":          K6,
		"K3,3":        K33,
		"K3,3 subdiv": subdivided,
		"petersen":    petersen(),
		"K5+isolated": sparse,
	} {
		if _, ok := FindEmbedding(&X); ok {
			t.Errorf("%s: want non-planar", name)
		}
		if IsPlanar(&X) {
			t.Errorf("%s: IsPlanar disagrees", name)
		}
	}
}

func TestK5Minors(t *testing.T) {
	K5 := graph.Complete(5)
	for _, M := range K5.Minors() {
		checkPlanar(t, M.String(), M)
	}
}

func TestCapacityFallback(t *testing.T) {
	X := triangulatedGrid(6, 8)
	_, _, err := embed(&X, true, false)
	if !errors.Is(err, gotorus.ErrCapacityExceeded) {
		t.Fatalf("want ErrCapacityExceeded, got %v", err)
	}

	e, ok, err := embed(&X, false, true)
	if err != nil || !ok {
		t.Fatalf("unbounded: ok=%v err=%v", ok, err)
	}
	if f := e.FaceCount(); f != 71 {
		t.Fatalf("want 71 faces, got %d", f)
	}
	checkPlanar(t, "grid 6x8", X)
}
