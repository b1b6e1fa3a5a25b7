package graph6

import (
	"errors"
	"testing"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/google/go-cmp/cmp"
)

func petersen() graph.Graph {
	X := graph.New(10)
	for i := 0; i < 5; i++ {
		X.AddEdge(i, (i+1)%5)
		X.AddEdge(i, i+5)
		X.AddEdge(i+5, (i+2)%5+5)
	}
	return X
}

func TestParse(t *testing.T) {
	K4, K5, P := graph.Complete(4), graph.Complete(5), petersen()
	tests := []struct {
		in   string
		want *graph.Graph
	}{
		{"C~", &K4},
		{"D~{", &K5},
		{">>graph6<<D~{\n", &K5},
		{"IheA@GUAo", &P},
	}
	for _, tt := range tests {
		X, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if X != *tt.want {
			t.Fatalf("Parse(%q) = %v, want %v", tt.in, X.String(), tt.want.String())
		}
	}

	X, err := Parse("?")
	if err != nil || X.NodeCount() != 0 {
		t.Fatalf("Parse(?) = %v, %v", X.String(), err)
	}
	X, err = Parse("@")
	if err != nil || X.NodeCount() != 1 || X.EdgeCount() != 0 {
		t.Fatalf("Parse(@) = %v, %v", X.String(), err)
	}
	X, err = Parse("A_")
	if err != nil || X.NodeCount() != 2 || X.EdgeCount() != 1 {
		t.Fatalf("Parse(A_) = %v, %v", X.String(), err)
	}
}

func TestFormat(t *testing.T) {
	K4, K5, P := graph.Complete(4), graph.Complete(5), petersen()
	for want, X := range map[string]*graph.Graph{"C~": &K4, "D~{": &K5, "IheA@GUAo": &P} {
		if got := Format(X); got != want {
			t.Fatalf("Format(%v) = %q, want %q", X.String(), got, want)
		}
	}

	// vertex IDs are compacted
	Y := graph.FromEdges(graph.Edge{U: 10, V: 20}, graph.Edge{U: 20, V: 30}, graph.Edge{U: 30, V: 10})
	if got := Format(&Y); got != "Bw" {
		t.Fatalf("Format(K3 on 10,20,30) = %q", got)
	}
}

func TestRoundTripLarge(t *testing.T) {
	for _, n := range []int{62, 63, 64} {
		X := graph.New(n)
		for u := 0; u < n; u++ {
			X.AddEdge(u, (u+1)%n)
			X.AddEdge(u, (u+5)%n)
		}
		s := Format(&X)
		if n > 62 && s[0] != '~' {
			t.Fatalf("n=%d: want long size prefix, got %q", n, s[:4])
		}
		Y, err := Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(X.Edges(), Y.Edges()); diff != "" {
			t.Fatalf("n=%d round trip (-want +got):\n%s", n, diff)
		}
	}
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"D~",   // truncated
		"D~{{", // trailing bytes
		"C~ ~", // byte out of range
		"~??",  // truncated size
		"~?@A", // 66 vertices
	} {
		if _, err := Parse(in); !errors.Is(err, gotorus.ErrMalformedInput) {
			t.Fatalf("Parse(%q) = %v, want ErrMalformedInput", in, err)
		}
	}
}

func TestUpperTriangular(t *testing.T) {
	X, err := ParseUpperTriangular("9 111000011100001100001000011111111111")
	if err != nil {
		t.Fatal(err)
	}
	if X.NodeCount() != 9 || X.EdgeCount() != 20 {
		t.Fatalf("got %v", X.String())
	}
	for _, u := range []int{0, 1, 2, 3} {
		if !X.HasEdge(u, 8) {
			t.Fatalf("missing edge %d-8", u)
		}
	}
	if X.HasEdge(0, 4) {
		t.Fatal("unexpected edge 0-4")
	}
	if got := FormatUpperTriangular(&X); got != "9 111000011100001100001000011111111111" {
		t.Fatalf("FormatUpperTriangular = %q", got)
	}

	K3 := graph.Complete(3)
	if got := FormatUpperTriangular(&K3); got != "3 111" {
		t.Fatalf("FormatUpperTriangular(K3) = %q", got)
	}
	if Y, err := ParseUpperTriangular("1"); err != nil || Y.NodeCount() != 1 {
		t.Fatalf("ParseUpperTriangular(1) = %v, %v", Y.String(), err)
	}

	for _, in := range []string{"", "x 1", "3 11", "3 1a1", "65 0", "3 111 1"} {
		if _, err := ParseUpperTriangular(in); !errors.Is(err, gotorus.ErrMalformedInput) {
			t.Fatalf("ParseUpperTriangular(%q) = %v, want ErrMalformedInput", in, err)
		}
	}
}
