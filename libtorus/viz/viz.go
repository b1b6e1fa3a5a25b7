// Package viz renders graphs and their embeddings as Graphviz dot.
package viz

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/2x3systems/gotorus/libtorus/embedding"
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/aclements/go-moremath/graph/graphout"
)

// Snapshot is a graph along with zero or more embeddings of it.
type Snapshot struct {
	Name       string
	Graph      graph.Graph
	Embeddings []*embedding.Embedding
}

// Dot contains options for rendering snapshots.
type Dot struct {
	// Rotations, if set, labels each vertex of an embedding with its rotation.
	Rotations bool

	// FaceCount, if set, adds the face count and genus to each embedding's name.
	FaceCount bool
}

// DefaultDot labels vertices with their rotations.
var DefaultDot = Dot{
	Rotations: true,
	FaceCount: true,
}

// dotGraph presents vertices of a graph.Graph as nodes 0..n-1, each edge once (from its smaller vertex).
type dotGraph struct {
	nodes []int
	out   [][]int
}

func newDotGraph(X *graph.Graph) *dotGraph {
	g := &dotGraph{
		nodes: X.Nodes().Slice(),
	}
	var index [graph.MaxNodes]int
	for i, u := range g.nodes {
		index[u] = i
	}
	g.out = make([][]int, len(g.nodes))
	for _, e := range X.Edges() {
		g.out[index[e.U]] = append(g.out[index[e.U]], index[e.V])
	}
	return g
}

func (g *dotGraph) NumNodes() int {
	return len(g.nodes)
}

func (g *dotGraph) Out(node int) []int {
	return g.out[node]
}

var undirected = []graphout.DotAttr{{Name: "dir", Val: graphout.DotLiteral("none")}}

// Fprint writes one dot graph for each snapshot graph and one for each of its embeddings.
func (d Dot) Fprint(w io.Writer, snapshots ...Snapshot) error {
	for _, snap := range snapshots {
		g := newDotGraph(&snap.Graph)
		out := graphout.Dot{
			Name: snap.Name,
			Label: func(node int) string {
				return strconv.Itoa(g.nodes[node])
			},
			EdgeAttrs: func(node, edge int) []graphout.DotAttr {
				return undirected
			},
		}
		if err := out.Fprint(w, g); err != nil {
			return err
		}

		for i, e := range snap.Embeddings {
			name := fmt.Sprintf("%s/%d", snap.Name, i)
			if d.FaceCount {
				name = fmt.Sprintf("%s faces=%d genus=%d", name, e.FaceCount(), e.Genus())
			}
			out.Name = name
			if d.Rotations {
				e := e
				out.Label = func(node int) string {
					return RotationLabel(e, g.nodes[node])
				}
			}
			if err := out.Fprint(w, g); err != nil {
				return err
			}
		}
	}
	return nil
}

// Sprint returns the dot form of the given snapshots as a string.
func (d Dot) Sprint(snapshots ...Snapshot) string {
	var buf strings.Builder
	d.Fprint(&buf, snapshots...)
	return buf.String()
}

// RotationLabel returns "u: a b c" where a b c is the cyclic order of u's neighbors in e.
func RotationLabel(e *embedding.Embedding, u int) string {
	b := strings.Builder{}
	b.WriteString(strconv.Itoa(u))
	b.WriteByte(':')
	for _, v := range e.Rotation(u) {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
