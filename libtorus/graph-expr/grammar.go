// Package graphexpr reads graphs written as edge runs, e.g. "0-1-2-0, 2-3" or "0-1-2-0; 0-1-2-0"
// where each ';' separated part is offset past the vertices of the parts before it.
package graphexpr

import (
	"strconv"
	"strings"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

type GraphExpr struct {
	Parts []*Part `parser:"(@@ (\";\" @@)*)?"`
}

type Part struct {
	EdgeRuns []*EdgeRun `parser:"(@@ (\",\" @@)*)?"`
}

type EdgeRun struct {
	StartVtx int   `parser:"@Int"`
	Edges    []int `parser:"(\"-\" @Int)*"`
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[-,;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseGraphExpr = participle.MustBuild[GraphExpr](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)

type graphBuilder struct {
	X    graph.Graph
	vtx0 int // vertex offset of the current part
	next int // one past the largest vertex seen
}

func (Xb *graphBuilder) vtx(partID, id int) (int, error) {
	u := Xb.vtx0 + id
	if id < 0 || u >= graph.MaxNodes {
		return 0, errors.Wrapf(gotorus.ErrMalformedInput, "part #%d: vertex %d exceeds capacity %d", partID+1, id, graph.MaxNodes)
	}
	Xb.X.AddNode(u)
	if u >= Xb.next {
		Xb.next = u + 1
	}
	return u, nil
}

func (Xb *graphBuilder) applyRun(partID int, run *EdgeRun) error {
	cur, err := Xb.vtx(partID, run.StartVtx)
	if err != nil {
		return err
	}
	for _, id := range run.Edges {
		nxt, err := Xb.vtx(partID, id)
		if err != nil {
			return err
		}
		if nxt == cur {
			return errors.Wrapf(gotorus.ErrMalformedInput, "part #%d: loop at vertex %d", partID+1, id)
		}
		Xb.X.AddEdge(cur, nxt)
		cur = nxt
	}
	return nil
}

// Parse reads a graph expression.
func Parse(graphExpr string) (graph.Graph, error) {
	Xexpr, err := parseGraphExpr.ParseString("", graphExpr)
	if err != nil {
		return graph.Graph{}, errors.Wrap(gotorus.ErrMalformedInput, err.Error())
	}

	var Xb graphBuilder
	for pi, part := range Xexpr.Parts {
		Xb.vtx0 = Xb.next
		for _, run := range part.EdgeRuns {
			if err = Xb.applyRun(pi, run); err != nil {
				return graph.Graph{}, err
			}
		}
	}
	return Xb.X, nil
}

// Format writes X as a single part expression: one run per edge followed by isolated vertices.
func Format(X *graph.Graph) string {
	b := strings.Builder{}
	sep := func() {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
	}
	for _, e := range X.Edges() {
		sep()
		b.WriteString(strconv.Itoa(e.U))
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(e.V))
	}
	X.Nodes().ForEach(func(u int) {
		if X.Degree(u) == 0 {
			sep()
			b.WriteString(strconv.Itoa(u))
		}
	})
	return b.String()
}
