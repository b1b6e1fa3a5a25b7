package libtorus

import (
	"strings"

	"github.com/2x3systems/gotorus/libtorus/graph"
	graphexpr "github.com/2x3systems/gotorus/libtorus/graph-expr"
	"github.com/2x3systems/gotorus/libtorus/graph6"
)

// ParseGraph reads a graph written in any of the supported text forms:
//
//	"D~{"                          graph6
//	"5 1111111111"                 vertex count and upper-triangular adjacency bits
//	"0-1-2-0, 2-3"                 edge runs (see graphexpr)
func ParseGraph(line string) (graph.Graph, error) {
	s := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(s, ">>graph6<<"):
		return graph6.Parse(s)
	case strings.ContainsAny(s, "-,;"):
		return graphexpr.Parse(s)
	case strings.ContainsAny(s, " \t"), len(s) > 0 && allDigits(s):
		return graph6.ParseUpperTriangular(s)
	}
	return graph6.Parse(s)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
