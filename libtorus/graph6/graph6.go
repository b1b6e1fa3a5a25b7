// Package graph6 reads and writes graphs in the graph6 format of nauty and in the
// "n bits" upper-triangular adjacency format.
package graph6

import (
	"strconv"
	"strings"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/pkg/errors"
)

const header = ">>graph6<<"

// Parse decodes a graph6 line into a graph over vertices 0..n-1.
func Parse(line string) (graph.Graph, error) {
	s := strings.TrimPrefix(strings.TrimSpace(line), header)
	if len(s) == 0 {
		return graph.Graph{}, errors.Wrap(gotorus.ErrMalformedInput, "empty graph6 string")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 63 || s[i] > 126 {
			return graph.Graph{}, errors.Wrapf(gotorus.ErrMalformedInput, "graph6 byte %q at %d", s[i], i)
		}
	}

	var n int
	switch {
	case len(s) >= 2 && s[0] == '~' && s[1] == '~':
		if len(s) < 8 {
			return graph.Graph{}, errors.Wrap(gotorus.ErrMalformedInput, "truncated graph6 size")
		}
		n, s = sextets(s[2:8]), s[8:]
	case s[0] == '~':
		if len(s) < 4 {
			return graph.Graph{}, errors.Wrap(gotorus.ErrMalformedInput, "truncated graph6 size")
		}
		n, s = sextets(s[1:4]), s[4:]
	default:
		n, s = int(s[0]-63), s[1:]
	}
	if n > graph.MaxNodes {
		return graph.Graph{}, errors.Wrapf(gotorus.ErrMalformedInput, "%d vertices exceeds capacity %d", n, graph.MaxNodes)
	}

	need := (n*(n-1)/2 + 5) / 6
	if len(s) != need {
		return graph.Graph{}, errors.Wrapf(gotorus.ErrMalformedInput, "graph6 body has %d bytes, want %d", len(s), need)
	}

	X := graph.New(n)
	k := 0
	for v := 1; v < n; v++ {
		for u := 0; u < v; u++ {
			if (s[k/6]-63)&(32>>uint(k%6)) != 0 {
				X.AddEdge(u, v)
			}
			k++
		}
	}
	return X, nil
}

func sextets(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n<<6 | int(s[i]-63)
	}
	return n
}

// Format encodes X in graph6, numbering its vertices in ascending order.
func Format(X *graph.Graph) string {
	nodes := X.Nodes().Slice()
	n := len(nodes)

	b := strings.Builder{}
	b.Grow(4 + (n*(n-1)/2+5)/6)
	if n <= 62 {
		b.WriteByte(byte(n + 63))
	} else {
		b.WriteByte('~')
		for shift := 12; shift >= 0; shift -= 6 {
			b.WriteByte(byte((n>>uint(shift))&63 + 63))
		}
	}

	var acc byte
	k := 0
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			acc <<= 1
			if X.HasEdge(nodes[i], nodes[j]) {
				acc |= 1
			}
			k++
			if k%6 == 0 {
				b.WriteByte(acc + 63)
				acc = 0
			}
		}
	}
	if k%6 != 0 {
		b.WriteByte(acc<<uint(6-k%6) + 63)
	}
	return b.String()
}

// ParseUpperTriangular decodes "n bits" where bits lists the upper triangle of the adjacency
// matrix row by row: 0-1, 0-2, .., 0-(n-1), 1-2, ..
func ParseUpperTriangular(line string) (graph.Graph, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || len(fields) > 2 {
		return graph.Graph{}, errors.Wrapf(gotorus.ErrMalformedInput, "want \"n bits\", got %q", line)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return graph.Graph{}, errors.Wrapf(gotorus.ErrMalformedInput, "bad vertex count %q", fields[0])
	}
	if n > graph.MaxNodes {
		return graph.Graph{}, errors.Wrapf(gotorus.ErrMalformedInput, "%d vertices exceeds capacity %d", n, graph.MaxNodes)
	}
	bits := ""
	if len(fields) == 2 {
		bits = fields[1]
	}
	if len(bits) != n*(n-1)/2 {
		return graph.Graph{}, errors.Wrapf(gotorus.ErrMalformedInput, "%d bits for %d vertices", len(bits), n)
	}

	X := graph.New(n)
	k := 0
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			switch bits[k] {
			case '1':
				X.AddEdge(u, v)
			case '0':
			default:
				return graph.Graph{}, errors.Wrapf(gotorus.ErrMalformedInput, "bad bit %q", bits[k])
			}
			k++
		}
	}
	return X, nil
}

// FormatUpperTriangular encodes X as "n bits", numbering its vertices in ascending order.
func FormatUpperTriangular(X *graph.Graph) string {
	nodes := X.Nodes().Slice()
	b := strings.Builder{}
	b.WriteString(strconv.Itoa(len(nodes)))
	b.WriteByte(' ')
	for i, u := range nodes {
		for _, v := range nodes[i+1:] {
			if X.HasEdge(u, v) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}
