package embedding

import (
	"github.com/2x3systems/gotorus/libtorus/graph"
	"gonum.org/v1/gonum/stat/combin"
)

// rotations returns every cyclic order of the neighbors of a vertex, each written as the
// neighbors following the smallest one.
func rotations(nbrs graph.Set) [][]int {
	rest := nbrs.Without(nbrs.Min()).Slice()
	k := len(rest)
	if k < 2 {
		return [][]int{rest}
	}
	var out [][]int
	gen := combin.NewPermutationGenerator(k, k)
	for gen.Next() {
		perm := gen.Permutation(nil)
		order := make([]int, k)
		for i, pi := range perm {
			order[i] = rest[pi]
		}
		out = append(out, order)
	}
	return out
}

func (e *Embedding) setRotation(u int, order []int) {
	first := e.edges[u].Min()
	last := first
	for _, v := range order {
		e.link(u, last, v)
		last = v
	}
	e.link(u, last, first)
}

// Enumerate calls fn with every rotation system of X, stopping early if fn returns false.
//
// Mirror images are produced once: the first vertex of degree greater than two is only
// visited with the successor of its smallest neighbor below the predecessor.  The
// Embedding passed to fn is reused between calls and must be copied to be retained.
func Enumerate(X *graph.Graph, fn func(e *Embedding) bool) {
	e := Simple(X)
	nodes := e.nodes.Slice()
	if len(nodes) == 0 {
		fn(&e)
		return
	}

	flip := -1
	for _, u := range nodes {
		if X.Degree(u) > 2 {
			flip = u
			break
		}
	}

	choices := make([][][]int, len(nodes))
	for i, u := range nodes {
		if nbrs := X.Neighbors(u); !nbrs.IsEmpty() {
			choices[i] = rotations(nbrs)
			e.setRotation(u, choices[i][0])
		}
	}

	digits := make([]int, len(nodes))
	for {
		if flip < 0 || e.keepsOrientation(flip) {
			if !fn(&e) {
				return
			}
		}

		// advance the odometer, last vertex fastest
		i := len(nodes) - 1
		for ; i >= 0; i-- {
			if len(choices[i]) < 2 {
				continue
			}
			digits[i]++
			if digits[i] < len(choices[i]) {
				e.setRotation(nodes[i], choices[i][digits[i]])
				break
			}
			digits[i] = 0
			e.setRotation(nodes[i], choices[i][0])
		}
		if i < 0 {
			return
		}
	}
}

func (e *Embedding) keepsOrientation(u int) bool {
	j := e.edges[u].Min()
	return e.next[u][j] < e.prev[u][j]
}

// EnumerateGenus calls fn with every rotation system of X of the given genus.
func EnumerateGenus(X *graph.Graph, genus int, fn func(e *Embedding) bool) {
	Enumerate(X, func(e *Embedding) bool {
		if e.Genus() != genus {
			return true
		}
		return fn(e)
	})
}

// CountGenus returns the number of rotation systems of X, up to reflection, having the given genus.
func CountGenus(X *graph.Graph, genus int) int {
	count := 0
	EnumerateGenus(X, genus, func(*Embedding) bool {
		count++
		return true
	})
	return count
}
