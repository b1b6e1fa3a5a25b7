package graph

import (
	"math/bits"
	"strconv"
	"strings"
)

// Single returns the set containing only u.
func Single(u int) Set {
	return Set(1) << uint(u)
}

// Range returns the set {0, .., n-1}.
func Range(n int) Set {
	if n >= MaxNodes {
		return ^Set(0)
	}
	return Single(n) - 1
}

// SetOf returns the set containing the given vertices.
func SetOf(vs ...int) Set {
	var s Set
	for _, v := range vs {
		s |= Single(v)
	}
	return s
}

func (s Set) Has(u int) bool {
	return s&Single(u) != 0
}

func (s Set) With(u int) Set {
	return s | Single(u)
}

func (s Set) Without(u int) Set {
	return s &^ Single(u)
}

func (s Set) Union(t Set) Set {
	return s | t
}

func (s Set) Intersect(t Set) Set {
	return s & t
}

func (s Set) Minus(t Set) Set {
	return s &^ t
}

// Contains returns true if every element of t is also in s.
func (s Set) Contains(t Set) bool {
	return t&^s == 0
}

func (s Set) IsEmpty() bool {
	return s == 0
}

func (s Set) Count() int {
	return bits.OnesCount64(uint64(s))
}

// Min returns the smallest element of s or -1 if s is empty.
func (s Set) Min() int {
	if s == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(s))
}

// Max returns the largest element of s or -1 if s is empty.
func (s Set) Max() int {
	if s == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(uint64(s))
}

// ForEach calls fn with each element of s in ascending order.
func (s Set) ForEach(fn func(u int)) {
	for s != 0 {
		u := bits.TrailingZeros64(uint64(s))
		s &= s - 1
		fn(u)
	}
}

// Slice returns the elements of s in ascending order.
func (s Set) Slice() []int {
	out := make([]int, 0, s.Count())
	s.ForEach(func(u int) {
		out = append(out, u)
	})
	return out
}

func (s Set) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	first := true
	s.ForEach(func(u int) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(strconv.Itoa(u))
	})
	b.WriteByte('}')
	return b.String()
}

func (e Edge) String() string {
	return strconv.Itoa(e.U) + "-" + strconv.Itoa(e.V)
}
