package bridges

import (
	"math/bits"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"
)

// slotSet is an ordered set of slot handles.
type slotSet interface {
	Has(i int) bool
	Add(i int)
	Remove(i int)
	Min() int // -1 if empty
	Len() int
	Slice() []int
	Clone() slotSet
}

// wordSet holds handles 0..63 in a single word.
type wordSet struct {
	w uint64
}

func newWordSet() slotSet {
	return &wordSet{}
}

func (s *wordSet) Has(i int) bool {
	return s.w&(1<<uint(i)) != 0
}

func (s *wordSet) Add(i int) {
	if i >= gotorus.SlotCapacity {
		panic("bridges: slot outside word capacity")
	}
	s.w |= 1 << uint(i)
}

func (s *wordSet) Remove(i int) {
	s.w &^= 1 << uint(i)
}

func (s *wordSet) Min() int {
	if s.w == 0 {
		return -1
	}
	return bits.TrailingZeros64(s.w)
}

func (s *wordSet) Len() int {
	return bits.OnesCount64(s.w)
}

func (s *wordSet) Slice() []int {
	out := make([]int, 0, s.Len())
	for w := s.w; w != 0; w &= w - 1 {
		out = append(out, bits.TrailingZeros64(w))
	}
	return out
}

func (s *wordSet) Clone() slotSet {
	return &wordSet{s.w}
}

// treeSet holds any number of handles in a red-black tree.
type treeSet struct {
	tree *redblacktree.Tree
}

func newTreeSet() slotSet {
	return &treeSet{
		tree: &redblacktree.Tree{Comparator: utils.IntComparator},
	}
}

func (s *treeSet) Has(i int) bool {
	_, found := s.tree.Get(i)
	return found
}

func (s *treeSet) Add(i int) {
	s.tree.Put(i, nil)
}

func (s *treeSet) Remove(i int) {
	s.tree.Remove(i)
}

func (s *treeSet) Min() int {
	if node := s.tree.Left(); node != nil {
		return node.Key.(int)
	}
	return -1
}

func (s *treeSet) Len() int {
	return s.tree.Size()
}

func (s *treeSet) Slice() []int {
	keys := s.tree.Keys()
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = k.(int)
	}
	return out
}

func (s *treeSet) Clone() slotSet {
	dup := newTreeSet().(*treeSet)
	for _, k := range s.tree.Keys() {
		dup.tree.Put(k, nil)
	}
	return dup
}

// arena stores values in reusable slots addressed by integer handles.
// Freed slots are reused smallest first.
type arena[T any] struct {
	items []T
	live  slotSet
	free  slotSet
	limit int // 0 means unbounded
}

func newArena[T any](newSet func() slotSet, limit int) arena[T] {
	return arena[T]{
		live:  newSet(),
		free:  newSet(),
		limit: limit,
	}
}

func (a *arena[T]) push(v T) (int, error) {
	if i := a.free.Min(); i >= 0 {
		a.free.Remove(i)
		a.items[i] = v
		a.live.Add(i)
		return i, nil
	}
	i := len(a.items)
	if a.limit > 0 && i >= a.limit {
		return -1, errors.Wrapf(gotorus.ErrCapacityExceeded, "all %d slots in use", a.limit)
	}
	a.items = append(a.items, v)
	a.live.Add(i)
	return i, nil
}

func (a *arena[T]) take(i int) T {
	v := a.items[i]
	var zero T
	a.items[i] = zero
	a.live.Remove(i)
	a.free.Add(i)
	return v
}

func (a *arena[T]) clone() arena[T] {
	return arena[T]{
		items: append([]T(nil), a.items...),
		live:  a.live.Clone(),
		free:  a.free.Clone(),
		limit: a.limit,
	}
}
