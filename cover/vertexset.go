package cover

import "sort"

// membership is the coverage predicate's view of a vertex set.
type membership interface {
	Has(v int) bool
}

// VertexSet is a set of vertex indices with O(1) membership.
//
// Any int may be stored, including negative values and indices ≥ Graph.N;
// they simply never match an edge endpoint. The zero value is an empty set
// ready for use.
type VertexSet struct {
	m map[int]struct{}
}

// NewVertexSet returns a set holding the distinct values of indices.
// Duplicates are collapsed. Complexity: O(len(indices)).
func NewVertexSet(indices ...int) VertexSet {
	s := VertexSet{m: make(map[int]struct{}, len(indices))}
	for _, v := range indices {
		s.m[v] = struct{}{}
	}

	return s
}

// Add inserts v and reports whether it was absent.
func (s *VertexSet) Add(v int) bool {
	if s.m == nil {
		s.m = make(map[int]struct{})
	}
	if _, ok := s.m[v]; ok {
		return false
	}
	s.m[v] = struct{}{}
	return true
}

// Has reports whether v is in the set.
func (s VertexSet) Has(v int) bool {
	_, ok := s.m[v]
	return ok
}

// Len returns the number of distinct indices.
func (s VertexSet) Len() int { return len(s.m) }

// Sorted returns the indices in ascending order. Never nil.
func (s VertexSet) Sorted() []int {
	out := make([]int, 0, len(s.m))
	for v := range s.m {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// bitset is a fixed-capacity set over 0..n-1 used by the exhaustive search,
// where candidates are dense and rebuilt per subset.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

// Has reports whether v is set. Out-of-range v is never set.
func (b bitset) Has(v int) bool {
	if v < 0 || v>>6 >= len(b) {
		return false
	}
	return b[v>>6]&(1<<(uint(v)&63)) != 0
}

func (b bitset) set(v int) { b[v>>6] |= 1 << (uint(v) & 63) }

func (b bitset) reset() {
	for i := range b {
		b[i] = 0
	}
}
