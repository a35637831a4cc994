package cover

// Redundant returns, in ascending order, the members of s that can each be
// dropped on their own while s still covers g. A cover with no redundant
// member is minimal (no proper subset obtained by one removal is a cover),
// which is weaker than being a minimum cover.
//
// If s does not cover g the result is empty: removing vertices never turns
// a non-cover into a cover. Never nil.
//
// Complexity: O(k · m) for k = s.Len().
func Redundant(g Graph, s VertexSet) []int {
	out := make([]int, 0)
	if !coversAll(g.Edges, s) {
		return out
	}
	for _, v := range s.Sorted() {
		if coversAll(g.Edges, without{s, v}) {
			out = append(out, v)
		}
	}

	return out
}

// without views s minus one vertex without copying the set.
type without struct {
	s VertexSet
	v int
}

func (w without) Has(u int) bool { return u != w.v && w.s.Has(u) }
