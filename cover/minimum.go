package cover

// MinimumCover finds a minimum vertex cover of g by exhaustive search.
//
// The search is skipped when g.N > limit: the second result is then false,
// meaning "optimum unknown". That is a defined outcome, not a failure; the
// limit is the only tractability control, checked before any work is done.
//
// Algorithm:
//   - g.N == 0: return {Size: 0, Cover: []} immediately.
//   - For r = 0, 1, …, g.N enumerate subsets of size r with Combinations
//     (lexicographic order) and test each with the same coverage predicate
//     Check uses. The first covering subset is returned with Size = r.
//     r = 0 succeeds exactly when g has no edges.
//
// Because sizes are tried in increasing order, Size is the true minimum.
// The witness is the lexicographically first cover of that size, so the
// result is deterministic.
//
// A graph whose edges reference indices outside [0, N) may have no cover
// among 0..N-1; the search then exhausts every subset and reports false.
//
// Complexity: O(2ⁿ · m) time worst case, O(n) space.
func MinimumCover(g Graph, limit int) (MinimumCoverResult, bool) {
	n := g.N
	if n > limit {
		return MinimumCoverResult{}, false
	}
	if n <= 0 {
		return MinimumCoverResult{Size: 0, Cover: []int{}}, true
	}

	candidate := newBitset(n)
	var witness []int
	for r := 0; r <= n; r++ {
		Combinations(n, r, func(subset []int) bool {
			candidate.reset()
			for _, v := range subset {
				candidate.set(v)
			}
			if coversAll(g.Edges, candidate) {
				witness = append(make([]int, 0, r), subset...)
				return false // stop: first success of minimum size
			}
			return true
		})
		if witness != nil {
			return MinimumCoverResult{Size: r, Cover: witness}, true
		}
	}

	return MinimumCoverResult{}, false
}
