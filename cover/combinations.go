package cover

// Combinations enumerates every r-element subset of {0, …, n-1} and passes
// it to visit in lexicographic order:
//
//	n=4, r=2: [0 1] [0 2] [0 3] [1 2] [1 3] [2 3]
//
// The order is a contract: it is what makes MinimumCover's witness
// reproducible.
//
// r == 0 yields the empty subset exactly once. r < 0, r > n or n < 0 yields
// nothing. visit may return false to stop early; Combinations then returns
// false as well. The slice passed to visit is reused between calls and must
// be copied to be retained.
//
// Complexity: O(C(n,r)) visits, O(r) amortised work per visit, O(r) space.
func Combinations(n, r int, visit func(subset []int) bool) bool {
	if n < 0 || r < 0 || r > n {
		return true
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !visit(idx) {
			return false
		}
		// Find the rightmost position that can still advance:
		// idx[i] may grow up to n-r+i.
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Binomial returns C(n, r), or 0 when r is outside [0, n].
// Saturates at the max int on overflow.
func Binomial(n, r int) int {
	if r < 0 || n < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r
	}
	const maxInt = int(^uint(0) >> 1)
	c := 1
	for i := 1; i <= r; i++ {
		// c*(n-r+i)/i stays integral at every step.
		k := n - r + i
		if c > maxInt/k {
			return maxInt
		}
		c = c * k / i
	}

	return c
}

// SearchBound returns the number of subsets MinimumCover visits at most when
// the minimum cover of an n-vertex graph has size k: C(n,0) + … + C(n,k).
// It returns 0 for k < 0 and saturates like Binomial.
func SearchBound(n, k int) int {
	const maxInt = int(^uint(0) >> 1)
	total := 0
	for r := 0; r <= k && r <= n; r++ {
		c := Binomial(n, r)
		if total > maxInt-c {
			return maxInt
		}
		total += c
	}

	return total
}
