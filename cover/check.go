package cover

// Check reports whether s covers every edge of g.
//
// Edges are scanned in their original order; an edge is uncovered iff
// neither endpoint is in s. IsValid is true iff no edge is uncovered, so a
// graph without edges is covered by any set, the empty one included.
//
// Indices in s outside [0, g.N) are accepted and never match.
//
// Complexity: O(m) time, O(u) extra space for u uncovered edges.
func Check(g Graph, s VertexSet) CoverCheckResult {
	uncovered := uncoveredEdges(g.Edges, s)

	return CoverCheckResult{
		IsValid:   len(uncovered) == 0,
		Uncovered: uncovered,
	}
}

// uncoveredEdges collects edges with no endpoint in m, preserving order.
func uncoveredEdges(edges []Edge, m membership) []Edge {
	out := make([]Edge, 0)
	for _, e := range edges {
		if !edgeCovered(e, m) {
			out = append(out, e)
		}
	}

	return out
}

// coversAll is the early-exit form of uncoveredEdges used by the search.
func coversAll(edges []Edge, m membership) bool {
	for _, e := range edges {
		if !edgeCovered(e, m) {
			return false
		}
	}

	return true
}

func edgeCovered(e Edge, m membership) bool {
	return m.Has(e[0]) || m.Has(e[1])
}
