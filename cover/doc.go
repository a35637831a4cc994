// Package cover evaluates a vertex placement against an undirected graph.
//
// It answers two questions about a submitted set of vertices:
//
//   - Check: does the set touch every edge (is it a vertex cover)? If not,
//     which edges are left uncovered, in their original order?
//   - MinimumCover: what is the smallest vertex cover of the graph? This is
//     computed by exhaustive search and only for graphs whose order does not
//     exceed a configurable search limit (DefaultSearchLimit = 20).
//
// Evaluate combines both answers into an EvaluationResult and classifies it
// into one of six Outcome kinds:
//
//	EmptyPlacement              nothing was chosen
//	InvalidCover                some edge has no chosen endpoint
//	Optimal                     valid, and as small as the minimum cover
//	SuboptimalValid             valid, but larger than the minimum cover
//	AnomalousBetterThanOptimum  valid and smaller than the "minimum" (solver/validator disagreement)
//	ValidUnknownOptimality      valid, minimum not computed (graph above the search limit)
//
// Graph model:
//
//	Vertices are the integers 0..N-1. Edges are unordered pairs; duplicates
//	and self-loops are allowed and need no special handling. A VertexSet may
//	hold any integer: indices outside [0, N) never match an edge endpoint and
//	are therefore inert.
//
// Quick example (a path 0─1─2):
//
//	g := cover.Graph{N: 3, Edges: []cover.Edge{{0, 1}, {1, 2}}}
//	res := cover.Evaluate(g, cover.NewVertexSet(1))
//	// res.Outcome == cover.Optimal, res.OptimalSize() == (1, true)
//
// Complexity:
//   - Check:        O(|S| + m)
//   - MinimumCover: O(2ⁿ · m) worst case, bounded by the search limit
//
// Every function in this package is pure: no logging, no globals, no panics
// on any graph or vertex set. Concurrent calls need no coordination.
package cover
