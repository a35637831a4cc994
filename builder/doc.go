// Package builder assembles deterministic puzzle graphs for vertex-cover
// evaluation.
//
// Each Constructor appends one disjoint component to the graph under
// construction; BuildGraph runs them in order and returns a cover.Graph:
//
//	g, err := builder.BuildGraph(nil, builder.Cycle(6), builder.Star(4))
//	// g.N == 10: the cycle uses 0..5, the star 6..9 with hub 6.
//
// Topologies and their minimum cover sizes:
//
//	Path(n)                 ⌊n/2⌋
//	Cycle(n)                ⌈n/2⌉
//	Star(n)                 1
//	Wheel(n)                ⌈(n-1)/2⌉ + 1
//	Complete(n)             n-1
//	CompleteBipartite(a,b)  min(a,b)
//	Grid(r,c)               maximum matching size (König)
//	RandomSparse(n,p)       -
//	ForestFire()            5
//
// Options:
//   - WithSeed / WithRand: RNG for RandomSparse and WithShuffle.
//   - WithShuffle: relabel vertices and reorder edges after construction so
//     the regular numbering does not give the answer away.
//
// Guarantees:
//   - Same constructors, options and seed ⇒ identical graphs.
//   - Invalid parameters yield sentinel errors (errors.Is); option
//     constructors panic only on nil RNG.
//   - Every edge endpoint lies in [0, N).
package builder
