// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// api.go - public entry point for assembling puzzle graphs.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order
//     against a fresh graphBuffer, then applies post-passes (shuffle).
//   - Every constructor appends a disjoint component: its vertices are numbered
//     right after the vertices added by earlier constructors.
//   - Determinism: same constructors, order, options and seed ⇒ identical cover.Graph.
//   - Safety: never panic at runtime; return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vertexcover/cover"
)

// Constructor appends one component to the graph under construction.
// Constructors MUST:
//   - Validate parameters before touching the buffer and return sentinel errors.
//   - Allocate vertices through b.addVertices and emit edges in a documented order.
//   - Stay deterministic for the same cfg and call order.
type Constructor func(b *graphBuffer, cfg builderConfig) error

// graphBuffer accumulates vertices and edges while constructors run.
type graphBuffer struct {
	n     int
	edges []cover.Edge
}

// addVertices reserves k new vertices and returns the index of the first.
func (b *graphBuffer) addVertices(k int) int {
	base := b.n
	b.n += k
	return base
}

// addEdge appends the undirected edge u—v.
func (b *graphBuffer) addEdge(u, v int) {
	b.edges = append(b.edges, cover.Edge{u, v})
}

// graph snapshots the buffer as an immutable cover.Graph.
func (b *graphBuffer) graph() cover.Graph {
	edges := make([]cover.Edge, len(b.edges))
	copy(edges, b.edges)
	return cover.Graph{N: b.n, Edges: edges}
}

// BuildGraph resolves the builder configuration from bopts, applies every
// constructor in order and returns the resulting graph. Any constructor error
// is wrapped as "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//   - Shuffle post-pass (WithShuffle): O(n + m).
//
// Errors: callers branch with errors.Is against ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (cover.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	if len(cons) == 0 {
		return cover.Graph{}, fmt.Errorf("BuildGraph: no constructors: %w", ErrConstructFailed)
	}

	b := &graphBuffer{}
	for i, fn := range cons {
		if fn == nil {
			return cover.Graph{}, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return cover.Graph{}, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if cfg.shuffle {
		if cfg.rng == nil {
			return cover.Graph{}, fmt.Errorf("BuildGraph: shuffle: %w", ErrNeedRandSource)
		}
		shuffle(b, cfg)
	}

	return b.graph(), nil
}

// shuffle relabels vertices with a random permutation and permutes edge order,
// hiding the constructor's regular numbering from players.
func shuffle(b *graphBuffer, cfg builderConfig) {
	perm := cfg.rng.Perm(b.n)
	for i, e := range b.edges {
		b.edges[i] = cover.Edge{perm[e[0]], perm[e[1]]}
	}
	cfg.rng.Shuffle(len(b.edges), func(i, j int) {
		b.edges[i], b.edges[j] = b.edges[j], b.edges[i]
	})
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Path(n)                  P_n, n ≥ 2, edges i—i+1.
// Cycle(n)                 C_n, n ≥ 3, edges i—(i+1) mod n.
// Star(n)                  hub + n-1 leaves, n ≥ 2; hub is the first index.
// Wheel(n)                 C_{n-1} rim + hub, n ≥ 4; hub is the last index.
// Complete(n)              K_n, n ≥ 1, pairs i<j in lexicographic order.
// CompleteBipartite(a, b)  K_{a,b}, a,b ≥ 1; left side first.
// Grid(rows, cols)         4-neighbourhood grid, row-major indices.
// RandomSparse(n, p)       Erdős–Rényi G(n,p); needs an RNG for 0 < p < 1.
// ForestFire()             the fixed 9-vertex "forest fire" board.
