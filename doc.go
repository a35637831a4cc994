// Package vertexcover scores vertex-cover placements: given a graph and a set
// of chosen vertices, it checks whether every edge is covered and compares
// the placement against a true minimum cover.
//
// 🔥 The game
//
//	Mountains are vertices, roads are edges. A water tank on a mountain
//	protects every road touching it. Place as few tanks as possible so that
//	no road is left unprotected.
//
// 🧩 Layout
//
//	cover/             Check, MinimumCover, Evaluate and the Outcome classes
//	builder/           deterministic puzzle graphs (path, cycle, wheel, grid, forest fire…)
//	internal/puzzle/   YAML/JSON puzzle documents and the built-in catalog
//	internal/api/      HTTP API (gin), metrics, tracing, localized messages
//	internal/history/  SQLite attempt history
//	cmd/vcover/        CLI: serve, evaluate, batch, generate, puzzles
//
// Quick ASCII example:
//
//	0───1───2      chosen {1}    → optimal (1 tank)
//	               chosen {0}    → invalid (road 1─2 burns)
//	               chosen {0,2}  → valid, but 2 > 1
//
// The minimum cover is found by exhaustive search in lexicographic order, so
// it is exact and reproducible but limited to small graphs (20 vertices by
// default). Larger graphs are still checked; their optimality is reported as
// unknown.
//
//	go install github.com/katalvlaran/vertexcover/cmd/vcover@latest
package vertexcover
