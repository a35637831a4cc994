package cover

import (
	"errors"
	"fmt"
)

// DefaultSearchLimit is the largest graph order for which Evaluate runs the
// exhaustive minimum-cover search unless overridden by WithSearchLimit.
const DefaultSearchLimit = 20

// Sentinel errors reported by Graph.Validate. The engine itself never
// returns them; they exist for callers that want to reject malformed graphs
// before evaluation.
var (
	// ErrNegativeOrder indicates Graph.N < 0.
	ErrNegativeOrder = errors.New("cover: graph order is negative")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, N).
	ErrVertexOutOfRange = errors.New("cover: edge endpoint out of range")
)

// Edge is an unordered pair of vertex indices. It encodes as a two-element
// array ([u, v]) in JSON and YAML.
type Edge [2]int

// U returns the first endpoint.
func (e Edge) U() int { return e[0] }

// V returns the second endpoint.
func (e Edge) V() int { return e[1] }

// Graph is an undirected graph over the vertices 0..N-1.
//
// Edges keep their input order, which is also the order of
// CoverCheckResult.Uncovered. Parallel edges and self-loops are permitted.
// A Graph is never mutated by this package.
type Graph struct {
	N     int    `json:"n" yaml:"n"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Validate reports whether g is well formed: N ≥ 0 and every edge endpoint
// lies in [0, N). The first offending edge is named in the wrapped error.
// Complexity: O(m).
func (g Graph) Validate() error {
	if g.N < 0 {
		return fmt.Errorf("Validate: n=%d: %w", g.N, ErrNegativeOrder)
	}
	for i, e := range g.Edges {
		for _, v := range e {
			if v < 0 || v >= g.N {
				return fmt.Errorf("Validate: edge #%d [%d,%d] with n=%d: %w",
					i, e[0], e[1], g.N, ErrVertexOutOfRange)
			}
		}
	}

	return nil
}

// CoverCheckResult is the outcome of Check.
type CoverCheckResult struct {
	// IsValid is true iff Uncovered is empty.
	IsValid bool

	// Uncovered lists, in original edge order, every edge with neither
	// endpoint in the checked set. Never nil.
	Uncovered []Edge
}

// MinimumCoverResult is a minimum vertex cover found by MinimumCover.
type MinimumCoverResult struct {
	// Size is the true minimum cover size.
	Size int

	// Cover is the witness: Size vertex indices in ascending order. It is the
	// first covering subset in lexicographic order, so repeated calls on the
	// same graph return the same witness. Never nil.
	Cover []int
}

// Outcome classifies an evaluated placement.
type Outcome int

const (
	// EmptyPlacement: the chosen set is empty.
	EmptyPlacement Outcome = iota
	// InvalidCover: at least one edge has no chosen endpoint.
	InvalidCover
	// Optimal: valid cover whose size equals the minimum.
	Optimal
	// SuboptimalValid: valid cover larger than the minimum.
	SuboptimalValid
	// AnomalousBetterThanOptimum: valid cover smaller than the computed
	// minimum. Unreachable while Check and MinimumCover agree; observing it
	// means one of them is wrong.
	AnomalousBetterThanOptimum
	// ValidUnknownOptimality: valid cover, minimum not computed because the
	// graph exceeds the search limit.
	ValidUnknownOptimality
)

var outcomeNames = [...]string{
	EmptyPlacement:             "empty_placement",
	InvalidCover:               "invalid_cover",
	Optimal:                    "optimal",
	SuboptimalValid:            "suboptimal_valid",
	AnomalousBetterThanOptimum: "anomalous_better_than_optimum",
	ValidUnknownOptimality:     "valid_unknown_optimality",
}

// String returns the snake_case name of o.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(outcomeNames) {
		return nil, fmt.Errorf("cover: unknown outcome %d", int(o))
	}
	return []byte(outcomeNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	for i, name := range outcomeNames {
		if name == string(text) {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("cover: unknown outcome %q", text)
}

// IsValidCover reports whether the outcome implies the placement covers every edge.
func (o Outcome) IsValidCover() bool {
	switch o {
	case Optimal, SuboptimalValid, AnomalousBetterThanOptimum, ValidUnknownOptimality:
		return true
	}
	return false
}

// EvaluationResult aggregates everything Evaluate learned about a placement.
type EvaluationResult struct {
	// SelectedSize is the number of distinct chosen indices.
	SelectedSize int

	// Check is the coverage verdict for the chosen set.
	Check CoverCheckResult

	// Optimum is the minimum cover, nil when the graph exceeded the search limit.
	Optimum *MinimumCoverResult

	// Outcome is the classification of the placement.
	Outcome Outcome

	// Redundant lists chosen vertices (ascending) that could each be removed
	// while keeping the placement a cover. Only filled for valid covers.
	Redundant []int
}

// OptimalSize returns the minimum cover size and whether it is known.
func (r EvaluationResult) OptimalSize() (int, bool) {
	if r.Optimum == nil {
		return 0, false
	}
	return r.Optimum.Size, true
}

// IsMinimal reports whether the placement is a cover from which no single
// vertex can be dropped. A minimal cover need not be a minimum one.
func (r EvaluationResult) IsMinimal() bool {
	return r.Check.IsValid && r.SelectedSize > 0 && len(r.Redundant) == 0
}
