package cover

// Option configures Evaluate via functional arguments.
type Option func(*Options)

// Options holds the tunables of Evaluate.
type Options struct {
	// SearchLimit is the largest graph order for which the exhaustive
	// minimum-cover search runs. Graphs above it yield ValidUnknownOptimality
	// for valid covers. A negative limit disables the search entirely.
	SearchLimit int

	// SkipRedundancy disables the per-vertex redundancy scan of valid covers.
	SkipRedundancy bool
}

// DefaultOptions returns Options with SearchLimit = DefaultSearchLimit and
// the redundancy scan enabled.
func DefaultOptions() Options {
	return Options{
		SearchLimit: DefaultSearchLimit,
	}
}

// WithSearchLimit sets the largest order searched exhaustively.
func WithSearchLimit(limit int) Option {
	return func(o *Options) {
		o.SearchLimit = limit
	}
}

// WithoutRedundancy skips computing EvaluationResult.Redundant.
func WithoutRedundancy() Option {
	return func(o *Options) {
		o.SkipRedundancy = true
	}
}

// Evaluate validates chosen against g, computes the minimum cover when g is
// small enough, and classifies the placement:
//
//  1. SelectedSize = chosen.Len() (distinct indices).
//  2. Check(g, chosen).
//  3. MinimumCover(g, SearchLimit), independent of chosen.
//  4. Classification, first match wins:
//     SelectedSize == 0           → EmptyPlacement
//     !Check.IsValid              → InvalidCover
//     optimum known, size equal   → Optimal
//     optimum known, size larger  → SuboptimalValid
//     optimum known, size smaller → AnomalousBetterThanOptimum
//     optimum unknown             → ValidUnknownOptimality
//
// Evaluate never fails and never panics: every input produces a result.
// Repeated calls with equal inputs produce equal results, witness included.
//
// Complexity: dominated by MinimumCover, O(2ⁿ · m) for n ≤ SearchLimit.
func Evaluate(g Graph, chosen VertexSet, opts ...Option) EvaluationResult {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	res := EvaluationResult{
		SelectedSize: chosen.Len(),
		Check:        Check(g, chosen),
	}
	if best, ok := MinimumCover(g, o.SearchLimit); ok {
		res.Optimum = &best
	}
	res.Outcome = classify(res.SelectedSize, res.Check.IsValid, res.Optimum)
	if res.Check.IsValid && !o.SkipRedundancy {
		res.Redundant = Redundant(g, chosen)
	}

	return res
}

func classify(selected int, valid bool, optimum *MinimumCoverResult) Outcome {
	switch {
	case selected == 0:
		return EmptyPlacement
	case !valid:
		return InvalidCover
	case optimum == nil:
		return ValidUnknownOptimality
	case selected == optimum.Size:
		return Optimal
	case selected > optimum.Size:
		return SuboptimalValid
	default:
		return AnomalousBetterThanOptimum
	}
}
