package cover_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/katalvlaran/vertexcover/cover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// path3 is the 0─1─2 path used by the reference scenarios.
func path3() cover.Graph {
	return cover.Graph{N: 3, Edges: []cover.Edge{{0, 1}, {1, 2}}}
}

// pathN builds 0─1─…─(n-1).
func pathN(n int) cover.Graph {
	g := cover.Graph{N: n}
	for i := 1; i < n; i++ {
		g.Edges = append(g.Edges, cover.Edge{i - 1, i})
	}
	return g
}

// randomGraph samples a graph with n vertices and m edges (loops and
// duplicates allowed) from a fixed seed.
func randomGraph(r *rand.Rand, n, m int) cover.Graph {
	g := cover.Graph{N: n, Edges: make([]cover.Edge, 0, m)}
	for i := 0; i < m; i++ {
		g.Edges = append(g.Edges, cover.Edge{r.Intn(n), r.Intn(n)})
	}
	return g
}

// subsetFromMask expands a bitmask over 0..n-1 into a VertexSet.
func subsetFromMask(n int, mask uint) cover.VertexSet {
	var s cover.VertexSet
	for v := 0; v < n; v++ {
		if mask&(1<<uint(v)) != 0 {
			s.Add(v)
		}
	}
	return s
}

func TestCheck_Scenarios(t *testing.T) {
	g := path3()

	res := cover.Check(g, cover.NewVertexSet(1))
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Uncovered)
	assert.NotNil(t, res.Uncovered)

	res = cover.Check(g, cover.NewVertexSet(0, 2))
	assert.True(t, res.IsValid, "0 and 2 touch both edges")

	res = cover.Check(g, cover.NewVertexSet())
	assert.False(t, res.IsValid)
	assert.Equal(t, []cover.Edge{{0, 1}, {1, 2}}, res.Uncovered)

	res = cover.Check(g, cover.NewVertexSet(2))
	assert.False(t, res.IsValid)
	assert.Equal(t, []cover.Edge{{0, 1}}, res.Uncovered)
}

func TestCheck_InvalidPlacementKeepsEdgeOrder(t *testing.T) {
	g := cover.Graph{N: 5, Edges: []cover.Edge{{3, 4}, {0, 1}, {2, 3}, {1, 0}, {4, 4}}}
	res := cover.Check(g, cover.NewVertexSet(2))
	assert.False(t, res.IsValid)
	assert.Equal(t, []cover.Edge{{3, 4}, {0, 1}, {1, 0}, {4, 4}}, res.Uncovered)
}

func TestCheck_OutOfRangeIndicesAreInert(t *testing.T) {
	g := path3()
	res := cover.Check(g, cover.NewVertexSet(-1, 3, 1000))
	assert.False(t, res.IsValid)
	assert.Equal(t, g.Edges, res.Uncovered)

	res = cover.Check(g, cover.NewVertexSet(-1, 1, 1000))
	assert.True(t, res.IsValid)
}

func TestCheck_NoEdges(t *testing.T) {
	for _, g := range []cover.Graph{{N: 0}, {N: 4}} {
		assert.True(t, cover.Check(g, cover.NewVertexSet()).IsValid)
		assert.True(t, cover.Check(g, cover.NewVertexSet(2)).IsValid)
	}
}

// TestCheck_UncoveredMatchesDefinition compares Check against a direct
// restatement of the definition on random graphs and random sets.
func TestCheck_UncoveredMatchesDefinition(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		n := 1 + r.Intn(8)
		g := randomGraph(r, n, r.Intn(12))
		s := subsetFromMask(n, uint(r.Intn(1<<uint(n))))

		want := make([]cover.Edge, 0)
		for _, e := range g.Edges {
			if !s.Has(e[0]) && !s.Has(e[1]) {
				want = append(want, e)
			}
		}
		got := cover.Check(g, s)
		require.Equal(t, want, got.Uncovered)
		require.Equal(t, len(want) == 0, got.IsValid)
	}
}

func TestCheck_Monotonicity(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for iter := 0; iter < 200; iter++ {
		n := 1 + r.Intn(7)
		g := randomGraph(r, n, r.Intn(10))
		mask := uint(r.Intn(1 << uint(n)))
		if !cover.Check(g, subsetFromMask(n, mask)).IsValid {
			continue
		}
		super := mask | uint(r.Intn(1<<uint(n)))
		assert.True(t, cover.Check(g, subsetFromMask(n, super)).IsValid,
			"superset %b of valid cover %b must be valid", super, mask)
	}
}

func TestMinimumCover_Basic(t *testing.T) {
	res, ok := cover.MinimumCover(path3(), cover.DefaultSearchLimit)
	require.True(t, ok)
	assert.Equal(t, 1, res.Size)
	assert.Equal(t, []int{1}, res.Cover)

	// Triangle: any two vertices; lexicographically first is [0 1].
	tri := cover.Graph{N: 3, Edges: []cover.Edge{{0, 1}, {1, 2}, {2, 0}}}
	res, ok = cover.MinimumCover(tri, cover.DefaultSearchLimit)
	require.True(t, ok)
	assert.Equal(t, 2, res.Size)
	assert.Equal(t, []int{0, 1}, res.Cover)

	// Self-loop forces its vertex.
	loop := cover.Graph{N: 3, Edges: []cover.Edge{{2, 2}}}
	res, ok = cover.MinimumCover(loop, cover.DefaultSearchLimit)
	require.True(t, ok)
	assert.Equal(t, []int{2}, res.Cover)
}

func TestMinimumCover_EmptyAndEdgeless(t *testing.T) {
	res, ok := cover.MinimumCover(cover.Graph{}, cover.DefaultSearchLimit)
	require.True(t, ok)
	assert.Equal(t, 0, res.Size)
	assert.NotNil(t, res.Cover)
	assert.Empty(t, res.Cover)

	// No edges but vertices: r = 0 is a candidate.
	res, ok = cover.MinimumCover(cover.Graph{N: 6}, cover.DefaultSearchLimit)
	require.True(t, ok)
	assert.Equal(t, 0, res.Size)
	assert.Empty(t, res.Cover)
}

func TestMinimumCover_Limit(t *testing.T) {
	g := pathN(25)
	_, ok := cover.MinimumCover(g, cover.DefaultSearchLimit)
	assert.False(t, ok, "n=25 exceeds default limit")

	_, ok = cover.MinimumCover(path3(), 2)
	assert.False(t, ok, "n=3 exceeds limit 2")

	res, ok := cover.MinimumCover(path3(), 3)
	assert.True(t, ok, "limit is inclusive")
	assert.Equal(t, 1, res.Size)

	_, ok = cover.MinimumCover(cover.Graph{}, -1)
	assert.False(t, ok, "a negative limit disables the search")
}

func TestMinimumCover_UncoverableOutOfRangeEdge(t *testing.T) {
	g := cover.Graph{N: 2, Edges: []cover.Edge{{5, 6}}}
	_, ok := cover.MinimumCover(g, cover.DefaultSearchLimit)
	assert.False(t, ok)
}

// TestMinimumCover_IsTrueMinimum checks the solver against every subset of
// small random graphs.
func TestMinimumCover_IsTrueMinimum(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for iter := 0; iter < 150; iter++ {
		n := 1 + r.Intn(8)
		g := randomGraph(r, n, r.Intn(14))

		res, ok := cover.MinimumCover(g, cover.DefaultSearchLimit)
		require.True(t, ok)
		require.Len(t, res.Cover, res.Size)
		require.True(t, cover.Check(g, cover.NewVertexSet(res.Cover...)).IsValid, "witness must cover")

		for mask := uint(0); mask < 1<<uint(n); mask++ {
			s := subsetFromMask(n, mask)
			if cover.Check(g, s).IsValid {
				require.LessOrEqual(t, res.Size, s.Len(), "graph %+v mask %b", g, mask)
			}
		}
	}
}

func TestMinimumCover_Deterministic(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	g := randomGraph(r, 12, 20)
	first, ok := cover.MinimumCover(g, cover.DefaultSearchLimit)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, _ := cover.MinimumCover(g, cover.DefaultSearchLimit)
		assert.Equal(t, first, again)
	}
}

func TestCombinations_Order(t *testing.T) {
	var got [][]int
	cover.Combinations(4, 2, func(s []int) bool {
		got = append(got, append([]int(nil), s...))
		return true
	})
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)
}

func TestCombinations_EdgeCases(t *testing.T) {
	count := func(n, r int) int {
		c := 0
		cover.Combinations(n, r, func([]int) bool { c++; return true })
		return c
	}
	assert.Equal(t, 1, count(0, 0))
	assert.Equal(t, 1, count(5, 0))
	assert.Equal(t, 1, count(5, 5))
	assert.Equal(t, 0, count(3, 4))
	assert.Equal(t, 0, count(3, -1))
	assert.Equal(t, 0, count(-1, 0))
	for n := 0; n <= 10; n++ {
		for r := 0; r <= n; r++ {
			assert.Equal(t, cover.Binomial(n, r), count(n, r), "C(%d,%d)", n, r)
		}
	}
}

func TestCombinations_Stop(t *testing.T) {
	seen := 0
	done := cover.Combinations(6, 3, func([]int) bool {
		seen++
		return seen < 4
	})
	assert.False(t, done)
	assert.Equal(t, 4, seen)
}

func TestSearchBound(t *testing.T) {
	assert.Equal(t, 0, cover.SearchBound(5, -1))
	assert.Equal(t, 1, cover.SearchBound(0, 0))
	assert.Equal(t, 1+5+10, cover.SearchBound(5, 2))
	assert.Equal(t, 1<<5, cover.SearchBound(5, 9))
	assert.Equal(t, int(^uint(0)>>1), cover.SearchBound(200, 150))

	// MinimumCover never visits more subsets than the bound for its answer.
	g := cover.Graph{N: 5, Edges: []cover.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 4}}}
	best, ok := cover.MinimumCover(g, cover.DefaultSearchLimit)
	require.True(t, ok)
	visited := 0
	for r := 0; r <= best.Size; r++ {
		cover.Combinations(g.N, r, func([]int) bool { visited++; return true })
	}
	assert.Equal(t, cover.SearchBound(g.N, best.Size), visited)
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 0, cover.Binomial(3, 4))
	assert.Equal(t, 1, cover.Binomial(0, 0))
	assert.Equal(t, 184756, cover.Binomial(20, 10))
	assert.Equal(t, int(^uint(0)>>1), cover.Binomial(200, 100))
}

func TestEvaluate_Scenarios(t *testing.T) {
	g := path3()
	tests := []struct {
		name         string
		chosen       []int
		wantValid    bool
		wantUncov    []cover.Edge
		wantSelected int
		wantOutcome  cover.Outcome
	}{
		{"optimal", []int{1}, true, []cover.Edge{}, 1, cover.Optimal},
		{"invalid", []int{0}, false, []cover.Edge{{1, 2}}, 1, cover.InvalidCover},
		{"suboptimal", []int{0, 1, 2}, true, []cover.Edge{}, 3, cover.SuboptimalValid},
		{"duplicates deduped", []int{1, 1, 1}, true, []cover.Edge{}, 1, cover.Optimal},
		{"empty", nil, false, []cover.Edge{{0, 1}, {1, 2}}, 0, cover.EmptyPlacement},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := cover.Evaluate(g, cover.NewVertexSet(tc.chosen...))
			assert.Equal(t, tc.wantValid, res.Check.IsValid)
			assert.Equal(t, tc.wantUncov, res.Check.Uncovered)
			assert.Equal(t, tc.wantSelected, res.SelectedSize)
			assert.Equal(t, tc.wantOutcome, res.Outcome)
			size, ok := res.OptimalSize()
			assert.True(t, ok)
			assert.Equal(t, 1, size)
		})
	}
}

func TestEvaluate_InvalidCoverOnLongerPath(t *testing.T) {
	g := cover.Graph{N: 4, Edges: []cover.Edge{{0, 1}, {1, 2}, {2, 3}}}
	res := cover.Evaluate(g, cover.NewVertexSet(0, 3))
	assert.Equal(t, cover.InvalidCover, res.Outcome)
	assert.Equal(t, []cover.Edge{{1, 2}}, res.Check.Uncovered)
	assert.Nil(t, res.Redundant)
}

func TestEvaluate_EmptyGraph(t *testing.T) {
	g := cover.Graph{}
	for _, chosen := range [][]int{nil, {0}, {4, 5}} {
		res := cover.Evaluate(g, cover.NewVertexSet(chosen...))
		assert.True(t, res.Check.IsValid)
		size, ok := res.OptimalSize()
		require.True(t, ok)
		assert.Equal(t, 0, size)
	}
	// Empty placement wins over validity.
	assert.Equal(t, cover.EmptyPlacement, cover.Evaluate(g, cover.NewVertexSet()).Outcome)
	// Any non-empty placement on an edgeless graph is larger than the optimum.
	assert.Equal(t, cover.SuboptimalValid, cover.Evaluate(g, cover.NewVertexSet(0)).Outcome)
}

func TestEvaluate_AboveLimit(t *testing.T) {
	g := pathN(25)
	odd := make([]int, 0, 12)
	for v := 1; v < 25; v += 2 {
		odd = append(odd, v)
	}
	res := cover.Evaluate(g, cover.NewVertexSet(odd...))
	assert.True(t, res.Check.IsValid)
	assert.Nil(t, res.Optimum)
	assert.Equal(t, cover.ValidUnknownOptimality, res.Outcome)

	res = cover.Evaluate(g, cover.NewVertexSet(0))
	assert.Equal(t, cover.InvalidCover, res.Outcome)

	// Raising the limit makes a path above the default searchable (⌊21/2⌋ = 10).
	g = pathN(21)
	odd = odd[:10]
	res = cover.Evaluate(g, cover.NewVertexSet(odd...))
	assert.Equal(t, cover.ValidUnknownOptimality, res.Outcome)
	res = cover.Evaluate(g, cover.NewVertexSet(odd...), cover.WithSearchLimit(21), cover.WithoutRedundancy())
	require.NotNil(t, res.Optimum)
	assert.Equal(t, 10, res.Optimum.Size)
	assert.Equal(t, cover.Optimal, res.Outcome)
	assert.Nil(t, res.Redundant)
}

func TestEvaluate_NegativeLimitDisablesSearch(t *testing.T) {
	res := cover.Evaluate(path3(), cover.NewVertexSet(1), cover.WithSearchLimit(-1))
	assert.Nil(t, res.Optimum)
	assert.Equal(t, cover.ValidUnknownOptimality, res.Outcome)
}

func TestEvaluate_Redundancy(t *testing.T) {
	g := path3()
	res := cover.Evaluate(g, cover.NewVertexSet(0, 1, 2))
	assert.Equal(t, []int{0, 1, 2}, res.Redundant, "each vertex alone can go")
	assert.False(t, res.IsMinimal())

	res = cover.Evaluate(g, cover.NewVertexSet(0, 2))
	assert.Empty(t, res.Redundant)
	assert.True(t, res.IsMinimal(), "{0,2} is minimal but not minimum")
	assert.Equal(t, cover.SuboptimalValid, res.Outcome)
}

func TestEvaluate_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	g := randomGraph(r, 10, 18)
	chosen := cover.NewVertexSet(0, 2, 4, 6, 8, 9)
	first := cover.Evaluate(g, chosen)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, cover.Evaluate(g, chosen))
	}
}

func TestClassify_AllBranches(t *testing.T) {
	opt := &cover.MinimumCoverResult{Size: 3, Cover: []int{0, 1, 2}}
	assert.Equal(t, cover.EmptyPlacement, cover.Classify(0, false, opt))
	assert.Equal(t, cover.EmptyPlacement, cover.Classify(0, true, nil))
	assert.Equal(t, cover.InvalidCover, cover.Classify(2, false, opt))
	assert.Equal(t, cover.Optimal, cover.Classify(3, true, opt))
	assert.Equal(t, cover.SuboptimalValid, cover.Classify(4, true, opt))
	assert.Equal(t, cover.AnomalousBetterThanOptimum, cover.Classify(2, true, opt))
	assert.Equal(t, cover.ValidUnknownOptimality, cover.Classify(2, true, nil))
}

func TestOutcome_Text(t *testing.T) {
	for o := cover.EmptyPlacement; o <= cover.ValidUnknownOptimality; o++ {
		text, err := o.MarshalText()
		require.NoError(t, err)
		var back cover.Outcome
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, o, back)
	}
	_, err := cover.Outcome(42).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "outcome(42)", cover.Outcome(42).String())

	var o cover.Outcome
	assert.Error(t, o.UnmarshalText([]byte("nope")))

	b, err := json.Marshal(map[string]cover.Outcome{"o": cover.SuboptimalValid})
	require.NoError(t, err)
	assert.JSONEq(t, `{"o":"suboptimal_valid"}`, string(b))

	assert.True(t, cover.ValidUnknownOptimality.IsValidCover())
	assert.False(t, cover.InvalidCover.IsValidCover())
	assert.False(t, cover.EmptyPlacement.IsValidCover())
}

func TestGraph_Validate(t *testing.T) {
	assert.NoError(t, path3().Validate())
	assert.NoError(t, cover.Graph{}.Validate())
	assert.ErrorIs(t, cover.Graph{N: -1}.Validate(), cover.ErrNegativeOrder)
	assert.ErrorIs(t, cover.Graph{N: 2, Edges: []cover.Edge{{0, 2}}}.Validate(), cover.ErrVertexOutOfRange)
	assert.ErrorIs(t, cover.Graph{N: 2, Edges: []cover.Edge{{-1, 0}}}.Validate(), cover.ErrVertexOutOfRange)
}

func TestEdge_JSON(t *testing.T) {
	b, err := json.Marshal(cover.Graph{N: 2, Edges: []cover.Edge{{0, 1}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":2,"edges":[[0,1]]}`, string(b))
	e := cover.Edge{4, 7}
	assert.Equal(t, 4, e.U())
	assert.Equal(t, 7, e.V())
}

func TestVertexSet(t *testing.T) {
	var s cover.VertexSet
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(0))
	assert.True(t, s.Add(3))
	assert.False(t, s.Add(3))
	assert.True(t, s.Add(-2))
	assert.Equal(t, []int{-2, 3}, s.Sorted())
	assert.Equal(t, []int{}, cover.NewVertexSet().Sorted())
	assert.Equal(t, 2, cover.NewVertexSet(5, 5, 1).Len())
}
