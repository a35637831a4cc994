package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vertexcover/builder"
	"github.com/katalvlaran/vertexcover/cover"
)

func edges(pairs ...[2]int) []cover.Edge {
	out := make([]cover.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = cover.Edge(p)
	}
	return out
}

func TestConstructors_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctor    builder.Constructor
		wantN   int
		wantM   int
		wantMin int
		first   []cover.Edge // leading edges in emission order
	}{
		{"Path(5)", builder.Path(5), 5, 4, 2, edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})},
		{"Cycle(6)", builder.Cycle(6), 6, 6, 3, edges([2]int{0, 1}, [2]int{1, 2})},
		{"Cycle(5)", builder.Cycle(5), 5, 5, 3, nil},
		{"Star(7)", builder.Star(7), 7, 6, 1, edges([2]int{0, 1}, [2]int{0, 2})},
		{"Wheel(5)", builder.Wheel(5), 5, 8, 3, edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}, [2]int{4, 0})},
		{"Wheel(8)", builder.Wheel(8), 8, 14, 5, nil},
		{"Complete(1)", builder.Complete(1), 1, 0, 0, nil},
		{"Complete(4)", builder.Complete(4), 4, 6, 3, edges([2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2})},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6, 2, edges([2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}, [2]int{1, 2})},
		{"CompleteBipartite(3,3)", builder.CompleteBipartite(3, 3), 6, 9, 3, nil},
		{"Grid(1,1)", builder.Grid(1, 1), 1, 0, 0, nil},
		{"Grid(3,3)", builder.Grid(3, 3), 9, 12, 4, edges([2]int{0, 1}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 4})},
		{"RandomSparse(6,0)", builder.RandomSparse(6, 0), 6, 0, 0, nil},
		{"RandomSparse(5,1)", builder.RandomSparse(5, 1), 5, 10, 4, nil},
		{"ForestFire", builder.ForestFire(), 9, 16, 5, edges([2]int{0, 1}, [2]int{1, 2})},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, g.N)
			assert.Len(t, g.Edges, tc.wantM)
			require.NoError(t, g.Validate())
			if tc.first != nil {
				assert.Equal(t, tc.first, g.Edges[:len(tc.first)])
			}

			best, ok := cover.MinimumCover(g, cover.DefaultSearchLimit)
			require.True(t, ok)
			assert.Equal(t, tc.wantMin, best.Size)
		})
	}
}

func TestForestFire_Witness(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.ForestFire())
	require.NoError(t, err)

	best, ok := cover.MinimumCover(g, cover.DefaultSearchLimit)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2, 4, 6, 8}, best.Cover)
	assert.Equal(t, edges([2]int{7, 6}, [2]int{6, 5}), g.Edges[14:])
}

func TestBuildGraph_DisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2), builder.Star(3))
	require.NoError(t, err)

	assert.Equal(t, 5, g.N)
	assert.Equal(t, edges([2]int{0, 1}, [2]int{2, 3}, [2]int{2, 4}), g.Edges)

	best, ok := cover.MinimumCover(g, cover.DefaultSearchLimit)
	require.True(t, ok)
	assert.Equal(t, 2, best.Size)
}

func TestBuildGraph_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.BuilderOption
		cons []builder.Constructor
		want error
	}{
		{"no constructors", nil, nil, builder.ErrConstructFailed},
		{"nil constructor", nil, []builder.Constructor{builder.Path(3), nil}, builder.ErrConstructFailed},
		{"path too short", nil, []builder.Constructor{builder.Path(1)}, builder.ErrTooFewVertices},
		{"cycle too short", nil, []builder.Constructor{builder.Cycle(2)}, builder.ErrTooFewVertices},
		{"star too short", nil, []builder.Constructor{builder.Star(1)}, builder.ErrTooFewVertices},
		{"wheel too short", nil, []builder.Constructor{builder.Wheel(3)}, builder.ErrTooFewVertices},
		{"complete empty", nil, []builder.Constructor{builder.Complete(0)}, builder.ErrTooFewVertices},
		{"bipartite empty side", nil, []builder.Constructor{builder.CompleteBipartite(2, 0)}, builder.ErrTooFewVertices},
		{"grid zero rows", nil, []builder.Constructor{builder.Grid(0, 3)}, builder.ErrTooFewVertices},
		{"probability above one", nil, []builder.Constructor{builder.RandomSparse(4, 1.5)}, builder.ErrInvalidProbability},
		{"probability below zero", nil, []builder.Constructor{builder.RandomSparse(4, -0.1)}, builder.ErrInvalidProbability},
		{"sparse without rng", nil, []builder.Constructor{builder.RandomSparse(4, 0.5)}, builder.ErrNeedRandSource},
		{"shuffle without rng", []builder.BuilderOption{builder.WithShuffle()}, []builder.Constructor{builder.Path(3)}, builder.ErrNeedRandSource},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.opts, tc.cons...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "BuildGraph")
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	g1, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	g2, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)

	assert.Equal(t, g1, g2)
	require.NoError(t, g1.Validate())
	for _, e := range g1.Edges {
		assert.Less(t, e.U(), e.V())
	}
}

func TestWithShuffle_PreservesStructure(t *testing.T) {
	plain, err := builder.BuildGraph(nil, builder.Wheel(7))
	require.NoError(t, err)
	shuffled, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithShuffle(), builder.WithRand(rand.New(rand.NewSource(7)))},
		builder.Wheel(7),
	)
	require.NoError(t, err)

	assert.Equal(t, plain.N, shuffled.N)
	assert.Len(t, shuffled.Edges, len(plain.Edges))
	require.NoError(t, shuffled.Validate())

	want, ok := cover.MinimumCover(plain, cover.DefaultSearchLimit)
	require.True(t, ok)
	got, ok := cover.MinimumCover(shuffled, cover.DefaultSearchLimit)
	require.True(t, ok)
	assert.Equal(t, want.Size, got.Size)
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
