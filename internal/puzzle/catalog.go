package puzzle

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/vertexcover/builder"
	"github.com/katalvlaran/vertexcover/cover"
)

// Entry describes one built-in puzzle.
type Entry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Vertices    int    `json:"vertices" yaml:"vertices"`
	Edges       int    `json:"edges" yaml:"edges"`
}

type recipe struct {
	description string
	opts        []builder.BuilderOption
	cons        []builder.Constructor
}

// recipes is keyed by puzzle name. random-12 is seeded, so it is the same
// graph on every call.
var recipes = map[string]recipe{
	"forest-fire": {description: "Forest fire board: 8 mountains in a ring around a central peak", cons: []builder.Constructor{builder.ForestFire()}},
	"path-5":      {description: "Path on 5 vertices", cons: []builder.Constructor{builder.Path(5)}},
	"cycle-6":     {description: "Cycle on 6 vertices", cons: []builder.Constructor{builder.Cycle(6)}},
	"star-7":      {description: "Star with one hub and 6 leaves", cons: []builder.Constructor{builder.Star(7)}},
	"wheel-8":     {description: "Wheel with a 7-cycle rim", cons: []builder.Constructor{builder.Wheel(8)}},
	"k4":          {description: "Complete graph on 4 vertices", cons: []builder.Constructor{builder.Complete(4)}},
	"k33":         {description: "Complete bipartite graph K3,3", cons: []builder.Constructor{builder.CompleteBipartite(3, 3)}},
	"grid-3x3":    {description: "3x3 orthogonal grid", cons: []builder.Constructor{builder.Grid(3, 3)}},
	"random-12": {
		description: "Random sparse graph on 12 vertices (p=0.25), shuffled",
		opts:        []builder.BuilderOption{builder.WithSeed(12), builder.WithShuffle()},
		cons:        []builder.Constructor{builder.RandomSparse(12, 0.25)},
	},
}

// Lookup builds the named puzzle.
func Lookup(name string) (cover.Graph, error) {
	r, ok := recipes[name]
	if !ok {
		return cover.Graph{}, fmt.Errorf("Lookup %q: %w", name, ErrUnknownPuzzle)
	}
	g, err := builder.BuildGraph(r.opts, r.cons...)
	if err != nil {
		return cover.Graph{}, fmt.Errorf("Lookup %q: %w", name, err)
	}
	return g, nil
}

// Catalog lists every built-in puzzle sorted by name.
func Catalog() ([]Entry, error) {
	names := make([]string, 0, len(recipes))
	for name := range recipes {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Entry, 0, len(names))
	for _, name := range names {
		g, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{
			Name:        name,
			Description: recipes[name].description,
			Vertices:    g.N,
			Edges:       len(g.Edges),
		})
	}
	return out, nil
}
