// Package puzzle reads, writes and validates vertex-cover puzzle documents and
// exposes the built-in puzzle catalog.
//
// A document is the evaluation request in file form:
//
//	graph:
//	  n: 3
//	  edges: [[0, 1], [1, 2]]
//	chosen: [1]
//
// JSON is accepted wherever YAML is, since every JSON document is valid YAML.
package puzzle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vertexcover/cover"
)

// Sentinel errors.
var (
	// ErrMalformed reports a document missing the graph, its order or its
	// edge list, or carrying an edge that is not a pair.
	ErrMalformed = errors.New("puzzle: malformed document")

	// ErrOutOfRange reports an edge endpoint outside [0, n) in strict mode.
	ErrOutOfRange = errors.New("puzzle: edge endpoint out of range")

	// ErrUnknownPuzzle reports a catalog lookup miss.
	ErrUnknownPuzzle = errors.New("puzzle: unknown puzzle")
)

var validate = newValidator()

// newValidator reports fields by their wire names, so that a namespace reads
// "Document.graph.edges[0]" rather than "Document.Graph.Edges[0]".
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Problem names one rejected field and what is wrong with it.
type Problem struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (p Problem) String() string { return p.Field + ": " + p.Reason }

// InvalidError lists the field-level problems of a rejected document.
// It unwraps to Kind, which is ErrMalformed or ErrOutOfRange.
type InvalidError struct {
	Kind     error
	Problems []Problem
}

func (e *InvalidError) Error() string { return e.Kind.Error() + ": " + e.Detail() }

func (e *InvalidError) Unwrap() error { return e.Kind }

// Detail joins the problems into one short line, e.g.
// "graph.n: is required; graph.edges[2]: must have exactly 2 endpoints".
func (e *InvalidError) Detail() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}

func (e *InvalidError) add(field, reason string) {
	e.Problems = append(e.Problems, Problem{Field: field, Reason: reason})
}

// GraphDoc is the wire form of a graph. N is a pointer so that a missing
// order can be told apart from n = 0.
type GraphDoc struct {
	N     *int    `json:"n" yaml:"n" validate:"required,gte=0"`
	Edges [][]int `json:"edges" yaml:"edges" validate:"required,dive,len=2"`
}

// Document is a graph plus an optional placement.
type Document struct {
	Graph  *GraphDoc `json:"graph" yaml:"graph" validate:"required"`
	Chosen []int     `json:"chosen" yaml:"chosen,omitempty"`
}

// Validate checks the document shape. Range checks against n are left to
// ToGraph so that permissive callers can still evaluate the document.
// Shape failures are reported as an *InvalidError wrapping ErrMalformed.
func (d Document) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("Validate: %s: %w", err.Error(), ErrMalformed)
	}

	inv := &InvalidError{Kind: ErrMalformed}
	for _, fe := range fieldErrs {
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		inv.add(field, fieldReason(fe))
	}
	return fmt.Errorf("Validate: %w", inv)
}

func fieldReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "len":
		return "must have exactly " + fe.Param() + " endpoints"
	default:
		return "fails " + fe.Tag()
	}
}

// ToGraph converts a validated document into a cover.Graph. With strict set,
// edges touching vertices outside [0, n) are rejected with an *InvalidError
// wrapping ErrOutOfRange that names every offending edge; otherwise they are
// kept and can only be covered by an equally out-of-range placement entry.
func (d Document) ToGraph(strict bool) (cover.Graph, error) {
	if err := d.Validate(); err != nil {
		return cover.Graph{}, err
	}

	g := cover.Graph{N: *d.Graph.N, Edges: make([]cover.Edge, len(d.Graph.Edges))}
	for i, e := range d.Graph.Edges {
		g.Edges[i] = cover.Edge{e[0], e[1]}
	}
	if !strict {
		return g, nil
	}

	inv := &InvalidError{Kind: ErrOutOfRange}
	for i, e := range g.Edges {
		for _, v := range e {
			if v < 0 || v >= g.N {
				inv.add(fmt.Sprintf("graph.edges[%d]", i), fmt.Sprintf("endpoint %d outside [0, %d)", v, g.N))
				break
			}
		}
	}
	if len(inv.Problems) > 0 {
		return cover.Graph{}, fmt.Errorf("ToGraph: %w", inv)
	}

	return g, nil
}

// Placement returns the chosen indices as a set. Duplicates collapse.
func (d Document) Placement() cover.VertexSet {
	return cover.NewVertexSet(d.Chosen...)
}

// FromGraph builds the document form of g with the given placement.
func FromGraph(g cover.Graph, chosen []int) Document {
	n := g.N
	edges := make([][]int, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = []int{e.U(), e.V()}
	}
	return Document{Graph: &GraphDoc{N: &n, Edges: edges}, Chosen: chosen}
}

// Decode reads one YAML or JSON document from r and validates it. Numbers
// in n, edges and chosen must be integers; YAML would otherwise truncate
// 1.5 to 1 when decoding into an int.
func Decode(r io.Reader) (Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("Decode: empty input: %w", ErrMalformed)
		}
		return Document{}, fmt.Errorf("Decode: %s: %w", err.Error(), ErrMalformed)
	}
	if err := requireIntegers(&root); err != nil {
		return Document{}, fmt.Errorf("Decode: %w", err)
	}

	var d Document
	if err := root.Decode(&d); err != nil {
		return Document{}, fmt.Errorf("Decode: %s: %w", err.Error(), ErrMalformed)
	}
	if err := d.Validate(); err != nil {
		return Document{}, err
	}

	return d, nil
}

// requireIntegers rejects non-integer scalars where the document expects
// vertex ids or an order. Shapes it does not recognise are left for the
// decoder to report.
func requireIntegers(doc *yaml.Node) error {
	inv := &InvalidError{Kind: ErrMalformed}
	root := resolve(doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = resolve(root.Content[0])
	}

	if graph := mappingValue(root, "graph"); graph != nil {
		if n := mappingValue(graph, "n"); n != nil {
			checkInt(inv, "graph.n", n)
		}
		if edges := mappingValue(graph, "edges"); edges != nil && edges.Kind == yaml.SequenceNode {
			for i, e := range edges.Content {
				if e = resolve(e); e.Kind != yaml.SequenceNode {
					continue
				}
				for j, v := range e.Content {
					checkInt(inv, fmt.Sprintf("graph.edges[%d][%d]", i, j), v)
				}
			}
		}
	}
	if chosen := mappingValue(root, "chosen"); chosen != nil && chosen.Kind == yaml.SequenceNode {
		for i, v := range chosen.Content {
			checkInt(inv, fmt.Sprintf("chosen[%d]", i), v)
		}
	}

	if len(inv.Problems) > 0 {
		return inv
	}
	return nil
}

func checkInt(inv *InvalidError, field string, n *yaml.Node) {
	n = resolve(n)
	if n.Kind != yaml.ScalarNode {
		return
	}
	switch n.ShortTag() {
	case "!!int", "!!null":
	default:
		inv.add(field, fmt.Sprintf("%q is not an integer", n.Value))
	}
}

// mappingValue returns the value under key in a mapping node, or nil.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return resolve(m.Content[i+1])
		}
	}
	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// Load decodes the document stored at path.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return Document{}, fmt.Errorf("Load %s: %w", path, err)
	}
	return d, nil
}

// Encode writes d as YAML.
func Encode(w io.Writer, d Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return enc.Close()
}
