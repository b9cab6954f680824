// Package graph is a small in-memory triple store. A graph is a set of
// triples; insertion order is kept so serializations are deterministic.
package graph

import (
	"fmt"
	"strconv"
)

// TermKind distinguishes the three kinds of RDF term.
type TermKind int

const (
	// zero value is reserved for the wildcard term
	_ TermKind = iota
	IRIKind
	BlankKind
	LiteralKind
)

// Term is a node or literal in a triple. The zero Term is a wildcard in Match.
type Term struct {
	Kind  TermKind
	Value string
	Lang  string
}

// Any matches every term in Match and Remove.
var Any Term

func IRI(v string) Term { return Term{Kind: IRIKind, Value: v} }

func Blank(id string) Term { return Term{Kind: BlankKind, Value: id} }

// Literal returns a language-tagged literal.
func Literal(v, lang string) Term { return Term{Kind: LiteralKind, Value: v, Lang: lang} }

func (t Term) IsIRI() bool     { return t.Kind == IRIKind }
func (t Term) IsBlank() bool   { return t.Kind == BlankKind }
func (t Term) IsLiteral() bool { return t.Kind == LiteralKind }
func (t Term) IsAny() bool     { return t.Kind == 0 }

// IsNode reports whether the term can be a subject.
func (t Term) IsNode() bool { return t.Kind == IRIKind || t.Kind == BlankKind }

func (t Term) matches(o Term) bool {
	return t.IsAny() || t == o
}

// String renders the term for logs and test output. Literals use Go quoting,
// so the result is not always valid N-Triples; see export.WriteNTriples.
func (t Term) String() string {
	switch t.Kind {
	case IRIKind:
		return "<" + t.Value + ">"
	case BlankKind:
		return "_:" + t.Value
	case LiteralKind:
		s := strconv.Quote(t.Value)
		if t.Lang != "" {
			s += "@" + t.Lang
		}
		return s
	default:
		return "*"
	}
}

// Triple is a single subject-predicate-object assertion.
type Triple struct {
	S, P, O Term
}

func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.S, t.P, t.O)
}

// Store is the write side of a graph used by the mapping layer.
type Store interface {
	Add(s, p, o Term)
	// Remove deletes every triple matching the pattern; Any is a wildcard.
	Remove(s, p, o Term)
	NewBlank() Term
}

// Graph is the in-memory Store. It is not safe for concurrent use; a single
// conversion owns its graph for the whole run.
type Graph struct {
	triples []Triple
	index   map[Triple]struct{}
	blanks  int
}

var _ Store = (*Graph)(nil)

func New() *Graph {
	return &Graph{index: map[Triple]struct{}{}}
}

// Add inserts a triple; duplicates are ignored.
func (g *Graph) Add(s, p, o Term) {
	t := Triple{S: s, P: p, O: o}
	if _, ok := g.index[t]; ok {
		return
	}
	g.index[t] = struct{}{}
	g.triples = append(g.triples, t)
}

func (g *Graph) Remove(s, p, o Term) {
	kept := g.triples[:0]
	for _, t := range g.triples {
		if s.matches(t.S) && p.matches(t.P) && o.matches(t.O) {
			delete(g.index, t)
			continue
		}
		kept = append(kept, t)
	}
	g.triples = kept
}

// NewBlank returns a fresh blank node, unique within this graph.
func (g *Graph) NewBlank() Term {
	id := "b" + strconv.Itoa(g.blanks)
	g.blanks++
	return Blank(id)
}

func (g *Graph) Has(s, p, o Term) bool {
	for _, t := range g.triples {
		if s.matches(t.S) && p.matches(t.P) && o.matches(t.O) {
			return true
		}
	}
	return false
}

// Match returns the triples matching the pattern in insertion order.
func (g *Graph) Match(s, p, o Term) []Triple {
	var out []Triple
	for _, t := range g.triples {
		if s.matches(t.S) && p.matches(t.P) && o.matches(t.O) {
			out = append(out, t)
		}
	}
	return out
}

// Objects returns the objects of every (s, p, *) triple.
func (g *Graph) Objects(s, p Term) []Term {
	var out []Term
	for _, t := range g.Match(s, p, Any) {
		out = append(out, t.O)
	}
	return out
}

// Subjects returns, in first-seen order, the subjects of (*, p, o) triples.
func (g *Graph) Subjects(p, o Term) []Term {
	var out []Term
	seen := map[Term]bool{}
	for _, t := range g.Match(Any, p, o) {
		if !seen[t.S] {
			seen[t.S] = true
			out = append(out, t.S)
		}
	}
	return out
}

// Triples returns a copy of all triples in insertion order.
func (g *Graph) Triples() []Triple {
	return append([]Triple(nil), g.triples...)
}

func (g *Graph) Len() int { return len(g.triples) }
