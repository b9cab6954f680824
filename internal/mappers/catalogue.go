package mappers

import (
	"course-graph/internal/diagnostic"
	"course-graph/internal/domain"
	"course-graph/internal/graph"
	"course-graph/internal/vocab"
	"course-graph/internal/xmltree"
)

// Result is everything one catalogue conversion produced.
type Result struct {
	Graph       *graph.Graph
	List        graph.Term
	Diagnostics diagnostic.Diagnostics
	Summary     domain.Summary
}

// Catalogue walks providers, their courses and the courses' presentations in
// document order and returns the item list holding the courses.
func (m *Mapper) Catalogue(catalog xmltree.Record) graph.Term {
	list := m.ItemList(catalog)

	position := 0
	for _, p := range catalog.Children(vocab.Provider) {
		provider := m.Provider(p)
		for _, c := range p.Children(vocab.Course) {
			position++
			course := m.Course(c, list, provider, position)
			for _, pr := range c.Children(vocab.Presentation) {
				m.CourseInstance(pr, course)
			}
		}
	}
	return list
}

// Convert maps a whole catalogue into a fresh graph.
func Convert(catalog xmltree.Record, opts Options) *Result {
	g := graph.New()
	m := New(g, opts)
	list := m.Catalogue(catalog)

	summary := m.Summary()
	summary.Triples = g.Len()
	return &Result{
		Graph:       g,
		List:        list,
		Diagnostics: m.Diagnostics(),
		Summary:     summary,
	}
}
