package mappers

import (
	"strings"

	"course-graph/internal/diagnostic"
	"course-graph/internal/domain"
	"course-graph/internal/graph"
	"course-graph/internal/vocab"
	"course-graph/internal/xmltree"
)

// Entity creates a typed entity for r with its common literals: urls,
// names and descriptions. It does not look at any other child records.
func (m *Mapper) Entity(r xmltree.Record, kind domain.Kind) graph.Term {
	ids := identifiers(r)
	e, urlID := Resolve(ids, kind, m.g.NewBlank)
	m.typed(e, kind)
	if countURLs(ids) > 1 {
		m.info(diagnostic.CodeIdentifierOverridden, "several URL identifiers, the last one names the entity", e, vocab.Identifier)
	}

	m.addFields(e, vocab.URLProp, r, vocab.URL)
	if urlID != "" {
		// the fragment must not hide the page URL
		m.addText(e, vocab.URLProp, urlID)
	}
	m.addFields(e, vocab.Name, r, vocab.Title)
	m.addFields(e, vocab.DescriptionProp, r, vocab.Description)
	return e
}

// ItemList creates the ordered list that owns every course.
func (m *Mapper) ItemList(catalog xmltree.Record) graph.Term {
	list := m.g.NewBlank()
	m.typed(list, domain.KindItemList)
	m.addFields(list, vocab.DescriptionProp, catalog, vocab.Description)
	m.addText(list, vocab.ItemListOrder, "ordered")
	return list
}

func countURLs(ids []string) int {
	n := 0
	for _, id := range ids {
		if IsURL(strings.TrimSpace(id)) {
			n++
		}
	}
	return n
}
