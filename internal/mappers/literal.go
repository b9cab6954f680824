package mappers

import (
	"encoding/xml"
	"strings"

	"course-graph/internal/graph"
	"course-graph/internal/vocab"
	"course-graph/internal/xmltree"
)

// RichText flattens a field that may carry xhtml block markup. A field with
// a div or p anywhere below it yields the text of every node in document
// order, with runs of whitespace collapsed to single spaces; otherwise the
// field's own text is returned unchanged.
func RichText(field xmltree.Record) string {
	formatted := false
	xmltree.Walk(field, func(r xmltree.Record) {
		if isMarkup(r.Name()) {
			formatted = true
		}
	})
	if !formatted {
		return field.Text()
	}

	var parts []string
	xmltree.Walk(field, func(r xmltree.Record) {
		if words := strings.Fields(r.Text()); len(words) > 0 {
			parts = append(parts, strings.Join(words, " "))
		}
	})
	return strings.Join(parts, " ")
}

func isMarkup(n xml.Name) bool {
	for _, w := range vocab.MarkupWrappers {
		if n == w {
			return true
		}
	}
	return false
}

// literal tags text with the run language. Blank text is not worth a triple.
func (m *Mapper) literal(text string) (graph.Term, bool) {
	if strings.TrimSpace(text) == "" {
		return graph.Term{}, false
	}
	return graph.Literal(text, m.lang), true
}

func (m *Mapper) addText(s, p graph.Term, text string) bool {
	lit, ok := m.literal(text)
	if ok {
		m.g.Add(s, p, lit)
	}
	return ok
}

// addFields asserts p for every occurrence of field under r, verbatim.
func (m *Mapper) addFields(s, p graph.Term, r xmltree.Record, field xml.Name) {
	for _, f := range r.Children(field) {
		m.addText(s, p, f.Text())
	}
}

// addRichFields is addFields with markup flattened.
func (m *Mapper) addRichFields(s, p graph.Term, r xmltree.Record, field xml.Name) {
	for _, f := range r.Children(field) {
		m.addText(s, p, RichText(f))
	}
}

func first(r xmltree.Record, field xml.Name) (xmltree.Record, bool) {
	cs := r.Children(field)
	if len(cs) == 0 {
		return nil, false
	}
	return cs[0], true
}

// dateText prefers the machine-readable dtf attribute over the display text.
func dateText(r xmltree.Record) string {
	if v, ok := r.Attr(vocab.AttrDTF); ok {
		return v
	}
	return r.Text()
}
