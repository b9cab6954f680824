package mappers

import (
	"strconv"
	"strings"

	"course-graph/internal/domain"
	"course-graph/internal/graph"
	"course-graph/internal/vocab"
	"course-graph/internal/xmltree"
)

// Course builds a course as item position of list, offered by provider.
func (m *Mapper) Course(r xmltree.Record, list, provider graph.Term, position int) graph.Term {
	course := m.Entity(r, domain.KindCourse)
	m.summary.Courses++

	// abstract wins over the generic description
	for _, abstract := range r.Children(vocab.Abstract) {
		m.g.Remove(course, vocab.DescriptionProp, graph.Any)
		m.addText(course, vocab.DescriptionProp, abstract.Text())
	}

	m.typed(course, domain.KindListItem)
	m.addText(course, vocab.Position, strconv.Itoa(position))
	m.g.Add(list, vocab.ItemListElement, course)
	m.g.Add(course, vocab.ProviderProp, provider)

	for _, id := range r.Children(vocab.Identifier) {
		if code, ok := CourseCode(id); ok {
			m.addText(course, vocab.CourseCode, code)
		}
	}

	for _, subject := range r.Children(vocab.Subject) {
		text := subject.Text()
		m.addText(course, vocab.About, text)

		typ, _ := subject.Attr(vocab.XSIType)
		if scheme, ok := m.schemes[strings.TrimSpace(typ)]; ok && typ != "" {
			m.Align(course, Alignment{
				Type:       scheme.AlignmentType,
				Framework:  scheme.Framework,
				TargetName: text,
			})
		}
	}

	m.addRichFields(course, vocab.CoursePrerequisites, r, vocab.Prerequisite)
	return course
}

// CourseCode decides whether an identifier is a course code such as CS101.
// Typed identifiers always are; an untyped one is unless it is a URL.
func CourseCode(id xmltree.Record) (string, bool) {
	text := id.Text()
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	if typ, ok := id.Attr(vocab.XSIType); ok && strings.TrimSpace(typ) != "" {
		return text, true
	}
	return text, !IsURL(strings.TrimSpace(text))
}
