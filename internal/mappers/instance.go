package mappers

import (
	"encoding/xml"
	"strings"

	"course-graph/internal/diagnostic"
	"course-graph/internal/domain"
	"course-graph/internal/graph"
	"course-graph/internal/vocab"
	"course-graph/internal/xmltree"
)

// CourseInstance builds a presentation of course. Location, start and end
// should appear once; repeats are all asserted and reported.
func (m *Mapper) CourseInstance(r xmltree.Record, course graph.Term) graph.Term {
	instance := m.Entity(r, domain.KindCourseInstance)
	m.summary.Instances++
	m.g.Add(course, vocab.HasCourseInstance, instance)

	locations := 0
	for _, venue := range r.Children(vocab.Venue) {
		for _, provider := range venue.Children(vocab.Provider) {
			for _, location := range provider.Children(vocab.Location) {
				m.g.Add(instance, vocab.LocationProp, m.Place(location, provider))
				locations++
			}
		}
	}
	if locations > 1 {
		m.warn(diagnostic.CodeInstanceLocations, "course instance is in several places", instance, vocab.Location)
	}

	starts := r.Children(vocab.Start)
	for _, d := range starts {
		m.addText(instance, vocab.StartDate, dateText(d))
	}
	if len(starts) > 1 {
		m.warn(diagnostic.CodeInstanceStarts, "course instance starts more than once", instance, vocab.Start)
	}

	ends := r.Children(vocab.End)
	for _, d := range ends {
		m.addText(instance, vocab.EndDate, dateText(d))
	}
	if len(ends) > 1 {
		m.warn(diagnostic.CodeInstanceEnds, "course instance ends more than once", instance, vocab.End)
	}

	for _, d := range r.Children(vocab.Duration) {
		m.addText(instance, vocab.DurationProp, durationText(d))
	}

	m.addText(instance, vocab.CourseMode, CourseMode(r))

	if offer, ok := m.Offer(r); ok {
		m.g.Add(instance, vocab.Offers, offer)
	}
	return instance
}

// durationText prefers the ISO 8601 interval attribute over the display text.
func durationText(r xmltree.Record) string {
	if v, ok := r.Attr(vocab.AttrInterval); ok {
		return v
	}
	return r.Text()
}

var modeSentences = []struct {
	field  xml.Name
	prefix string
}{
	{vocab.StudyMode, "Available study mode: "},
	{vocab.AttendMode, "Available attendance mode: "},
	{vocab.AttendPatt, "Available attendance pattern: "},
}

// CourseMode summarizes study mode, attendance mode and attendance pattern
// as one sentence per occurrence, in that order.
func CourseMode(presentation xmltree.Record) string {
	var b strings.Builder
	for _, s := range modeSentences {
		for _, f := range presentation.Children(s.field) {
			b.WriteString(s.prefix + f.Text() + ".\n")
		}
	}
	return b.String()
}
