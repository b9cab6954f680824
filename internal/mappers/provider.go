package mappers

import (
	"course-graph/internal/diagnostic"
	"course-graph/internal/domain"
	"course-graph/internal/graph"
	"course-graph/internal/vocab"
	"course-graph/internal/xmltree"
)

// Provider builds the organization offering a group of courses. Only the
// first mlo:location becomes its address.
func (m *Mapper) Provider(r xmltree.Record) graph.Term {
	org := m.Entity(r, domain.KindOrganization)
	m.summary.Providers++

	locations := r.Children(vocab.Location)
	if len(locations) == 0 {
		return org
	}
	m.g.Add(org, vocab.AddressProp, m.Address(locations[0]))
	if len(locations) > 1 {
		m.warn(diagnostic.CodeProviderLocations, "provider has more than one location, extra ones ignored", org, vocab.Location)
	}
	return org
}
