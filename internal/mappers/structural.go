package mappers

import (
	"strings"

	"course-graph/internal/diagnostic"
	"course-graph/internal/domain"
	"course-graph/internal/graph"
	"course-graph/internal/vocab"
	"course-graph/internal/xmltree"
)

// Address builds an anonymous postal address from an mlo:location record.
// Repeated calls for the same place yield separate addresses.
func (m *Mapper) Address(location xmltree.Record) graph.Term {
	a := m.g.NewBlank()
	m.typed(a, domain.KindPostalAddress)
	m.addFields(a, vocab.StreetAddress, location, vocab.Address)
	m.addFields(a, vocab.AddressLocality, location, vocab.Town)
	m.addFields(a, vocab.PostalCode, location, vocab.Postcode)
	m.addFields(a, vocab.Telephone, location, vocab.Phone)
	m.addFields(a, vocab.EmailProp, location, vocab.Email)
	return a
}

// Place builds a place with the address held in location. When of is not
// nil the place takes its reference, name and description from that record;
// places never keep a url.
func (m *Mapper) Place(location, of xmltree.Record) graph.Term {
	var p graph.Term
	if of != nil {
		p = m.Entity(of, domain.KindPlace)
		m.g.Remove(p, vocab.URLProp, graph.Any)
	} else {
		p = m.g.NewBlank()
		m.typed(p, domain.KindPlace)
	}
	m.g.Add(p, vocab.AddressProp, m.Address(location))
	return p
}

// Offer builds the offer of a presentation. The second result is false when
// the presentation has no application dates, cost or application target.
func (m *Mapper) Offer(presentation xmltree.Record) (graph.Term, bool) {
	from, hasFrom := first(presentation, vocab.ApplyFrom)
	until, hasUntil := first(presentation, vocab.ApplyUntil)
	applyTo, hasApplyTo := first(presentation, vocab.ApplyTo)
	costs := presentation.Children(vocab.Cost)

	if !hasFrom && !hasUntil && !hasApplyTo && len(costs) == 0 {
		return graph.Term{}, false
	}

	offer := m.g.NewBlank()
	m.typed(offer, domain.KindOffer)
	m.summary.Offers++

	if hasFrom {
		m.addText(offer, vocab.AvailabilityStarts, dateText(from))
	}
	if hasUntil {
		m.addText(offer, vocab.AvailabilityEnds, dateText(until))
	}
	if hasApplyTo {
		place := m.g.NewBlank()
		m.typed(place, domain.KindPlace)
		target := strings.TrimSpace(applyTo.Text())
		if IsURL(target) {
			m.addText(place, vocab.URLProp, target)
		} else {
			m.addText(place, vocab.Name, target)
		}
		m.g.Add(offer, vocab.AvailableAtOrFrom, place)
	}
	for _, cost := range costs {
		spec := m.g.NewBlank()
		m.typed(spec, domain.KindPriceSpecification)
		m.addText(spec, vocab.DescriptionProp, RichText(cost))
		m.g.Add(offer, vocab.PriceSpecification, spec)
	}
	return offer, true
}

// Alignment describes an educational alignment of a course.
type Alignment struct {
	Type              string
	Framework         string
	TargetURL         string
	TargetName        string
	TargetDescription string
}

func (a Alignment) hasTarget() bool {
	return strings.TrimSpace(a.TargetURL+a.TargetName+a.TargetDescription) != ""
}

// Align attaches an alignment object to course. An alignment without any
// target is reported and skipped; the result tells whether one was created.
func (m *Mapper) Align(course graph.Term, a Alignment) bool {
	if !a.hasTarget() {
		m.warn(diagnostic.CodeAlignmentEmpty, "tried to make an alignment with no target", course, vocab.Subject)
		return false
	}

	obj := m.g.NewBlank()
	m.typed(obj, domain.KindAlignmentObject)
	m.addText(obj, vocab.AlignmentType, a.Type)
	m.addText(obj, vocab.EducationalFramework, a.Framework)
	m.addText(obj, vocab.TargetURL, a.TargetURL)
	m.addText(obj, vocab.TargetName, a.TargetName)
	m.addText(obj, vocab.TargetDescription, a.TargetDescription)
	m.g.Add(course, vocab.EducationalAlignment, obj)
	return true
}
