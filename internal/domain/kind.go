package domain

import (
	"course-graph/internal/graph"
	"course-graph/internal/vocab"
)

// Kind is the schema.org type assigned to an entity.
type Kind string

const (
	KindItemList           Kind = "ItemList"
	KindListItem           Kind = "ListItem"
	KindCourse             Kind = "Course"
	KindCourseInstance     Kind = "CourseInstance"
	KindOrganization       Kind = "Organization"
	KindPlace              Kind = "Place"
	KindPostalAddress      Kind = "PostalAddress"
	KindOffer              Kind = "Offer"
	KindPriceSpecification Kind = "PriceSpecification"
	KindAlignmentObject    Kind = "AlignmentObject"
)

// IRI is the vocabulary term for the kind.
func (k Kind) IRI() graph.Term { return graph.IRI(vocab.Schema + string(k)) }

// Fragment is appended to URL identifiers so that entities of different kinds
// sharing one page URL stay distinct.
func (k Kind) Fragment() string { return "#" + string(k) }
