// Package vocab holds the fixed vocabularies on both sides of the mapping:
// the XCRI-CAP 1.2 element names read from the catalogue and the schema.org
// terms written to the graph.
package vocab

import (
	"encoding/xml"

	"course-graph/internal/graph"
)

// Source namespaces.
const (
	NSXCRI  = "http://xcri.org/profiles/1.2/catalog"
	NSDC    = "http://purl.org/dc/elements/1.1/"
	NSMLO   = "http://purl.org/net/mlo"
	NSXSI   = "http://www.w3.org/2001/XMLSchema-instance"
	NSXHTML = "http://www.w3.org/1999/xhtml"
)

// Target namespaces.
const (
	Schema = "http://schema.org/"
	RDF    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// DefaultLanguage tags every extracted literal unless configured otherwise.
const DefaultLanguage = "en"

func xcri(local string) xml.Name { return xml.Name{Space: NSXCRI, Local: local} }
func dc(local string) xml.Name   { return xml.Name{Space: NSDC, Local: local} }
func mlo(local string) xml.Name  { return xml.Name{Space: NSMLO, Local: local} }

// Catalogue elements.
var (
	Catalog      = xcri("catalog")
	Provider     = xcri("provider")
	Course       = xcri("course")
	Presentation = xcri("presentation")
	Abstract     = xcri("abstract")
	Venue        = xcri("venue")
	End          = xcri("end")
	ApplyFrom    = xcri("applyFrom")
	ApplyUntil   = xcri("applyUntil")
	ApplyTo      = xcri("applyTo")
	StudyMode    = xcri("studyMode")
	AttendMode   = xcri("attendanceMode")
	AttendPatt   = xcri("attendancePattern")

	Identifier  = dc("identifier")
	Title       = dc("title")
	Description = dc("description")
	Subject     = dc("subject")

	URL          = mlo("url")
	Location     = mlo("location")
	Prerequisite = mlo("prerequisite")
	Start        = mlo("start")
	Duration     = mlo("duration")
	Cost         = mlo("cost")
	Address      = mlo("address")
	Town         = mlo("town")
	Postcode     = mlo("postcode")
	Phone        = mlo("phone")
	Email        = mlo("email")

	XSIType = xml.Name{Space: NSXSI, Local: "type"}
)

// Unqualified attributes.
var (
	AttrDTF      = xml.Name{Local: "dtf"}
	AttrInterval = xml.Name{Local: "interval"}
)

// MarkupWrappers are the tags that mark a field as formatted rich text.
var MarkupWrappers = []xml.Name{
	{Local: "div"},
	{Local: "p"},
	{Space: NSXHTML, Local: "div"},
	{Space: NSXHTML, Local: "p"},
}

// InternalIDType is the xsi:type of a provider-internal course code.
const InternalIDType = "courseDataProgramme:internalID"

// JACS3Type is the xsi:type of a JACS v3 subject code.
const JACS3Type = "courseDataProgramme:JACS3"

func prop(local string) graph.Term { return graph.IRI(Schema + local) }

// RDFType is rdf:type.
var RDFType = graph.IRI(RDF + "type")

// schema.org properties.
var (
	Name                 = prop("name")
	DescriptionProp      = prop("description")
	URLProp              = prop("url")
	AddressProp          = prop("address")
	StreetAddress        = prop("streetAddress")
	AddressLocality      = prop("addressLocality")
	PostalCode           = prop("postalCode")
	Telephone            = prop("telephone")
	EmailProp            = prop("email")
	ItemListElement      = prop("itemListElement")
	ItemListOrder        = prop("itemListOrder")
	Position             = prop("position")
	ProviderProp         = prop("provider")
	CourseCode           = prop("courseCode")
	About                = prop("about")
	CoursePrerequisites  = prop("coursePrerequisites")
	EducationalAlignment = prop("educationalAlignment")
	AlignmentType        = prop("alignmentType")
	EducationalFramework = prop("educationalFramework")
	TargetURL            = prop("targetUrl")
	TargetName           = prop("targetName")
	TargetDescription    = prop("targetDescription")
	HasCourseInstance    = prop("hasCourseInstance")
	LocationProp         = prop("location")
	StartDate            = prop("startDate")
	EndDate              = prop("endDate")
	DurationProp         = prop("duration")
	CourseMode           = prop("courseMode")
	Offers               = prop("offers")
	AvailabilityStarts   = prop("availabilityStarts")
	AvailabilityEnds     = prop("availabilityEnds")
	AvailableAtOrFrom    = prop("availableAtOrFrom")
	PriceSpecification   = prop("priceSpecification")
)

// Context is the JSON-LD context the serialized graph is compacted against.
func Context(lang string) map[string]string {
	return map[string]string{
		"@vocab":    Schema,
		"@language": lang,
	}
}
