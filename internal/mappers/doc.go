// Package mappers turns an XCRI-CAP course catalogue into schema.org entities.
//
// The package is the entity-resolution core of the converter. For every
// catalogue record it decides which entity the record becomes, which
// reference that entity gets, and how optional child records attach to it.
//
// # References
//
// An entity's reference is chosen from its dc:identifier fields:
//
//   - an http(s) identifier becomes an IRI with a fragment naming the entity
//     kind ("http://example.org/cs101#Course"), so a course and its
//     presentation published on the same page stay distinct;
//   - any other identifier is form-encoded and used as-is ("CS101");
//   - no identifier gives a blank node.
//
// When several identifiers of one shape exist the last one wins.
//
// # Traversal
//
// Convert walks provider, course and presentation records in document order.
// Course list positions are numbered 1..N across the whole catalogue.
//
// # Diagnostics
//
// The mapper never fails on content. Cardinality surprises and unusable
// alignments are recorded in a diagnostic.Diagnostics returned with the
// graph; missing optional fields simply produce no triples.
package mappers
