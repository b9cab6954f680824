package mappers

import (
	"net/url"
	"strings"

	"course-graph/internal/domain"
	"course-graph/internal/graph"
	"course-graph/internal/vocab"
	"course-graph/internal/xmltree"
)

// IsURL reports whether s begins with an http or https scheme.
func IsURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Resolve picks the canonical reference for an entity of kind from its
// declared identifiers. The second result is the URL identifier the
// reference was derived from, or "" when there was none.
func Resolve(ids []string, kind domain.Kind, newBlank func() graph.Term) (graph.Term, string) {
	var urlID, otherID string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		switch {
		case id == "":
			continue
		case IsURL(id):
			urlID = id
		default:
			otherID = id
		}
	}

	switch {
	case urlID != "":
		return graph.IRI(urlID + kind.Fragment()), urlID
	case otherID != "":
		return graph.IRI(url.QueryEscape(otherID)), ""
	default:
		return newBlank(), ""
	}
}

func identifiers(r xmltree.Record) []string {
	var ids []string
	for _, id := range r.Children(vocab.Identifier) {
		ids = append(ids, id.Text())
	}
	return ids
}
