package mappers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"course-graph/internal/domain"
	"course-graph/internal/graph"
	"course-graph/internal/vocab"
	"course-graph/internal/xmltree"
)

const namespaces = `xmlns="http://xcri.org/profiles/1.2/catalog" ` +
	`xmlns:dc="http://purl.org/dc/elements/1.1/" ` +
	`xmlns:mlo="http://purl.org/net/mlo" ` +
	`xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" ` +
	`xmlns:xhtml="http://www.w3.org/1999/xhtml"`

// record parses <tag attrs>inner</tag> with the catalogue namespaces in scope.
func record(t *testing.T, tag, attrs, inner string) xmltree.Record {
	t.Helper()
	n, err := xmltree.ParseString("<" + tag + " " + namespaces + " " + attrs + ">" + inner + "</" + tag + ">")
	require.NoError(t, err)
	return n
}

func newMapper() (*Mapper, *graph.Graph) {
	g := graph.New()
	return New(g, Options{}), g
}

func lit(v string) graph.Term { return graph.Literal(v, "en") }

func values(g *graph.Graph, s, p graph.Term) []string {
	var out []string
	for _, o := range g.Objects(s, p) {
		out = append(out, o.Value)
	}
	return out
}

func ofKind(g *graph.Graph, k domain.Kind) []graph.Term {
	return g.Subjects(vocab.RDFType, k.IRI())
}

func only(t *testing.T, terms []graph.Term) graph.Term {
	t.Helper()
	require.Len(t, terms, 1)
	return terms[0]
}
